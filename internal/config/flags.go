package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"time"
)

// flagParser turns command-line arguments into a config layer.
type flagParser func(args []string) (*StructuredConfig, error)

// NetAddress holds a host:port pair. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// commonFlags are accepted by both binaries.
type commonFlags struct {
	jsonConfigPath string
	dotEnvPath     string
	logLevel       string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&c.jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&c.dotEnvPath, "env-file", "", ".env file path")
	fs.StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// parseServerFlags parses server flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (SQLite path or PostgreSQL URL)
//	-driver database driver (sqlite3, postgres)
//	-redis Redis address of the optional list cache
//	-cache-ttl list cache TTL (e.g. "5m")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-c/-config json file path with configs
//	-env-file .env file path
//	-log-level log level
func parseServerFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, driver, redisAddress string
	var requestTimeout, cacheTTL time.Duration
	var common commonFlags

	fs := flag.NewFlagSet("grocery-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3, postgres)")
	fs.StringVar(&redisAddress, "redis", "", "Redis address for the list cache")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "List cache TTL (e.g., 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	common.register(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{LogLevel: common.logLevel},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: driver,
			},
			Cache: Cache{
				RedisAddress: redisAddress,
				TTL:          cacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: common.jsonConfigPath,
		DotEnvPath:   common.dotEnvPath,
	}, nil
}

// parseClientFlags parses client flags.
//
// Flags:
//
//	-server item API base URL
//	-request-timeout API call timeout
//	-assist-key AI provider API key
//	-assist-model AI model name
//	-c/-config json file path with configs
//	-env-file .env file path
//	-log-level log level
func parseClientFlags(args []string) (*StructuredConfig, error) {
	var serverURL, assistKey, assistModel string
	var requestTimeout time.Duration
	var common commonFlags

	fs := flag.NewFlagSet("grocery-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&serverURL, "server", "", "Item API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&assistKey, "assist-key", "", "AI assist API key")
	fs.StringVar(&assistModel, "assist-model", "", "AI assist model")
	common.register(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{LogLevel: common.logLevel},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Assist: Assist{
			APIKey: assistKey,
			Model:  assistModel,
		},
		JSONFilePath: common.jsonConfigPath,
		DotEnvPath:   common.dotEnvPath,
	}, nil
}

// String returns host:port, or an empty string when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be empty, "localhost" or an IP.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
