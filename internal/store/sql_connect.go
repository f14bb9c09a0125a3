package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-grocery-list/internal/logger"
)

const (
	connectRetryBase = 200 * time.Millisecond
	connectRetries   = 5
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// connectBackoff is used while a database server is still starting up.
func connectBackoff() retry.Backoff {
	return retry.WithMaxRetries(connectRetries, retry.NewExponential(connectRetryBase))
}

// pingWithRetry pings until the database answers, backoff is exhausted or
// ctx is done. The last ping error is returned.
func pingWithRetry(ctx context.Context, db pinger, backoff retry.Backoff, log *logger.Logger) error {
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := db.PingContext(ctx); err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("database is not answering yet")
			return retry.RetryableError(err)
		}
		return nil
	})
}
