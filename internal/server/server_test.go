package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/handler"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCloser struct {
	calls int
	err   error
}

func (c *countingCloser) Close() error {
	c.calls++
	return c.err
}

func newHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":3000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":3000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_StopsOnContextAndClosesResources(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	closer := &countingCloser{err: errors.New("already closed")}

	srv, err := NewServer(newHandlers(t, cfg), cfg, logger.Nop(), closer)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	srv.Shutdown()
	assert.Equal(t, 1, closer.calls)
}

func TestRun_ListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	closer := &countingCloser{}

	srv, err := NewServer(newHandlers(t, cfg), cfg, logger.Nop(), closer)
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, closer.calls)
}

func TestRun_Empty(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}
