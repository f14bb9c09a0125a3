package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/mock"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, nil, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockHealthChecker(ctrl)
	ctx := context.Background()

	svc, err := NewAppInfoService(config.App{Version: "1"}, checker, logger.Nop())
	require.NoError(t, err)

	checker.EXPECT().Ping(ctx).Return(nil)
	assert.NoError(t, svc.Health(ctx))

	pingErr := errors.New("connection refused")
	checker.EXPECT().Ping(ctx).Return(pingErr)
	err = svc.Health(ctx)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, pingErr)
}

func TestHealth_NoStore(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Health(context.Background()), ErrStorageUnavailable)
}
