package session

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/homebills/tracker/common"
	"github.com/homebills/tracker/config"
	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/gateway/localstore"
	"github.com/homebills/tracker/logger"
	loggerMocks "github.com/homebills/tracker/logger/mocks"
)

func testLoggerProvider() logger.Provider {
	log := &loggerMocks.ILogger{}
	log.On("Warningf", mock.Anything, mock.Anything).Maybe()
	log.On("Infof", mock.Anything, mock.Anything).Maybe()

	return func(ctx context.Context) logger.ILogger {
		return log
	}
}

func newTestService(connect Connector) *Service {
	cfg := &config.Config{OwnerID: "owner-1"}
	local := localstore.NewStore(afero.NewMemMapFs(), "data")

	return NewServiceWithConnector(cfg, testLoggerProvider(), connect, local)
}

func TestService_ResolveFallsBackOnFailure(t *testing.T) {
	ctx := context.Background()

	s := newTestService(func(ctx context.Context) (*Remote, error) {
		return nil, errors.New("firebase project is not configured")
	})

	s.Resolve(ctx)

	assert.Equal(t, ModeLocal, s.Mode())
	assert.NotEmpty(t, s.Reason())
	assert.Equal(t, common.LocalOwnerID, s.DefaultOwner())

	// local gateway must be fully usable after the fallback
	g := s.Gateway(common.LocalOwnerID)
	require.NoError(t, g.Set(ctx, iface.CollectionSettings, iface.SettingsKey,
		map[string]interface{}{"electricityRate": 7.0}, false))

	_, err := g.Get(ctx, iface.CollectionSettings, iface.SettingsKey)
	assert.NoError(t, err)
}

func TestService_ResolveRemote(t *testing.T) {
	ctx := context.Background()

	s := newTestService(func(ctx context.Context) (*Remote, error) {
		return &Remote{}, nil
	})

	s.Resolve(ctx)

	assert.Equal(t, ModeRemote, s.Mode())
	assert.Empty(t, s.Reason())
	assert.Equal(t, "owner-1", s.DefaultOwner())
}

func TestService_ReconnectClearsLocalMode(t *testing.T) {
	ctx := context.Background()

	var healthy bool

	s := newTestService(func(ctx context.Context) (*Remote, error) {
		if !healthy {
			return nil, errors.New("connection refused")
		}

		return &Remote{}, nil
	})

	s.Resolve(ctx)
	require.Equal(t, ModeLocal, s.Mode())

	err := s.Reconnect(ctx)
	assert.Error(t, err)
	assert.Equal(t, ModeLocal, s.Mode())
	assert.NotEmpty(t, s.Reason())

	healthy = true

	require.NoError(t, s.Reconnect(ctx))
	assert.Equal(t, ModeRemote, s.Mode())
	assert.Empty(t, s.Reason())
}

func TestService_VerifyIDTokenLocalMode(t *testing.T) {
	ctx := context.Background()

	s := newTestService(func(ctx context.Context) (*Remote, error) {
		return nil, errors.New("down")
	})
	s.Resolve(ctx)

	_, err := s.VerifyIDToken(ctx, "some-token")
	assert.ErrorIs(t, err, ErrLocalMode)
}

func TestService_StatusReportsReason(t *testing.T) {
	ctx := context.Background()

	s := newTestService(func(ctx context.Context) (*Remote, error) {
		return nil, errors.New("dns failure")
	})
	s.Resolve(ctx)

	st := s.Status()
	assert.Equal(t, ModeLocal, st.Mode)
	assert.Equal(t, "dns failure", st.Reason)
}
