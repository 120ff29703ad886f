// Package session resolves the per-session persistence mode: remote
// (Firestore + Firebase Auth) when the cloud project is reachable, or the
// local-only store otherwise. The mode is decided once at identity
// resolution and only changes through an explicit reconnect.
package session

import (
	"context"
	"errors"
	"sync"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/homebills/tracker/common"
	"github.com/homebills/tracker/config"
	"github.com/homebills/tracker/gateway/firestoredal"
	"github.com/homebills/tracker/gateway/iface"
	"github.com/homebills/tracker/gateway/localstore"
	"github.com/homebills/tracker/logger"
)

type Mode string

const (
	ModeRemote Mode = "remote"
	ModeLocal  Mode = "local"
)

var ErrLocalMode = errors.New("not available in local-only mode")

// Remote bundles the clients available in remote mode.
type Remote struct {
	Firestore *firestore.Client
	Auth      *fbauth.Client
}

// Connector establishes the remote clients, probing store reachability.
type Connector func(ctx context.Context) (*Remote, error)

// Status reports the active session mode and, in local mode, the reason
// the remote store is unavailable.
type Status struct {
	Mode   Mode   `json:"mode"`
	Reason string `json:"reason,omitempty"`
}

type Service struct {
	cfg     *config.Config
	l       logger.Provider
	connect Connector
	local   *localstore.Store

	mu     sync.RWMutex
	mode   Mode
	reason string
	remote *Remote
}

// NewService builds a session service wired to Firebase and the on-disk
// local store.
func NewService(cfg *config.Config, log logger.Provider, local *localstore.Store) *Service {
	return NewServiceWithConnector(cfg, log, FirebaseConnector(cfg), local)
}

// NewServiceWithConnector is the test seam: both backends are injectable.
func NewServiceWithConnector(cfg *config.Config, log logger.Provider, connect Connector, local *localstore.Store) *Service {
	return &Service{
		cfg:     cfg,
		l:       log,
		connect: connect,
		local:   local,
		mode:    ModeLocal,
		reason:  "session not resolved",
	}
}

// FirebaseConnector dials the configured Firebase project and probes the
// document store with a single read before declaring remote mode usable.
func FirebaseConnector(cfg *config.Config) Connector {
	return func(ctx context.Context) (*Remote, error) {
		if cfg.FirebaseProjectID == "" {
			return nil, errors.New("firebase project is not configured")
		}

		var opts []option.ClientOption
		if cfg.GoogleCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
		}

		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
		if err != nil {
			return nil, err
		}

		fs, err := app.Firestore(ctx)
		if err != nil {
			return nil, err
		}

		authClient, err := app.Auth(ctx)
		if err != nil {
			_ = fs.Close()
			return nil, err
		}

		if _, err := fs.Collection("artifacts").Doc(common.AppID).Get(ctx); err != nil {
			if status.Code(err) != codes.NotFound {
				_ = fs.Close()
				return nil, err
			}
		}

		return &Remote{Firestore: fs, Auth: authClient}, nil
	}
}

// Resolve performs the identity/session step once at startup. Any failure
// switches the whole session to local-only mode with a user-visible reason;
// it never fails the process.
func (s *Service) Resolve(ctx context.Context) {
	remote, err := s.connect(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.mode = ModeLocal
		s.reason = fallbackReason(err)
		s.remote = nil

		s.l(ctx).Warningf("session: falling back to local-only mode: %v", err)

		return
	}

	s.mode = ModeRemote
	s.reason = ""
	s.remote = remote
}

// Reconnect retries the remote session step. On success local-only mode is
// cleared; on failure the session stays local and the error is returned.
func (s *Service) Reconnect(ctx context.Context) error {
	remote, err := s.connect(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.mode = ModeLocal
		s.reason = fallbackReason(err)

		return err
	}

	s.mode = ModeRemote
	s.reason = ""
	s.remote = remote

	return nil
}

func (s *Service) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mode
}

func (s *Service) Reason() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reason
}

func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{Mode: s.mode, Reason: s.reason}
}

// Gateway returns the active store implementation scoped to owner. All
// collections share one gateway instance per request; per-operation
// failures on it never flip the session mode.
func (s *Service) Gateway(owner string) iface.Gateway {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.mode == ModeRemote && s.remote != nil {
		return firestoredal.New(s.remote.Firestore, common.AppID, owner)
	}

	return s.local.Gateway(owner)
}

// DefaultOwner is the identity used when a request carries no bearer token.
func (s *Service) DefaultOwner() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.mode == ModeLocal {
		return common.LocalOwnerID
	}

	return s.cfg.OwnerID
}

// VerifyIDToken resolves a Firebase ID token to its uid. Only available in
// remote mode.
func (s *Service) VerifyIDToken(ctx context.Context, token string) (string, error) {
	s.mu.RLock()
	remote := s.remote
	mode := s.mode
	s.mu.RUnlock()

	if mode != ModeRemote || remote == nil || remote.Auth == nil {
		return "", ErrLocalMode
	}

	tok, err := remote.Auth.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return tok.UID, nil
}

func fallbackReason(err error) string {
	switch status.Code(err) {
	case codes.PermissionDenied:
		return "Cloud database access denied. Check Firestore rules and credentials."
	case codes.Unauthenticated:
		return "Invalid cloud credentials."
	case codes.Unavailable, codes.DeadlineExceeded:
		return "Connection failed."
	default:
		return err.Error()
	}
}
