package ai

import (
	"context"

	"github.com/homebills/tracker/logger"
)

// Fixed user-facing strings returned instead of errors. Drafting is a
// best-effort feature; callers always receive displayable text.
const (
	MsgMissingKey  = "AI service is currently unavailable (Missing Key)."
	MsgEmpty       = "Could not generate response."
	MsgUnavailable = "Sorry, AI service is temporarily unavailable."
)

//go:generate mockery --name Drafter --output=./mocks
type Drafter interface {
	Draft(ctx context.Context, prompt string) string
}

// Service drafts human-readable text via the generative-language API.
type Service struct {
	loggerProvider logger.Provider
	client         *Client
}

func NewService(log logger.Provider, client *Client) *Service {
	return &Service{
		loggerProvider: log,
		client:         client,
	}
}

// Draft resolves the prompt to displayable text. It never returns an error:
// a missing credential, a transport failure, or an empty completion each map
// to their fixed fallback string. No network call is made without a key.
func (s *Service) Draft(ctx context.Context, prompt string) string {
	if !s.client.HasKey() {
		s.loggerProvider(ctx).Warning("generative API key is missing")
		return MsgMissingKey
	}

	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		s.loggerProvider(ctx).Errorf("generate content: %v", err)
		return MsgUnavailable
	}

	if text == "" {
		return MsgEmpty
	}

	return text
}
