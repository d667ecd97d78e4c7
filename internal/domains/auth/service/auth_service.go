package service

import (
	"context"
	"fmt"

	"streetcats-backend/internal/domains/auth"
	"streetcats-backend/pkg/cache"
	"streetcats-backend/pkg/jwt"
	"streetcats-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

const (
	sessionKeyPrefix = "session:"
	eventsChannel    = "auth:events"

	eventSignedIn  = "SIGNED_IN"
	eventSignedOut = "SIGNED_OUT"
)

type authEvent struct {
	Event     string `json:"event"`
	SessionID string `json:"session_id"`
	Email     string `json:"email,omitempty"`
}

type authService struct {
	repo     auth.Repository
	sessions cache.Cache
	tokens   *jwt.Manager
	state    *auth.State
}

func NewAuthService(repo auth.Repository, sessions cache.Cache, tokens *jwt.Manager, state *auth.State) auth.Service {
	return &authService{
		repo:     repo,
		sessions: sessions,
		tokens:   tokens,
		state:    state,
	}
}

func (s *authService) State() *auth.State {
	return s.state
}

// Init subscribes to the auth events channel. Every instance hears
// sign-in and sign-out as they happen, so a session revoked anywhere is
// visible everywhere.
func (s *authService) Init(ctx context.Context) {
	events, err := s.sessions.Subscribe(ctx, eventsChannel)
	if err != nil {
		logger.Warn("auth events subscription failed", err)
		return
	}

	go func() {
		for payload := range events {
			logger.Info("auth event", map[string]interface{}{"payload": payload})
		}
	}()
}

func (s *authService) SignIn(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	s.state.SetLoading(true)
	s.state.ClearError()
	defer s.state.SetLoading(false)

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Not-found and a wrong password answer identically.
		logger.Warn("sign in: lookup failed", err)
		s.state.SetError(auth.ErrInvalidCredentials.Error())
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.state.SetError(auth.ErrInvalidCredentials.Error())
		return nil, auth.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.state.SetError(auth.ErrUserInactive.Error())
		return nil, auth.ErrUserInactive
	}

	token, sessionID, expiresAt, err := s.tokens.GenerateSessionToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		logger.Error("sign in: token generation failed", err)
		s.state.SetError("sign in failed")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := &auth.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}

	// The stored key is what makes the token revocable: validation checks
	// for it, so deleting the key kills the session.
	if err := s.sessions.Set(ctx, sessionKeyPrefix+sessionID, session, s.tokens.Expiry()); err != nil {
		logger.Error("sign in: session store failed", err)
		s.state.SetError("sign in failed")
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	if err := s.sessions.Publish(ctx, eventsChannel, authEvent{
		Event:     eventSignedIn,
		SessionID: sessionID,
		Email:     user.Email,
	}); err != nil {
		logger.Warn("sign in: event publish failed", err)
	}

	s.state.SetSession(user, session)

	return &auth.LoginResponse{User: user, Session: session}, nil
}

func (s *authService) SignOut(ctx context.Context, sessionID string) error {
	// Local state clears no matter what; a failed revocation must not
	// leave the caller half signed in.
	defer s.state.Clear()

	if err := s.sessions.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		logger.Error("sign out: session revocation failed", err)
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	if err := s.sessions.Publish(ctx, eventsChannel, authEvent{
		Event:     eventSignedOut,
		SessionID: sessionID,
	}); err != nil {
		logger.Warn("sign out: event publish failed", err)
	}

	return nil
}
