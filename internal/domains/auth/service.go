package auth

import "context"

// Service handles sign-in, sign-out and the shared auth state.
//
// Failure policy: backend errors are logged and surfaced on the State;
// credential errors propagate so the HTTP layer can answer 401/403.
type Service interface {
	// Init starts the auth event subscription so every instance observes
	// sign-in and sign-out events as they happen.
	Init(ctx context.Context)

	// SignIn verifies credentials, issues a token backed by a stored
	// session, and publishes a signed-in event. The loading flag always
	// clears on exit.
	SignIn(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// SignOut revokes the stored session. Local state clears even when
	// revocation fails, so the caller always ends up signed out.
	SignOut(ctx context.Context, sessionID string) error

	// State exposes the shared user/session/loading/error state.
	State() *State
}
