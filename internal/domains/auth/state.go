package auth

import "sync"

// State is the shared authentication state: who is signed in, the live
// session, a loading flag for in-flight sign-in, and the last error
// message. All access is mutex-guarded.
type State struct {
	mu      sync.RWMutex
	user    *User
	session *Session
	loading bool
	errMsg  string
}

func NewState() *State {
	return &State{}
}

func (s *State) SetSession(user *User, session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.session = session
}

// Clear drops the signed-in user and session.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.session = nil
}

func (s *State) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *State) Session() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// SignedIn reports whether a session is present.
func (s *State) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

func (s *State) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *State) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

func (s *State) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

func (s *State) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}
