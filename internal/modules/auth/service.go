package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dogstudio/internal/logger"
)

// Session is the resolved identity behind a bearer token.
type Session struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Service is both the sign-in service and the session provider: consumers
// resolve the current session with Current and observe sign-in/sign-out
// through Subscribe, instead of reading ambient global auth state.
type Service struct {
	users UserRepository
	jwt   jwtService

	mu      sync.Mutex
	revoked map[string]time.Time // token -> expiry, pruned lazily
	subs    map[int]func(*Session)
	nextSub int
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{
		users:   users,
		jwt:     jwt,
		revoked: make(map[string]time.Time),
		subs:    make(map[int]func(*Session)),
	}
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	s.notify(&Session{UserID: user.ID, Email: user.Email, Role: string(user.Role)})

	logger.InfoLogger.Infof("Admin signed in: %s", user.Email)
	return &SignInResult{User: user, Token: token}, nil
}

// SignOut revokes the token and notifies subscribers with a nil session.
func (s *Service) SignOut(token string) {
	claims, err := s.jwt.ValidateToken(token)

	s.mu.Lock()
	now := time.Now()
	for t, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, t)
		}
	}
	if err == nil && claims.ExpiresAt != nil {
		s.revoked[token] = claims.ExpiresAt.Time
	}
	s.mu.Unlock()

	s.notify(nil)
}

// Current resolves the session behind token, rejecting expired, malformed
// and revoked tokens.
func (s *Service) Current(token string) (*Session, error) {
	s.mu.Lock()
	_, isRevoked := s.revoked[token]
	s.mu.Unlock()
	if isRevoked {
		return nil, ErrInvalidToken
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Session{UserID: claims.UserID, Role: claims.Role}, nil
}

// Subscribe registers a callback invoked on every session change: the new
// session on sign-in, nil on sign-out. The returned function cancels the
// subscription.
func (s *Service) Subscribe(fn func(*Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Service) notify(sess *Session) {
	s.mu.Lock()
	fns := make([]func(*Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}
