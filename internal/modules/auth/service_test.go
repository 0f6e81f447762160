package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dogstudio/internal/domain"
	"dogstudio/internal/pkg/jwt"
)

// Mock repositories
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func adminUser(t *testing.T) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           1,
		Email:        "admin@dogstudio.in",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
}

func newTestAuth(t *testing.T, repo *MockUserRepository) *Service {
	return NewService(repo, jwt.New("test-secret", time.Hour))
}

func TestSignIn_Success(t *testing.T) {
	repo := new(MockUserRepository)
	s := newTestAuth(t, repo)

	repo.On("GetByEmail", mock.Anything, "admin@dogstudio.in").Return(adminUser(t), nil)

	res, err := s.SignIn(context.Background(), "admin@dogstudio.in", "admin123")

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Empty(t, res.User.PasswordHash)

	sess, err := s.Current(res.Token)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), sess.UserID)
	assert.Equal(t, "admin", sess.Role)
}

func TestSignIn_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	s := newTestAuth(t, repo)

	repo.On("GetByEmail", mock.Anything, "admin@dogstudio.in").Return(adminUser(t), nil)

	_, err := s.SignIn(context.Background(), "admin@dogstudio.in", "letmein")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	s := newTestAuth(t, repo)

	repo.On("GetByEmail", mock.Anything, "nobody@dogstudio.in").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.SignIn(context.Background(), "nobody@dogstudio.in", "admin123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOut_RevokesToken(t *testing.T) {
	repo := new(MockUserRepository)
	s := newTestAuth(t, repo)

	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(adminUser(t), nil)

	res, err := s.SignIn(context.Background(), "admin@dogstudio.in", "admin123")
	assert.NoError(t, err)

	_, err = s.Current(res.Token)
	assert.NoError(t, err)

	s.SignOut(res.Token)

	_, err = s.Current(res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCurrent_MalformedToken(t *testing.T) {
	s := newTestAuth(t, new(MockUserRepository))

	_, err := s.Current("not.a.token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSubscribe(t *testing.T) {
	repo := new(MockUserRepository)
	s := newTestAuth(t, repo)

	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(adminUser(t), nil)

	var events []*Session
	cancel := s.Subscribe(func(sess *Session) {
		events = append(events, sess)
	})

	res, err := s.SignIn(context.Background(), "admin@dogstudio.in", "admin123")
	assert.NoError(t, err)
	s.SignOut(res.Token)

	assert.Len(t, events, 2)
	assert.NotNil(t, events[0])
	assert.Equal(t, "admin@dogstudio.in", events[0].Email)
	assert.Nil(t, events[1])

	cancel()
	_, err = s.SignIn(context.Background(), "admin@dogstudio.in", "admin123")
	assert.NoError(t, err)
	assert.Len(t, events, 2)
}
