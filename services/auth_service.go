package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/JekaTruck/Jeka-Truck/apperrors"
	"github.com/JekaTruck/Jeka-Truck/models"
	"github.com/JekaTruck/Jeka-Truck/repository"
)

// credential is one entry of the fixed allow-list. This is a demo login, not
// a security boundary; accounts live in code, not in storage.
type credential struct {
	username     string
	passwordHash []byte
	user         models.User
}

// AuthService validates credentials against the fixed table and keeps the
// current session persisted through the session repository.
type AuthService struct {
	credentials []credential
	sessions    *repository.SessionRepository
	tokens      *TokenService
}

func NewAuthService(sessions *repository.SessionRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		credentials: []credential{
			mustCredential("admin", "admin123", models.User{
				ID:       "1",
				Username: "admin",
				Email:    "admin@autopecas.com",
				Role:     models.RoleAdmin,
			}),
			mustCredential("editor", "editor123", models.User{
				ID:       "2",
				Username: "editor",
				Email:    "editor@autopecas.com",
				Role:     models.RoleEditor,
			}),
		},
		sessions: sessions,
		tokens:   tokens,
	}
}

func mustCredential(username, password string, user models.User) credential {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic("failed to hash credential: " + err.Error())
	}
	return credential{username: username, passwordHash: hash, user: user}
}

// Authenticate checks the pair against the allow-list and returns the user
// projection with no secret material. Unknown user and wrong password yield
// the identical rejection.
func (s *AuthService) Authenticate(_ context.Context, username, password string) (models.User, error) {
	for _, cred := range s.credentials {
		if cred.username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(password)) != nil {
			return models.User{}, apperrors.ErrInvalidCredentials
		}
		return cred.user, nil
	}
	return models.User{}, apperrors.ErrInvalidCredentials
}

// Login authenticates, persists the session (overwriting any existing one)
// and issues an access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return models.User{}, "", err
	}

	if err := s.sessions.Persist(ctx, user); err != nil {
		return models.User{}, "", err
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Logout clears the persisted session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Current returns the restored session user, or nil when nobody is logged in.
func (s *AuthService) Current(ctx context.Context) (*models.User, error) {
	return s.sessions.Restore(ctx)
}
