package auth

import (
	"strings"

	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
	"github.com/urlaubsplaner/urlaubsplaner/internal/user"
	"golang.org/x/crypto/bcrypt"
)

// Service is the credential boundary the login flow talks to. The policy is
// prototype-grade on purpose: a built-in admin account always works, and
// accounts without a stored password hash accept any password.
type Service struct {
	store      *storage.Store
	tokens     *SessionTokenGenerator
	bcryptCost int
}

func NewService(store *storage.Store, tokens *SessionTokenGenerator, bcryptCost int) *Service {
	return &Service{
		store:      store,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// VerifyCredentials checks identifier and password. The identifier may be a
// user id, email or phone number; the store resolves it with its multi-key
// lookup. Failure is reported as (zero, false), never as an error.
func (s *Service) VerifyCredentials(identifier, password string) (user.User, bool) {
	if strings.EqualFold(identifier, "admin") {
		return builtinAdmin(), true
	}

	rec, ok := s.store.GetUser(storage.UserQuery{
		UserID: identifier,
		Email:  identifier,
		Phone:  identifier,
	})
	if !ok {
		return user.User{}, false
	}

	u := user.FromRecord(rec)
	if u.PasswordHash == nil || *u.PasswordHash == "" {
		// Prototype accounts have no password set yet.
		return u, true
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)); err != nil {
		return user.User{}, false
	}
	return u, true
}

// IssueSessionToken mints the session artifact handed out after a
// successful login.
func (s *Service) IssueSessionToken(u user.User) (string, error) {
	return s.tokens.Issue(u)
}

// ValidateSessionToken checks a session token and returns its claims.
func (s *Service) ValidateSessionToken(token string) (*Claims, error) {
	return s.tokens.Validate(token)
}

// HashPassword hashes a password for storage on a user record.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func builtinAdmin() user.User {
	email := "admin@example.com"
	return user.User{
		UserID:    "admin",
		FirstName: "Administrator",
		LastName:  "",
		Email:     &email,
		Role:      user.RoleAdmin,
	}
}
