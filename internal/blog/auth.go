package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blog-cms/internal/auth"
	"github.com/daniilsolovey/blog-cms/internal/db"
)

type AuthManager struct {
	db     *db.Repository
	hasher *auth.Hasher
	tokens *auth.TokenManager
}

func NewAuthManager(repo *db.Repository, hasher *auth.Hasher, tokens *auth.TokenManager) *AuthManager {
	return &AuthManager{
		db:     repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates an account. Username and email must both be unused.
func (m *AuthManager) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, validationError("passwords do not match")
	}

	existing, err := m.db.UserByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if existing != nil {
		if existing.Username == in.Username {
			return nil, conflictError("username %q is already taken", in.Username)
		}
		return nil, conflictError("email %q is already registered", in.Email)
	}

	hash, err := m.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &db.User{Username: in.Username, Email: in.Email, Password: hash}
	if err := m.db.InsertUser(ctx, user); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, conflictError("username or email is already taken")
		}
		return nil, fmt.Errorf("db insert user: %w", err)
	}

	result := NewUser(*user)
	return &result, nil
}

// ValidateUser returns the user when the credentials match, nil otherwise.
func (m *AuthManager) ValidateUser(ctx context.Context, username, password string) (*User, error) {
	user, err := m.db.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("db get user by username: %w", err)
	} else if user == nil {
		return nil, nil
	}

	ok, err := m.hasher.Compare(user.Password, password)
	if err != nil {
		return nil, err
	} else if !ok {
		return nil, nil
	}

	result := NewUser(*user)
	return &result, nil
}

// Login checks the credentials and issues a bearer token.
func (m *AuthManager) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := m.ValidateUser(ctx, username, password)
	if err != nil {
		return nil, err
	} else if user == nil {
		return nil, ErrInvalidCredentials
	}

	token, err := m.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: *user}, nil
}
