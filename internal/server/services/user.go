// Package services contains server-side business logic. UserService owns the
// session token lifecycle: tokens are minted on register and login, checked
// against the store on every protected call, and revoked on logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/dmitrijs2005/useraccounts/internal/server/auth"
	"github.com/dmitrijs2005/useraccounts/internal/server/models"
	"github.com/dmitrijs2005/useraccounts/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/useraccounts/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/useraccounts/internal/server/repositories/sessiontokens"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the data submitted to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserService implements Register, Login, Logout and Reauthenticate.
//
// All returned errors match one of the sentinels in package common:
// ErrValidation, ErrDuplicateEmail, ErrInvalidCredentials, ErrNoSession,
// ErrorUnauthorized or ErrorInternal.
type UserService struct {
	accounts  accounts.Repository
	sessions  sessiontokens.Repository
	jwtSecret []byte
}

// NewUserService constructs a UserService. The secret is copied, so later
// changes to the caller's slice have no effect.
func NewUserService(m repomanager.RepositoryManager, secretKey []byte) *UserService {
	return &UserService{
		accounts:  m.Accounts(),
		sessions:  m.SessionTokens(),
		jwtSecret: append([]byte(nil), secretKey...),
	}
}

func internalError(err error) error {
	return fmt.Errorf("%w: %v", common.ErrorInternal, err)
}

// Register validates the input, stores the account with a hashed password
// and opens a session for it.
//
// Account and session creation are separate writes. If the second fails the
// account stays and the caller can log in later.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.PublicAccount, string, error) {
	if err := validateRegistration(in); err != nil {
		return nil, "", err
	}

	hash, err := preparePassword(in.Password)
	if err != nil {
		return nil, "", internalError(err)
	}

	account, err := s.accounts.Create(ctx, &models.Account{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        strings.ToLower(in.Email),
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, "", common.ErrDuplicateEmail
		}
		return nil, "", internalError(err)
	}

	token, err := s.openSession(ctx, account.ID)
	if err != nil {
		return nil, "", err
	}

	return account.Public(), token, nil
}

// Login checks the credentials and opens a new session. Unknown email and
// wrong password produce the same ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.PublicAccount, string, error) {
	if !validEmail(email) {
		return nil, "", validationError(common.ErrInvalidCredentials.Error())
	}

	account, err := s.accounts.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", internalError(err)
	}

	if !checkPassword(account.PasswordHash, password) {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, account.ID)
	if err != nil {
		return nil, "", err
	}

	return account.Public(), token, nil
}

// Logout revokes token. A token that is not on record yields
// ErrorUnauthorized.
func (s *UserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrNoSession
	}

	deleted, err := s.sessions.Delete(ctx, token)
	if err != nil {
		return internalError(err)
	}
	if !deleted {
		return common.ErrorUnauthorized
	}
	return nil
}

// Reauthenticate resolves a live session token to its account. No new token
// is issued.
func (s *UserService) Reauthenticate(ctx context.Context, token string) (*models.PublicAccount, error) {
	if token == "" {
		return nil, common.ErrNoSession
	}

	if _, err := s.sessions.Find(ctx, token); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, internalError(err)
	}

	accountID, err := auth.GetAccountIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, internalError(err)
	}

	return account.Public(), nil
}

// openSession signs a token for accountID and records it.
func (s *UserService) openSession(ctx context.Context, accountID string) (string, error) {
	token, err := auth.GenerateToken(accountID, s.jwtSecret)
	if err != nil {
		return "", internalError(err)
	}

	if _, err := s.sessions.Create(ctx, token); err != nil {
		return "", internalError(err)
	}

	return token, nil
}
