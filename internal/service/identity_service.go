package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerhub/portal-service/internal/auth"
	"github.com/careerhub/portal-service/internal/domain"
	"github.com/careerhub/portal-service/internal/repository"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

const minPasswordLength = 6

// TokenGrant is the result of a successful local sign-up or sign-in.
type TokenGrant struct {
	IDToken   string
	LocalID   string
	Email     string
	ExpiresAt time.Time
}

// IdentityService is the local identity provider: it owns email/password accounts and
// mints ID tokens that the AuthGate accepts.
type IdentityService struct {
	accounts   repository.AccountRepository
	tokens     *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// NewIdentityService builds the service.
func NewIdentityService(accounts repository.AccountRepository, tokens *auth.TokenManager, bcryptCost int, logger *zap.Logger) *IdentityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdentityService{accounts: accounts, tokens: tokens, bcryptCost: bcryptCost, logger: logger}
}

// SignUp creates an account and returns its first ID token.
func (s *IdentityService) SignUp(ctx context.Context, email, password string) (*TokenGrant, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		s.logger.Error("create account failed", zap.Error(err))
		return nil, apperrors.NewStorageError(err)
	}
	return s.grant(account)
}

// SignIn checks the password and returns a fresh ID token.
func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*TokenGrant, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		var missing []string
		if email == "" {
			missing = append(missing, "email")
		}
		if password == "" {
			missing = append(missing, "password")
		}
		return nil, apperrors.NewMissingFields(missing...)
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewInvalidCredential(nil)
		}
		s.logger.Error("load account failed", zap.Error(err))
		return nil, apperrors.NewStorageError(err)
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, apperrors.NewInvalidCredential(nil)
	}
	return s.grant(account)
}

func (s *IdentityService) grant(account *domain.Account) (*TokenGrant, error) {
	token, exp, err := s.tokens.GenerateToken(account.ID, account.Email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &TokenGrant{IDToken: token, LocalID: account.ID, Email: account.Email, ExpiresAt: exp}, nil
}

func validateCredentials(email, password string) error {
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return apperrors.NewMissingFields(missing...)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.NewValidationError("invalid email", map[string]any{"field": "email"})
	}
	if len(password) < minPasswordLength {
		return apperrors.NewValidationError("password too short", map[string]any{"min_length": minPasswordLength})
	}
	return nil
}
