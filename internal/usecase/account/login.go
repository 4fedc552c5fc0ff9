package account

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-saas/internal/auth"
	domain "github.com/BruksfildServices01/gym-saas/internal/domain/account"
	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/validators"
)

// AttemptLimiter throttles failed logins per key.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

type Authenticate struct {
	repo    domain.Repository
	hasher  *auth.PasswordHasher
	tokens  *auth.TokenIssuer
	limiter AttemptLimiter
	log     *zap.Logger
}

// NewAuthenticate builds the login use case. limiter may be nil.
func NewAuthenticate(
	repo domain.Repository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenIssuer,
	limiter AttemptLimiter,
	log *zap.Logger,
) *Authenticate {
	return &Authenticate{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
		log:     log,
	}
}

// Execute never tells an unknown email apart from a wrong password.
func (uc *Authenticate) Execute(
	ctx context.Context,
	email string,
	password string,
) (*LoginResult, error) {

	email = validators.NormalizeEmail(email)

	if !uc.allowed(ctx, email) {
		return nil, httperr.ErrTooManyAttempts
	}

	user, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		uc.hasher.CompareDummy(password)
		uc.failed(ctx, email)
		return nil, httperr.ErrInvalidCredentials
	}

	if !uc.hasher.Compare(user.PasswordHash, password) {
		uc.failed(ctx, email)
		return nil, httperr.ErrInvalidCredentials
	}

	token, exp, err := uc.tokens.Issue(user.Identity())
	if err != nil {
		return nil, err
	}

	uc.reset(ctx, email)

	return &LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

// --------------------------------------------------
// Throttle (fails open when the limiter is unreachable)
// --------------------------------------------------

func (uc *Authenticate) allowed(ctx context.Context, email string) bool {
	if uc.limiter == nil {
		return true
	}
	ok, err := uc.limiter.Allow(ctx, email)
	if err != nil {
		uc.log.Warn("login limiter unavailable", zap.Error(err))
		return true
	}
	return ok
}

func (uc *Authenticate) failed(ctx context.Context, email string) {
	if uc.limiter == nil {
		return
	}
	if err := uc.limiter.Fail(ctx, email); err != nil {
		uc.log.Warn("login limiter unavailable", zap.Error(err))
	}
}

func (uc *Authenticate) reset(ctx context.Context, email string) {
	if uc.limiter == nil {
		return
	}
	if err := uc.limiter.Reset(ctx, email); err != nil {
		uc.log.Warn("login limiter unavailable", zap.Error(err))
	}
}
