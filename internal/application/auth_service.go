package application

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"getcooked/internal/domain"
	"getcooked/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const (
	// stateBytes gives 128 bits of entropy per nonce
	stateBytes = 16

	defaultStateTTL = 10 * time.Minute
)

// AuthService struct - Application service implementing the OAuth authorization-code flow
type AuthService struct {
	provider output.OAuthProvider
	ledger   output.StateLedger
	stateTTL time.Duration
}

// NewAuthService func - Creates new auth service.
// ledger may be nil, in which case nonces are only checked against the stored cookie.
func NewAuthService(provider output.OAuthProvider, ledger output.StateLedger, stateTTL time.Duration) *AuthService {
	if stateTTL <= 0 {
		stateTTL = defaultStateTTL
	}
	return &AuthService{
		provider: provider,
		ledger:   ledger,
		stateTTL: stateTTL,
	}
}

// BeginAuthorization func - Use case: start an authorization round trip
func (s *AuthService) BeginAuthorization(ctx context.Context) (*domain.AuthorizationRedirect, error) {
	state, err := newState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate oauth state: %w", err)
	}

	return &domain.AuthorizationRedirect{
		URL:      s.provider.AuthCodeURL(state),
		State:    state,
		StateTTL: s.stateTTL,
	}, nil
}

// CompleteAuthorization func - Use case: validate the callback and exchange the code for tokens
func (s *AuthService) CompleteAuthorization(ctx context.Context, request domain.CallbackRequest, storedState string) (*domain.TokenPair, error) {
	if !statesMatch(request.State, storedState) {
		return nil, domain.ErrStateMismatch
	}

	if request.Code == "" {
		if request.Error != "" {
			return nil, fmt.Errorf("%w: provider returned %s", domain.ErrMissingCode, request.Error)
		}
		return nil, domain.ErrMissingCode
	}

	if s.ledger != nil {
		fresh, err := s.ledger.Consume(ctx, request.State, s.stateTTL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStateStore, err)
		}
		if !fresh {
			logrus.Warn("OAuth state replayed, rejecting callback")
			return nil, domain.ErrStateMismatch
		}
	}

	tokens, err := s.provider.Exchange(ctx, request.Code)
	if err != nil {
		var exchangeErr *domain.TokenExchangeError
		if errors.As(err, &exchangeErr) {
			logrus.Warnf("Token exchange rejected: status=%d", exchangeErr.Status)
		}
		return nil, err
	}

	logrus.Info("Token exchange successful")

	return tokens, nil
}

// statesMatch compares the returned and stored nonce; both must be present and identical
func statesMatch(returned, stored string) bool {
	if returned == "" || stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(returned), []byte(stored)) == 1
}

func newState() (string, error) {
	buf := make([]byte, stateBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
