// Package authorizer implements the bearer-credential authorization decision:
// parse the credential, look up the principal, recompute the digest, and
// either allow with identity context or deny uniformly.
package authorizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/agentgate/internal/common"
	"github.com/dmitrijs2005/agentgate/internal/cryptox"
	"github.com/dmitrijs2005/agentgate/internal/principal"
	"github.com/dmitrijs2005/agentgate/internal/store"
)

const bearerScheme = "Bearer"

// Decision is the allow outcome: the authorized principal plus the context
// values passed downstream by the gateway.
type Decision struct {
	PrincipalID string
	Username    string
	Wallet      string
}

// Service makes authorization decisions against the credential store.
type Service struct {
	store store.CredentialStore
}

func NewService(s store.CredentialStore) *Service {
	return &Service{store: s}
}

// Authorize validates a credential of the exact shape
// "Bearer <username>:<plaintext-secret>" and returns the allow decision.
//
// Errors distinguish the internal cause (format, unknown principal, secret
// mismatch, store failure) for logging only; callers must collapse every
// failure into one uniform denial before it crosses the trust boundary.
func (s *Service) Authorize(ctx context.Context, authHeader string) (*Decision, error) {

	username, secret, err := parseCredential(authHeader)
	if err != nil {
		return nil, err
	}

	username = principal.Normalize(username)

	cred, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn the same KDF cost as the found path so an absent
			// username is not distinguishable by timing.
			if salt, saltErr := cryptox.RandomSalt(16); saltErr == nil {
				_, _ = cryptox.Derive([]byte(secret), []byte(salt))
			}
			return nil, fmt.Errorf("principal %q: %w", username, common.ErrorNotFound)
		}
		return nil, fmt.Errorf("credential lookup: %w", err)
	}

	digest, err := cryptox.Derive([]byte(secret), []byte(cred.Salt))
	if err != nil {
		return nil, fmt.Errorf("deriving digest: %w", err)
	}

	if !cryptox.Equal(digest, cred.HashedSecret) {
		return nil, common.ErrorUnauthorized
	}

	wallet := cred.WalletAddress
	if wallet == "" {
		wallet = "none"
	}

	return &Decision{PrincipalID: username, Username: username, Wallet: wallet}, nil
}

// parseCredential splits "Bearer username:secret" into its parts. Any
// deviation from that exact shape is a format error.
func parseCredential(header string) (username, secret string, err error) {
	if header == "" {
		return "", "", common.ErrInvalidAuthHeaderFormat
	}

	scheme, credential, found := strings.Cut(header, " ")
	if !found || scheme != bearerScheme || credential == "" {
		return "", "", common.ErrInvalidAuthHeaderFormat
	}

	username, secret, found = strings.Cut(credential, ":")
	if !found || username == "" || secret == "" {
		return "", "", common.ErrInvalidAuthHeaderFormat
	}

	return username, secret, nil
}
