// Package signup implements user registration: it derives the stored
// credential digest and performs the single conditional write that enforces
// username uniqueness.
package signup

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/agentgate/internal/common"
	"github.com/dmitrijs2005/agentgate/internal/cryptox"
	"github.com/dmitrijs2005/agentgate/internal/principal"
	"github.com/dmitrijs2005/agentgate/internal/store"
)

// Request is the signup payload. Username, HashedToken, and Salt are
// required; Wallet is optional. HashedToken is the opaque secret material the
// client will later present (after the colon) in the bearer credential — the
// server derives the stored digest from it exactly once, here.
type Request struct {
	Username    string `json:"username"`
	HashedToken string `json:"hashedToken"`
	Salt        string `json:"salt"`
	Wallet      string `json:"wallet,omitempty"`
}

// Service registers principals in the credential store.
type Service struct {
	store store.CredentialStore
	now   func() time.Time
}

// NewService constructs a Service over the given credential store.
func NewService(s store.CredentialStore) *Service {
	return &Service{store: s, now: time.Now}
}

// Register normalizes the username, derives the credential digest, and
// attempts the create-only write. A duplicate username surfaces as
// common.ErrorAlreadyExists; missing required fields as
// common.ErrMalformedRequest. Exactly one durable write attempt per call.
func (s *Service) Register(ctx context.Context, req Request) (*principal.Credential, error) {

	if req.Username == "" || req.HashedToken == "" || req.Salt == "" {
		return nil, common.ErrMalformedRequest
	}

	username := principal.Normalize(req.Username)

	digest, err := cryptox.Derive([]byte(req.HashedToken), []byte(req.Salt))
	if err != nil {
		return nil, fmt.Errorf("deriving digest: %w", err)
	}

	cred, err := principal.NewCredential(username, digest, req.Salt, req.Wallet, s.now())
	if err != nil {
		return nil, fmt.Errorf("building credential: %w", err)
	}

	if err := s.store.CreateIfAbsent(ctx, cred); err != nil {
		return nil, err
	}

	return cred, nil
}
