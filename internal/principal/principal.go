// Package principal defines the credential record stored per registered user
// and the username normalization shared by signup and authorization.
package principal

import (
	"encoding/json"
	"strings"
	"time"
)

// Credential is the durable record for one registered principal, keyed by
// normalized username. Records are created exactly once by signup and are
// read-only afterwards; no update or delete path exists.
type Credential struct {
	Username        string `dynamodbav:"username"`
	Salt            string `dynamodbav:"salt"`
	HashedSecret    string `dynamodbav:"hashed_token"`
	WalletAddress   string `dynamodbav:"wallet_address"`
	SignupTimestamp string `dynamodbav:"signup_timestamp"`
	SignupMetadata  string `dynamodbav:"signup_metadata"`
}

// Normalize strips one leading "@" and lower-cases the username. Idempotent.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimPrefix(username, "@"))
}

type metadata struct {
	Username  string  `json:"username"`
	Wallet    *string `json:"wallet"`
	Timestamp string  `json:"timestamp"`
}

// NewCredential builds a Credential for the normalized username with the
// given digest, salt, and optional wallet address, stamped with createdAt in
// RFC 3339 UTC. The signup_metadata blob is a write-only audit trail
// duplicating username, wallet, and timestamp; the wallet is serialized as
// null when absent.
func NewCredential(username, digest, salt, wallet string, createdAt time.Time) (*Credential, error) {
	ts := createdAt.UTC().Format(time.RFC3339)

	m := metadata{Username: username, Timestamp: ts}
	if wallet != "" {
		m.Wallet = &wallet
	}
	blob, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	return &Credential{
		Username:        username,
		Salt:            salt,
		HashedSecret:    digest,
		WalletAddress:   wallet,
		SignupTimestamp: ts,
		SignupMetadata:  string(blob),
	}, nil
}
