// Package store provides the credential store: an abstract durable key-value
// map with conditional-insert semantics, backed by DynamoDB in production and
// by an in-memory map in tests.
package store

import (
	"context"

	"github.com/dmitrijs2005/agentgate/internal/principal"
)

// CredentialStore is the persistence interface for credential records.
//
// GetByUsername returns common.ErrorNotFound when no record exists.
// CreateIfAbsent must be atomic: it returns common.ErrorAlreadyExists when a
// record with the same username is already present, and never overwrites.
type CredentialStore interface {
	GetByUsername(ctx context.Context, username string) (*principal.Credential, error)
	CreateIfAbsent(ctx context.Context, cred *principal.Credential) error
}
