package signup

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/agentgate/internal/common"
	"github.com/dmitrijs2005/agentgate/internal/cryptox"
	"github.com/dmitrijs2005/agentgate/internal/principal"
	"github.com/dmitrijs2005/agentgate/internal/store"
)

// ---- fakes ----

type fakeStore struct {
	createErr error
	created   *principal.Credential
}

func (f *fakeStore) GetByUsername(ctx context.Context, username string) (*principal.Credential, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeStore) CreateIfAbsent(ctx context.Context, cred *principal.Credential) error {
	f.created = cred
	return f.createErr
}

func newService(t *testing.T, s store.CredentialStore) *Service {
	t.Helper()
	svc := NewService(s)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	}
	return svc
}

// ---- tests ----

func TestRegister_StoresDerivedDigest(t *testing.T) {
	fake := &fakeStore{}
	svc := newService(t, fake)

	cred, err := svc.Register(context.Background(), Request{
		Username:    "@Bob",
		HashedToken: "abc",
		Salt:        "xyz",
		Wallet:      "0xdead",
	})
	require.NoError(t, err)

	assert.Equal(t, "bob", cred.Username)
	assert.Equal(t, "xyz", cred.Salt)
	assert.Equal(t, "0xdead", cred.WalletAddress)
	assert.Equal(t, "2024-03-01T12:30:00Z", cred.SignupTimestamp)

	want, err := cryptox.Derive([]byte("abc"), []byte("xyz"))
	require.NoError(t, err)
	assert.Equal(t, want, cred.HashedSecret)

	require.NotNil(t, fake.created, "record must reach the store")
	assert.Equal(t, cred, fake.created)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(cred.SignupMetadata), &m))
	assert.Equal(t, "bob", m["username"])
}

func TestRegister_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"no username", Request{HashedToken: "abc", Salt: "xyz"}},
		{"no token", Request{Username: "bob", Salt: "xyz"}},
		{"no salt", Request{Username: "bob", HashedToken: "abc"}},
		{"empty", Request{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeStore{}
			svc := newService(t, fake)

			_, err := svc.Register(context.Background(), tc.req)
			assert.ErrorIs(t, err, common.ErrMalformedRequest)
			assert.Nil(t, fake.created, "no write attempt for a malformed request")
		})
	}
}

func TestRegister_DuplicatePassesThrough(t *testing.T) {
	fake := &fakeStore{createErr: common.ErrorAlreadyExists}
	svc := newService(t, fake)

	_, err := svc.Register(context.Background(), Request{Username: "bob", HashedToken: "abc", Salt: "xyz"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_StoreFailurePassesThrough(t *testing.T) {
	boom := errors.New("store down")
	fake := &fakeStore{createErr: boom}
	svc := newService(t, fake)

	_, err := svc.Register(context.Background(), Request{Username: "bob", HashedToken: "abc", Salt: "xyz"})
	assert.ErrorIs(t, err, boom)
}
