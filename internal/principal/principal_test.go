package principal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"@Alice", "alice"},
		{"alice", "alice"},
		{"ALICE", "alice"},
		{"@bob", "bob"},
		{"@@bob", "@bob"}, // only one leading @ is stripped
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, u := range []string{"@Alice", "bob", "@X", ""} {
		once := Normalize(u)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNewCredential(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	cred, err := NewCredential("bob", "digest", "xyz", "0xdead", createdAt)
	require.NoError(t, err)

	assert.Equal(t, "bob", cred.Username)
	assert.Equal(t, "digest", cred.HashedSecret)
	assert.Equal(t, "xyz", cred.Salt)
	assert.Equal(t, "0xdead", cred.WalletAddress)
	assert.Equal(t, "2024-03-01T12:30:00Z", cred.SignupTimestamp)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(cred.SignupMetadata), &m))
	assert.Equal(t, "bob", m["username"])
	assert.Equal(t, "0xdead", m["wallet"])
	assert.Equal(t, "2024-03-01T12:30:00Z", m["timestamp"])
}

func TestNewCredential_NoWallet(t *testing.T) {
	cred, err := NewCredential("bob", "digest", "xyz", "", time.Now())
	require.NoError(t, err)

	assert.Empty(t, cred.WalletAddress)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(cred.SignupMetadata), &m))
	assert.Contains(t, m, "wallet")
	assert.Nil(t, m["wallet"], "absent wallet must serialize as null")
}

func TestNewCredential_TimestampIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	createdAt := time.Date(2024, 3, 1, 17, 30, 0, 0, loc)

	cred, err := NewCredential("bob", "digest", "xyz", "", createdAt)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:30:00Z", cred.SignupTimestamp)
}
