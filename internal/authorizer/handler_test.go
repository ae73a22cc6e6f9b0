package authorizer

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/agentgate/internal/cryptox"
	"github.com/dmitrijs2005/agentgate/internal/logging"
	"github.com/dmitrijs2005/agentgate/internal/principal"
	"github.com/dmitrijs2005/agentgate/internal/store"
)

const methodArn = "arn:aws:execute-api:us-east-1:123456789012:api/prod/GET/agent"

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	st := store.NewMemoryStore()
	digest, err := cryptox.Derive([]byte("abc"), []byte("xyz"))
	require.NoError(t, err)
	cred, err := principal.NewCredential("bob", digest, "xyz", "0xdead", time.Now())
	require.NoError(t, err)
	require.NoError(t, st.CreateIfAbsent(context.Background(), cred))

	return NewHandler(NewService(st), logging.Discard())
}

func TestHandle_AllowPolicy(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h.Handle(context.Background(), events.APIGatewayCustomAuthorizerRequestTypeRequest{
		MethodArn: methodArn,
		Headers:   map[string]string{"Authorization": "Bearer bob:abc"},
	})
	require.NoError(t, err)

	assert.Equal(t, "bob", resp.PrincipalID)
	assert.Equal(t, "2012-10-17", resp.PolicyDocument.Version)

	require.Len(t, resp.PolicyDocument.Statement, 1)
	stmt := resp.PolicyDocument.Statement[0]
	assert.Equal(t, []string{"execute-api:Invoke"}, stmt.Action)
	assert.Equal(t, "Allow", stmt.Effect)
	assert.Equal(t, []string{methodArn}, stmt.Resource)

	assert.Equal(t, "bob", resp.Context["username"])
	assert.Equal(t, "0xdead", resp.Context["wallet"])
}

func TestHandle_LowercaseHeaderAccepted(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h.Handle(context.Background(), events.APIGatewayCustomAuthorizerRequestTypeRequest{
		MethodArn: methodArn,
		Headers:   map[string]string{"authorization": "Bearer bob:abc"},
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", resp.PrincipalID)
}

func TestHandle_UniformDeny(t *testing.T) {
	// wrong secret, malformed header, and unknown user must be
	// indistinguishable to the caller
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"wrong secret", map[string]string{"Authorization": "Bearer bob:nope"}},
		{"unknown user", map[string]string{"Authorization": "Bearer mallory:abc"}},
		{"malformed header", map[string]string{"Authorization": "garbage"}},
		{"missing header", map[string]string{}},
	}

	h := newTestHandler(t)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := h.Handle(context.Background(), events.APIGatewayCustomAuthorizerRequestTypeRequest{
				MethodArn: methodArn,
				Headers:   tc.headers,
			})
			require.Error(t, err)
			assert.EqualError(t, err, "Unauthorized")
			assert.Empty(t, resp.PrincipalID)
			assert.Empty(t, resp.PolicyDocument.Statement)
		})
	}
}
