// Package character reads per-user agent character configuration from
// DynamoDB. The configuration is stored as a JSON string in the "preferences"
// attribute of the user's row.
package character

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dmitrijs2005/agentgate/internal/common"
	"github.com/dmitrijs2005/agentgate/internal/store"
)

// Reader fetches character configuration rows. Read-only.
type Reader struct {
	client store.DynamoAPI
	table  string
}

func NewReader(client store.DynamoAPI, table string) *Reader {
	return &Reader{client: client, table: table}
}

// Info returns the parsed character configuration for userID, or
// common.ErrorNotFound when the user has no row. A row whose preferences
// attribute is not valid JSON is an explicit error, not a silent fallback.
func (r *Reader) Info(ctx context.Context, userID string) (json.RawMessage, error) {

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb get: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("character info for %q: %w", userID, common.ErrorNotFound)
	}

	attr, ok := out.Item["preferences"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, fmt.Errorf("character info for %q: preferences attribute missing or not a string", userID)
	}

	if !json.Valid([]byte(attr.Value)) {
		return nil, fmt.Errorf("character info for %q: invalid preferences JSON", userID)
	}

	return json.RawMessage(attr.Value), nil
}
