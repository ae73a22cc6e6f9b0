package authorizer

import (
	"context"
	"errors"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrijs2005/agentgate/internal/logging"
)

// ErrUnauthorized is the single deny signal. API Gateway maps a handler
// error with this exact message to a 401 response.
var ErrUnauthorized = errors.New("Unauthorized")

// Handler adapts the authorization service to the API Gateway request
// authorizer integration.
type Handler struct {
	service *Service
	logger  logging.Logger
}

func NewHandler(service *Service, logger logging.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle decides one authorization request. The outcome is binary: an allow
// policy scoped to the request's method ARN, or ErrUnauthorized. The internal
// failure cause is logged but never reaches the caller.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayCustomAuthorizerRequestTypeRequest) (events.APIGatewayCustomAuthorizerResponse, error) {

	header := event.Headers["Authorization"]
	if header == "" {
		header = event.Headers["authorization"]
	}

	decision, err := h.service.Authorize(ctx, header)
	if err != nil {
		h.logger.Error(ctx, "authorization failed", "error", err)
		return events.APIGatewayCustomAuthorizerResponse{}, ErrUnauthorized
	}

	h.logger.Info(ctx, "authorization allowed", "username", decision.Username)
	return allowResponse(decision, event.MethodArn), nil
}

func allowResponse(d *Decision, methodArn string) events.APIGatewayCustomAuthorizerResponse {
	return events.APIGatewayCustomAuthorizerResponse{
		PrincipalID: d.PrincipalID,
		PolicyDocument: events.APIGatewayCustomAuthorizerPolicy{
			Version: "2012-10-17",
			Statement: []events.IAMPolicyStatement{
				{
					Action:   []string{"execute-api:Invoke"},
					Effect:   "Allow",
					Resource: []string{methodArn},
				},
			},
		},
		Context: map[string]interface{}{
			"username": d.Username,
			"wallet":   d.Wallet,
		},
	}
}
