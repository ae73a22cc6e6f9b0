package signup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrijs2005/agentgate/internal/common"
	"github.com/dmitrijs2005/agentgate/internal/logging"
)

// Handler adapts the signup service to the API Gateway proxy integration.
type Handler struct {
	service *Service
	logger  logging.Logger
}

func NewHandler(service *Service, logger logging.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type successBody struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type messageBody struct {
	Message string `json:"message"`
}

// Handle processes one signup request.
//
// Responses: 200 with {message, username} on success; 409 when the username
// is already registered (an expected outcome, not an error); 500 for a
// missing/invalid body or any store failure, with no internal detail leaked.
// Every response carries permissive CORS headers.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {

	if event.Body == "" {
		h.logger.Error(ctx, "signup request has no body")
		return respond(http.StatusInternalServerError, messageBody{Message: "Internal server error"}), nil
	}

	var req Request
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		h.logger.Error(ctx, "signup body is not valid JSON", "error", err)
		return respond(http.StatusInternalServerError, messageBody{Message: "Internal server error"}), nil
	}

	cred, err := h.service.Register(ctx, req)

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			h.logger.Info(ctx, "duplicate signup", "username", req.Username)
			return respond(http.StatusConflict, messageBody{Message: "User has already signed up"}), nil
		}
		h.logger.Error(ctx, "signup failed", "error", err)
		return respond(http.StatusInternalServerError, messageBody{Message: "Internal server error"}), nil
	}

	h.logger.Info(ctx, "signup successful", "username", cred.Username)
	return respond(http.StatusOK, successBody{Message: "Signup successful", Username: cred.Username}), nil
}

func respond(status int, body any) events.APIGatewayProxyResponse {
	b, _ := json.Marshal(body)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":      "*",
			"Access-Control-Allow-Credentials": "true",
		},
		Body: string(b),
	}
}
