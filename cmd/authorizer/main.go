package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/dmitrijs2005/agentgate/internal/authorizer"
	"github.com/dmitrijs2005/agentgate/internal/config"
	"github.com/dmitrijs2005/agentgate/internal/logging"
	"github.com/dmitrijs2005/agentgate/internal/store"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(cfg.LogLevel)

	client, err := store.NewDynamoClient(ctx, cfg)
	if err != nil {
		log.Fatalf("dynamodb client init: %v", err)
	}

	service := authorizer.NewService(store.NewDynamoStore(client, cfg.SignupsTable))
	handler := authorizer.NewHandler(service, logger)

	lambda.Start(handler.Handle)
}
