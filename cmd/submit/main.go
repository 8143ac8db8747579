// Package main accepts quote submissions and forwards novel ones to the pipeline.
package main

import (
	"context"

	"github.com/quotelane/insurance-quote-portal/internal/awsutil"
	"github.com/quotelane/insurance-quote-portal/internal/config"
	"github.com/quotelane/insurance-quote-portal/internal/ddb"
	"github.com/quotelane/insurance-quote-portal/internal/intake"
	"github.com/quotelane/insurance-quote-portal/internal/snsx"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog/log"
)

func main() {
	env := config.MustLoad()
	cfg, _, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal().Err(err).Msg("load aws config")
	}

	app := &intake.App{
		Store:           &ddb.Repo{DB: dynamodb.NewFromConfig(cfg), Table: env.Table},
		Publisher:       &snsx.TopicPublisher{SNS: sns.NewFromConfig(cfg), TopicARN: env.TopicARN},
		TopicConfigured: env.TopicARN != "",
	}
	lambda.Start(app.Handle)
}
