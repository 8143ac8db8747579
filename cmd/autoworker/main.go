// Package main commits forwarded auto insurance quote submissions.
package main

import (
	"context"

	"github.com/quotelane/insurance-quote-portal/internal/awsutil"
	"github.com/quotelane/insurance-quote-portal/internal/config"
	"github.com/quotelane/insurance-quote-portal/internal/ddb"
	"github.com/quotelane/insurance-quote-portal/internal/processor"
	"github.com/quotelane/insurance-quote-portal/internal/quote"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

func main() {
	env := config.MustLoad()
	cfg, _, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal().Err(err).Msg("load aws config")
	}

	w := &processor.Worker{
		Store:       &ddb.Repo{DB: dynamodb.NewFromConfig(cfg), Table: env.Table},
		DefaultType: quote.TypeAuto,
	}
	lambda.Start(w.Handle)
}
