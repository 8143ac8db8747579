// Package main validates short-lived access codes against the rotating secret list.
package main

import (
	"context"

	"github.com/quotelane/insurance-quote-portal/internal/access"
	"github.com/quotelane/insurance-quote-portal/internal/awsutil"
	"github.com/quotelane/insurance-quote-portal/internal/config"
	"github.com/quotelane/insurance-quote-portal/internal/secretsx"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/rs/zerolog/log"
)

func main() {
	env := config.MustLoad()
	cfg, _, err := awsutil.Load(context.Background(), env.Region)
	if err != nil {
		log.Fatal().Err(err).Msg("load aws config")
	}

	app := &access.App{
		Codes: &secretsx.SecretCodes{
			SM:       secretsmanager.NewFromConfig(cfg),
			SecretID: env.AccessCodesSecret,
		},
	}
	lambda.Start(app.Handle)
}
