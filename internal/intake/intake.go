// Package intake implements the synchronous quote submission handler.
//
// Intake validates the submission, pre-checks the store for an existing
// quote under the same identity key, computes an estimate premium for
// immediate feedback, and forwards novel submissions to the async pipeline.
// The pre-check is advisory: it may race with a concurrent commit, and the
// worker's conditional insert remains the authoritative dedup guard.
package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/quotelane/insurance-quote-portal/internal/api"
	"github.com/quotelane/insurance-quote-portal/internal/details"
	"github.com/quotelane/insurance-quote-portal/internal/httpx"
	"github.com/quotelane/insurance-quote-portal/internal/premium"
	"github.com/quotelane/insurance-quote-portal/internal/quote"
	"github.com/quotelane/insurance-quote-portal/internal/snsx"
	"github.com/quotelane/insurance-quote-portal/internal/validate"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

// Store is the storage surface intake needs for its duplicate pre-check.
type Store interface {
	GetQuote(ctx context.Context, key string) (*quote.Record, error)
}

// App holds the intake handler's dependencies.
type App struct {
	Store     Store
	Publisher snsx.Publisher
	// TopicConfigured is false when no topic ARN was supplied; submissions
	// are rejected rather than silently dropped.
	TopicConfigured bool
}

// Handle processes a quote submission request.
func (a *App) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	var sub quote.Submission
	if err := json.Unmarshal([]byte(req.Body), &sub); err != nil {
		return httpx.Error(http.StatusBadRequest, "invalid json")
	}

	if err := validate.InsuranceTypePresent(sub.InsuranceType); err != nil {
		return httpx.Error(http.StatusBadRequest, err.Error())
	}
	insType, err := quote.ParseType(sub.InsuranceType)
	if err != nil {
		return httpx.Error(http.StatusBadRequest, err.Error())
	}

	if !a.TopicConfigured {
		log.Error().Msg("intake: topic not configured")
		return httpx.Error(http.StatusInternalServerError, "submission channel not configured")
	}

	// Advisory duplicate pre-check. A lookup failure is logged and treated
	// as not-found; the worker's conditional insert still dedups.
	key := quote.IdentityKey(sub.Email, insType)
	existing, err := a.Store.GetQuote(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("intake: duplicate check failed")
	}
	if existing != nil {
		log.Info().Str("key", key).Msg("intake: duplicate submission")
		return httpx.JSON(http.StatusOK, api.SubmitResponse{
			Message: fmt.Sprintf("We have already received your %s insurance request and it's being processed. "+
				"An agent will contact you within 24 hours to provide a customized quote.", insType),
			InsuranceType: string(insType),
			Submitted:     false,
			Duplicate:     true,
		})
	}

	// Estimate for immediate feedback; the worker recomputes authoritatively.
	flat, err := details.Decode(sub.Details)
	if err != nil {
		return httpx.Error(http.StatusBadRequest, err.Error())
	}
	estimate, err := premium.Calculate(insType, flat)
	if err != nil {
		return httpx.Error(http.StatusBadRequest, err.Error())
	}

	if err := a.Publisher.PublishSubmission(ctx, []byte(req.Body), insType); err != nil {
		log.Error().Err(err).Str("key", key).Msg("intake: publish failed")
		return httpx.Error(http.StatusInternalServerError, "internal server error")
	}
	log.Info().Str("key", key).Int("estimate", estimate).Msg("intake: submission accepted")

	return httpx.JSON(http.StatusOK, api.SubmitResponse{
		Message:       fmt.Sprintf("%s quote request submitted successfully!", capitalize(string(insType))),
		PremiumAmount: estimate,
		InsuranceType: string(insType),
		CustomerName:  sub.Name,
		Submitted:     true,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
