// Package quotes implements the quote retrieval handler.
//
// Retrieval requires a verified email claim, scans the table for every
// record under that email's key prefix, and projects each to the fields the
// dashboard needs. Stored numbers are arbitrary-precision; integral values
// are returned as integers, fractional ones as floats.
package quotes

import (
	"context"
	"net/http"

	"github.com/quotelane/insurance-quote-portal/internal/api"
	"github.com/quotelane/insurance-quote-portal/internal/authz"
	"github.com/quotelane/insurance-quote-portal/internal/httpx"
	"github.com/quotelane/insurance-quote-portal/internal/quote"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Store is the storage surface retrieval needs.
type Store interface {
	ScanQuotesByPrefix(ctx context.Context, prefix string) ([]map[string]types.AttributeValue, error)
}

// App holds the retrieval handler's dependencies.
type App struct {
	Store         Store
	DevBypassAuth bool
}

// Handle returns all stored quotes for the authenticated user.
func (a *App) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	email, err := authz.Email(req, a.DevBypassAuth)
	if err != nil {
		return httpx.Error(http.StatusUnauthorized, "Unauthorized - no email in token")
	}

	items, err := a.Store.ScanQuotesByPrefix(ctx, quote.KeyPrefix(email))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("quotes: scan failed")
		return httpx.Error(http.StatusInternalServerError, "internal server error")
	}

	summaries := make([]api.QuoteSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, project(item))
	}
	log.Info().Str("email", email).Int("count", len(summaries)).Msg("quotes: listed")

	return httpx.JSON(http.StatusOK, api.QuotesResponse{
		Quotes:    summaries,
		UserEmail: email,
	})
}

// project extracts the dashboard fields from a raw item.
func project(item map[string]types.AttributeValue) api.QuoteSummary {
	return api.QuoteSummary{
		InsuranceType: stringAttr(item, "insuranceType"),
		PremiumAmount: numberAttr(item, "premiumAmount"),
		CreatedAt:     stringAttr(item, "createdAt"),
		Details:       detailsAttr(item),
	}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if s, ok := item[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

// numberAttr converts a stored arbitrary-precision number to a plain int64
// when integral, a float64 otherwise.
func numberAttr(item map[string]types.AttributeValue, name string) any {
	n, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return nil
	}
	if d.IsInteger() {
		return d.IntPart()
	}
	return d.InexactFloat64()
}

func detailsAttr(item map[string]types.AttributeValue) map[string]string {
	m, ok := item["details"].(*types.AttributeValueMemberM)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(m.Value))
	for k, v := range m.Value {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			out[k] = s.Value
		}
	}
	return out
}
