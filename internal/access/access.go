// Package access implements the access-code validation handler.
package access

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/quotelane/insurance-quote-portal/internal/api"
	"github.com/quotelane/insurance-quote-portal/internal/httpx"
	"github.com/quotelane/insurance-quote-portal/internal/secretsx"
	"github.com/quotelane/insurance-quote-portal/internal/validate"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

// Grant duration for a matched access code.
const accessTTL = 5 * time.Minute

// App holds the access handler's dependencies.
type App struct {
	Codes secretsx.CodeSource
	// Now is replaceable in tests; nil means time.Now.
	Now func() time.Time
}

// Handle validates a submitted access code against the rotating code list.
func (a *App) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if req.Body == "" {
		return httpx.Error(http.StatusBadRequest, "Missing request body")
	}

	var body api.AccessRequest
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return httpx.Error(http.StatusBadRequest, "Invalid JSON")
	}

	code, err := validate.AccessCode(body.AccessCode)
	if err != nil {
		return httpx.Error(http.StatusBadRequest, err.Error())
	}

	valid, err := a.Codes.ValidCodes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("access: code list unavailable")
		return httpx.Error(http.StatusInternalServerError, "Access codes not configured")
	}

	if !slices.Contains(valid, code) {
		log.Info().Msg("access: invalid code")
		return httpx.JSON(http.StatusUnauthorized, api.AccessResponse{
			Valid:   false,
			Message: "Invalid access code",
		})
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	expires := now().UTC().Add(accessTTL)
	return httpx.JSON(http.StatusOK, api.AccessResponse{
		Valid:   true,
		Expires: expires.Format(time.RFC3339),
		Message: "Access granted",
	})
}
