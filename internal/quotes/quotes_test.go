package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeStore struct {
	items  []map[string]types.AttributeValue
	err    error
	prefix string
}

func (f *fakeStore) ScanQuotesByPrefix(ctx context.Context, prefix string) ([]map[string]types.AttributeValue, error) {
	f.prefix = prefix
	return f.items, f.err
}

func authedRequest(email string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			Authorizer: &events.APIGatewayV2HTTPRequestContextAuthorizerDescription{
				JWT: &events.APIGatewayV2HTTPRequestContextAuthorizerJWTDescription{
					Claims: map[string]string{"email": email},
				},
			},
		},
	}
}

func TestHandle_NoIdentityClaim(t *testing.T) {
	app := &App{Store: &fakeStore{}}
	resp, _ := app.Handle(context.Background(), events.APIGatewayV2HTTPRequest{})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected explicit unauthorized error body")
	}
}

func TestHandle_ScansByEmailPrefix(t *testing.T) {
	st := &fakeStore{}
	app := &App{Store: st}
	resp, _ := app.Handle(context.Background(), authedRequest("jane@example.com"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if st.prefix != "jane@example.com#" {
		t.Fatalf("scan prefix = %q", st.prefix)
	}
}

func TestHandle_ProjectsRecords(t *testing.T) {
	st := &fakeStore{items: []map[string]types.AttributeValue{
		{
			"compositeKey":  &types.AttributeValueMemberS{Value: "jane@example.com#auto"},
			"quoteId":       &types.AttributeValueMemberS{Value: "01ARZ3NDEKTSV4RRFFQ69G5FAV"},
			"insuranceType": &types.AttributeValueMemberS{Value: "auto"},
			"premiumAmount": &types.AttributeValueMemberN{Value: "825"},
			"createdAt":     &types.AttributeValueMemberS{Value: "2025-08-01T12:00:00Z"},
			"details": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"vehicleType": &types.AttributeValueMemberS{Value: "SUV"},
			}},
		},
	}}
	app := &App{Store: st}
	resp, _ := app.Handle(context.Background(), authedRequest("jane@example.com"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Quotes []struct {
			InsuranceType string            `json:"insuranceType"`
			PremiumAmount json.Number       `json:"premiumAmount"`
			CreatedAt     string            `json:"createdAt"`
			Details       map[string]string `json:"details"`
		} `json:"quotes"`
		UserEmail string `json:"userEmail"`
	}
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.UserEmail != "jane@example.com" {
		t.Fatalf("userEmail = %q", body.UserEmail)
	}
	if len(body.Quotes) != 1 {
		t.Fatalf("got %d quotes, want 1", len(body.Quotes))
	}
	q := body.Quotes[0]
	if q.InsuranceType != "auto" || q.CreatedAt != "2025-08-01T12:00:00Z" {
		t.Fatalf("projection wrong: %+v", q)
	}
	// Integral stored value must serialize as a plain integer.
	if q.PremiumAmount.String() != "825" {
		t.Fatalf("premiumAmount = %s, want 825", q.PremiumAmount)
	}
	if q.Details["vehicleType"] != "SUV" {
		t.Fatalf("details = %v", q.Details)
	}
}

func TestHandle_FractionalPremiumBecomesFloat(t *testing.T) {
	st := &fakeStore{items: []map[string]types.AttributeValue{
		{
			"compositeKey":  &types.AttributeValueMemberS{Value: "jane@example.com#home"},
			"insuranceType": &types.AttributeValueMemberS{Value: "home"},
			"premiumAmount": &types.AttributeValueMemberN{Value: "499.5"},
		},
	}}
	app := &App{Store: st}
	resp, _ := app.Handle(context.Background(), authedRequest("jane@example.com"))

	var body struct {
		Quotes []struct {
			PremiumAmount float64 `json:"premiumAmount"`
		} `json:"quotes"`
	}
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Quotes[0].PremiumAmount != 499.5 {
		t.Fatalf("premiumAmount = %v, want 499.5", body.Quotes[0].PremiumAmount)
	}
}

func TestHandle_EmptyResultIsStillOK(t *testing.T) {
	app := &App{Store: &fakeStore{}}
	resp, _ := app.Handle(context.Background(), authedRequest("nobody@example.com"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Quotes []any `json:"quotes"`
	}
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Quotes == nil {
		t.Fatal("quotes should be an empty list, not null")
	}
}

func TestHandle_ScanFailure(t *testing.T) {
	app := &App{Store: &fakeStore{err: errors.New("table unreachable")}}
	resp, _ := app.Handle(context.Background(), authedRequest("jane@example.com"))
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}

func TestHandle_DevBypassHeader(t *testing.T) {
	st := &fakeStore{}
	app := &App{Store: st, DevBypassAuth: true}
	req := events.APIGatewayV2HTTPRequest{Headers: map[string]string{"x-user-email": "dev@example.com"}}
	resp, _ := app.Handle(context.Background(), req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if st.prefix != "dev@example.com#" {
		t.Fatalf("scan prefix = %q", st.prefix)
	}
}
