// Package processor implements the asynchronous quote commit handler.
//
// A worker consumes batches of forwarded submissions from its queue,
// recomputes the authoritative premium and performs a conditional insert
// keyed by the identity key. A key collision means a concurrent or earlier
// commit already won; it is logged and treated as success. One failing item
// never aborts the rest of the batch, and the handler never surfaces a
// per-item failure to the platform.
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quotelane/insurance-quote-portal/internal/ddb"
	"github.com/quotelane/insurance-quote-portal/internal/details"
	"github.com/quotelane/insurance-quote-portal/internal/envelope"
	"github.com/quotelane/insurance-quote-portal/internal/premium"
	"github.com/quotelane/insurance-quote-portal/internal/quote"

	"github.com/aws/aws-lambda-go/events"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

// Store is the storage surface a worker needs to commit quotes.
type Store interface {
	PutQuoteOnce(ctx context.Context, rec quote.Record) error
}

// Worker commits forwarded submissions for one insurance type, or for any
// type when DefaultType is empty (the generic variant).
type Worker struct {
	Store Store
	// DefaultType fills in the insurance type for submissions that omit it.
	DefaultType quote.Type
}

// Summary reports how a batch was handled. It is informational; the handler
// reports success to the platform regardless of individual item outcomes.
type Summary struct {
	Processed  int `json:"processed"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`
}

// Handle processes a batch of SQS records. It always returns a nil error:
// per-item failures are observability signals, not retried by re-raising.
func (w *Worker) Handle(ctx context.Context, ev events.SQSEvent) (Summary, error) {
	var sum Summary
	for _, rec := range ev.Records {
		switch err := w.processRecord(ctx, rec); {
		case err == nil:
			sum.Processed++
		case errors.Is(err, ddb.ErrQuoteExists):
			sum.Duplicates++
		default:
			log.Error().Err(err).Str("messageId", rec.MessageId).Msg("worker: process error")
			sum.Failed++
		}
	}
	return sum, nil
}

// processRecord commits a single forwarded submission.
func (w *Worker) processRecord(ctx context.Context, rec events.SQSMessage) error {
	payload := envelope.Unwrap(rec.Body)

	var sub quote.Submission
	if err := json.Unmarshal(payload, &sub); err != nil {
		return fmt.Errorf("parse submission: %w", err)
	}

	insType, err := w.resolveType(sub.InsuranceType)
	if err != nil {
		return err
	}

	flat, err := details.Decode(sub.Details)
	if err != nil {
		return err
	}
	amount, err := premium.Calculate(insType, flat)
	if err != nil {
		return err
	}

	record := quote.Record{
		CompositeKey:  quote.IdentityKey(sub.Email, insType),
		QuoteID:       ulid.Make().String(),
		InsuranceType: insType,
		Name:          sub.Name,
		Email:         sub.Email,
		Details:       flat,
		PremiumAmount: amount,
		CreatedAt:     ddb.NowISO(),
	}

	err = w.Store.PutQuoteOnce(ctx, record)
	if errors.Is(err, ddb.ErrQuoteExists) {
		log.Info().Str("key", record.CompositeKey).Msg("worker: duplicate quote ignored")
		return err
	}
	if err != nil {
		return fmt.Errorf("store %s: %w", record.CompositeKey, err)
	}

	log.Info().
		Str("key", record.CompositeKey).
		Str("quoteId", record.QuoteID).
		Int("premium", amount).
		Msg("worker: quote stored")
	return nil
}

// resolveType prefers the submission's type and falls back to the worker's
// default. The generic worker has no default, so the type is required there.
func (w *Worker) resolveType(raw string) (quote.Type, error) {
	if raw == "" {
		if w.DefaultType == "" {
			return "", errors.New("missing insurance type")
		}
		return w.DefaultType, nil
	}
	return quote.ParseType(raw)
}
