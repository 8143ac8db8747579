// Package ddb provides a simple repository for interacting with DynamoDB for quote records.
package ddb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quotelane/insurance-quote-portal/internal/quote"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrQuoteExists is returned by PutQuoteOnce when a record with the same
// composite key already exists. Callers treat it as a successful no-op.
var ErrQuoteExists = errors.New("quote already exists")

// Client is the subset of the DynamoDB client used by the repository,
// satisfied by *dynamodb.Client and by test doubles.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Repo wraps a DynamoDB client and table name for quote operations.
type Repo struct {
	DB    Client
	Table string
}

// GetQuote looks up a record by its composite key. A missing record returns
// (nil, nil) rather than an error.
func (r *Repo) GetQuote(ctx context.Context, key string) (*quote.Record, error) {
	out, err := r.DB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.Table,
		Key: map[string]types.AttributeValue{
			"compositeKey": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if out.Item == nil {
		return nil, nil
	}
	var rec quote.Record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return &rec, nil
}

// PutQuoteOnce inserts a record, succeeding only if no record with the same
// composite key exists. A key collision is reported as ErrQuoteExists.
func (r *Repo) PutQuoteOnce(ctx context.Context, rec quote.Record) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return err
	}
	_, err = r.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.Table,
		Item:                item,
		ConditionExpression: awsStr("attribute_not_exists(compositeKey)"),
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return ErrQuoteExists
	}
	return err
}

// ScanQuotesByPrefix returns the raw items of every record whose composite
// key begins with prefix, following pagination until the scan is exhausted.
// Items stay in attribute-value form so callers control how stored numbers
// are converted.
func (r *Repo) ScanQuotesByPrefix(ctx context.Context, prefix string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.DB.Scan(ctx, &dynamodb.ScanInput{
			TableName:        &r.Table,
			FilterExpression: awsStr("begins_with(compositeKey, :prefix)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: prefix},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", prefix, err)
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

// awsStr is a helper to get a pointer to a string literal.
func awsStr(s string) *string { return &s }

// NowISO returns the current time in ISO8601 format.
func NowISO() string { return time.Now().UTC().Format(time.RFC3339) }
