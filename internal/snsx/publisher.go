// Package snsx publishes accepted quote submissions to the async pipeline.
package snsx

import (
	"context"

	"github.com/quotelane/insurance-quote-portal/internal/quote"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Publisher forwards a submission payload to the asynchronous processing
// channel, tagged with its insurance type.
type Publisher interface {
	PublishSubmission(ctx context.Context, body []byte, t quote.Type) error
}

// SNSAPI is the subset of the SNS client used here.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// TopicPublisher publishes submissions to a single SNS topic. The
// insuranceType message attribute lets per-type queues filter their own
// submissions.
type TopicPublisher struct {
	SNS      SNSAPI
	TopicARN string
}

// PublishSubmission sends the original submission JSON unmodified.
func (p *TopicPublisher) PublishSubmission(ctx context.Context, body []byte, t quote.Type) error {
	_, err := p.SNS.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.TopicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"insuranceType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(t)),
			},
		},
	})
	return err
}
