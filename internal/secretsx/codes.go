// Package secretsx retrieves the rotating access-code list from Secrets Manager.
package secretsx

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsAPI is the subset of the Secrets Manager client used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// CodeSource yields the currently valid access codes.
type CodeSource interface {
	ValidCodes(ctx context.Context) ([]string, error)
}

// SecretCodes reads a comma-separated code list from a single secret.
type SecretCodes struct {
	SM       SecretsAPI
	SecretID string
}

// ValidCodes fetches and splits the secret, trimming each entry.
func (s *SecretCodes) ValidCodes(ctx context.Context) ([]string, error) {
	out, err := s.SM.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.SecretID),
	})
	if err != nil {
		return nil, fmt.Errorf("get secret %s: %w", s.SecretID, err)
	}
	raw := aws.ToString(out.SecretString)
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			codes = append(codes, c)
		}
	}
	return codes, nil
}
