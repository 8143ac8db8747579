// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// Env holds the configuration values for the application.
type Env struct {
	Region            string
	Table             string
	TopicARN          string // optional at load; intake rejects requests without it
	AccessCodesSecret string // optional at load; required by the access handler
	DevBypassAuth     bool
}

// MustLoad reads the environment variables and returns an Env struct.
func MustLoad() Env {
	devBypass := get("DEV_BYPASS_AUTH", "") == "true"
	e := Env{
		Region:            get("AWS_REGION", "us-east-1"),
		Table:             must("DDB_TABLE"),
		TopicARN:          get("SNS_TOPIC_ARN", ""),
		AccessCodesSecret: get("ACCESS_CODES_SECRET_NAME", ""),
		DevBypassAuth:     devBypass,
	}
	return e
}

// get returns the value of the environment variable k or def if not set.
func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// must returns the value of the environment variable k or panics if not set.
func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic(fmt.Errorf("missing env %s", k))
	}
	return v
}
