package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// LLMClient is the slice of the OpenAI client the service uses.
//
//counterfeiter:generate -o fake -fake-name LLMClient . LLMClient
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// RatesCache stores jurisdiction rate data. Failures are non-fatal: a read
// failure is a miss, a write failure is skipped.
//
//counterfeiter:generate -o fake -fake-name RatesCache . RatesCache
type RatesCache interface {
	GetTaxRates(ctx context.Context, country string) ([]byte, error)
	PutTaxRates(ctx context.Context, country string, data []byte) error
}
