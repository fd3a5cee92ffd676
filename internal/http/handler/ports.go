package handler

import (
	"context"
	"net/http"

	"suitax/internal/core"
	"suitax/internal/tax"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AnalyzerService . AnalyzerService
type AnalyzerService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ValidateToken(token string) (string, error)
	Analyze(ctx context.Context, req core.AnalysisRequest) (core.AnalysisResult, error)
	AnalyzeBatch(ctx context.Context, req core.BatchRequest) (core.BatchResult, error)
	TaxRates(ctx context.Context, country string) tax.Rates
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
