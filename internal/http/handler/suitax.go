package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"suitax/internal/core"
	"suitax/internal/http/handler/middleware"
	"suitax/internal/http/payload"
	"suitax/internal/sui"

	"go.uber.org/zap"
)

var (
	Authenticate      = "POST /api/v1/authenticate"
	Analyze           = "POST /api/v1/analyze"
	BatchAnalysis     = "POST /api/v1/batch-analysis"
	TaxRates          = "GET /api/v1/tax-rates/{country}"
	SupportedFeatures = "GET /api/v1/supported-features"
	Health            = "GET /health"
)

type TaxHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	analyzer         AnalyzerService
}

func NewTaxHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, analyzer AnalyzerService) *TaxHandler {
	return &TaxHandler{
		logs:             logger,
		requestValidator: requestValidator,
		analyzer:         analyzer,
	}
}

func (h *TaxHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.analyzer.Authenticate(r.Context(), authPayload.ToCoreAuthMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TaxHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorize(w, r, Analyze, requestId) {
		return
	}

	var analyzePayload payload.AnalyzeRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &analyzePayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not run analysis",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Analyze,
			"request_id", requestId)
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), analyzePayload.ToCoreRequest())
	if err != nil {
		resp := Response{
			Message: "Analysis failed",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, core.ErrNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("analysis failed",
			"error", err,
			"handler", Analyze,
			"request_id", requestId)
		return
	}

	h.logs.Infow("analysis completed",
		"analysis_type", result.AnalysisType,
		"network", result.Network,
		"analyzed", result.Analyzed,
		"handler", Analyze,
		"request_id", requestId)

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *TaxHandler) HandleBatchAnalysis(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorize(w, r, BatchAnalysis, requestId) {
		return
	}

	var batchPayload payload.BatchAnalysisRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &batchPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not run batch analysis",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", BatchAnalysis,
			"request_id", requestId)
		return
	}

	result, err := h.analyzer.AnalyzeBatch(r.Context(), batchPayload.ToCoreRequest())
	if err != nil {
		resp := Response{
			Message: "Batch analysis failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidInput) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("batch analysis failed",
			"error", err,
			"handler", BatchAnalysis,
			"request_id", requestId)
		return
	}

	h.logs.Infow("batch analysis completed",
		"total_addresses", result.TotalAddresses,
		"successful", result.Successful,
		"handler", BatchAnalysis,
		"request_id", requestId)

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *TaxHandler) HandleTaxRates(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	country := strings.TrimPrefix(r.URL.Path, "/api/v1/tax-rates/")
	if country == "" || strings.Contains(country, "/") {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "country parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing country parameter",
			"handler", TaxRates,
			"request_id", requestId)
		return
	}

	rates := h.analyzer.TaxRates(r.Context(), country)

	resp := map[string]any{
		"country":   strings.ToUpper(country),
		"tax_rates": rates,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TaxHandler) HandleSupportedFeatures(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	resp := map[string]any{
		"networks":   sui.ProbeOrder,
		"categories": []string{"Transfer", "DeFi_Swap", "NFT_Purchase", "Smart_Contract", "Staking", "Gaming", "Other"},
		"countries":  []string{"US", "UK", "DE", "JP", "SG"},
		"analysis_types": []string{
			core.AnalysisSingleTransaction,
			core.AnalysisRecent,
			core.AnalysisFullHistory,
		},
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TaxHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	resp := map[string]string{
		"status": "ok",
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TaxHandler) authorize(w http.ResponseWriter, r *http.Request, route, requestId string) bool {
	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", route, "request_id", requestId)
		return false
	}

	username, err := h.analyzer.ValidateToken(authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "invalid or expired token",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("token validation failed", "error", err, "handler", route, "request_id", requestId)
		return false
	}

	h.logs.Infow("request authorized", "username", username, "handler", route, "request_id", requestId)
	return true
}

func (h *TaxHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx == nil {
		return ""
	}
	return reqIdCtx.(string)
}
