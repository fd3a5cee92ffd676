package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"suitax/internal/core"
	"suitax/internal/http/handler"
	"suitax/internal/http/handler/fake"
	"suitax/internal/http/handler/middleware"
	"suitax/internal/tax"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TaxHandler", func() {
	var (
		taxHandler    *handler.TaxHandler
		fakeAnalyzer  *fake.AnalyzerService
		fakeValidator *fake.RequestValidator
		recorder      *httptest.ResponseRecorder
		fakeErr       error
	)

	newRequest := func(method, target string, body any) *http.Request {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		request := httptest.NewRequest(method, target, &buf)
		ctx := context.WithValue(request.Context(), middleware.RequestIDKey, "test-request-id")
		return request.WithContext(ctx)
	}

	decodeResponse := func() handler.Response {
		var resp handler.Response
		Expect(json.NewDecoder(recorder.Body).Decode(&resp)).To(Succeed())
		return resp
	}

	BeforeEach(func() {
		fakeAnalyzer = new(fake.AnalyzerService)
		fakeValidator = new(fake.RequestValidator)
		recorder = httptest.NewRecorder()
		fakeErr = errors.New("fake error")

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(r *http.Request, object any) error {
			return json.NewDecoder(r.Body).Decode(object)
		}
		fakeAnalyzer.ValidateTokenReturns("alice", nil)

		taxHandler = handler.NewTaxHandler(zap.NewNop().Sugar(), fakeValidator, fakeAnalyzer)
	})

	Describe("HandleAuthenticate", func() {
		var request *http.Request

		BeforeEach(func() {
			request = newRequest(http.MethodPost, "/api/v1/authenticate", map[string]string{
				"username": "alice",
				"password": "testpass",
			})
			fakeAnalyzer.AuthenticateReturns("signed.jwt.token", nil)
		})

		JustBeforeEach(func() {
			taxHandler.HandleAuthenticate(recorder, request)
		})

		It("should return the signed token", func() {
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Header().Get("Content-Type")).To(Equal("application/json"))

			var resp map[string]string
			Expect(json.NewDecoder(recorder.Body).Decode(&resp)).To(Succeed())
			Expect(resp["token"]).To(Equal("signed.jwt.token"))

			_, msg := fakeAnalyzer.AuthenticateArgsForCall(0)
			Expect(msg.Username).To(Equal("alice"))
			Expect(msg.Password).To(Equal("testpass"))
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeResponse().Error).To(ContainSubstring("invalid request payload"))
				Expect(fakeAnalyzer.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeAnalyzer.AuthenticateReturns("", core.ErrUserNotFound)
			})

			It("should return 401 with the sentinel message", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(decodeResponse().Error).To(Equal(core.ErrUserNotFound.Error()))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeAnalyzer.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeAnalyzer.AuthenticateReturns("", fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				Expect(decodeResponse().Error).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleAnalyze", func() {
		var request *http.Request

		BeforeEach(func() {
			request = newRequest(http.MethodPost, "/api/v1/analyze", map[string]any{
				"input":    "0x" + string(bytes.Repeat([]byte("a"), 64)),
				"country":  "US",
				"tax_year": 2025,
			})
			request.Header.Set("AUTH_TOKEN", "signed.jwt.token")

			fakeAnalyzer.AnalyzeReturns(core.AnalysisResult{
				Success:      true,
				AnalysisType: core.AnalysisRecent,
				Analyzed:     3,
			}, nil)
		})

		JustBeforeEach(func() {
			taxHandler.HandleAnalyze(recorder, request)
		})

		It("should run the analysis for an authorized caller", func() {
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(fakeAnalyzer.ValidateTokenArgsForCall(0)).To(Equal("signed.jwt.token"))

			var result core.AnalysisResult
			Expect(json.NewDecoder(recorder.Body).Decode(&result)).To(Succeed())
			Expect(result.Success).To(BeTrue())
			Expect(result.Analyzed).To(Equal(3))
		})

		When("the AUTH_TOKEN header is missing", func() {
			BeforeEach(func() {
				request.Header.Del("AUTH_TOKEN")
			})

			It("should return 401 before reading the payload", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(decodeResponse().Error).To(Equal("AUTH_TOKEN header is required"))
				Expect(fakeAnalyzer.AnalyzeCallCount()).To(Equal(0))
			})
		})

		When("the token does not verify", func() {
			BeforeEach(func() {
				fakeAnalyzer.ValidateTokenReturns("", fakeErr)
			})

			It("should return 401", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(decodeResponse().Error).To(Equal("invalid or expired token"))
			})
		})

		When("the input is rejected", func() {
			BeforeEach(func() {
				fakeAnalyzer.AnalyzeReturns(core.AnalysisResult{}, core.ErrInvalidInput)
			})

			It("should return 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeResponse().Error).To(Equal(core.ErrInvalidInput.Error()))
			})
		})

		When("the identity exists on no network", func() {
			BeforeEach(func() {
				fakeAnalyzer.AnalyzeReturns(core.AnalysisResult{}, core.ErrNotFound)
			})

			It("should return 404", func() {
				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the analysis fails unexpectedly", func() {
			BeforeEach(func() {
				fakeAnalyzer.AnalyzeReturns(core.AnalysisResult{}, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				Expect(decodeResponse().Error).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleBatchAnalysis", func() {
		var request *http.Request

		BeforeEach(func() {
			request = newRequest(http.MethodPost, "/api/v1/batch-analysis", map[string]any{
				"addresses": []string{"0x" + string(bytes.Repeat([]byte("a"), 64))},
				"country":   "US",
			})
			request.Header.Set("AUTH_TOKEN", "signed.jwt.token")

			fakeAnalyzer.AnalyzeBatchReturns(core.BatchResult{
				Success:        true,
				TotalAddresses: 1,
				Successful:     1,
			}, nil)
		})

		JustBeforeEach(func() {
			taxHandler.HandleBatchAnalysis(recorder, request)
		})

		It("should return the batch result", func() {
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var result core.BatchResult
			Expect(json.NewDecoder(recorder.Body).Decode(&result)).To(Succeed())
			Expect(result.Successful).To(Equal(1))
		})

		When("too many addresses are requested", func() {
			BeforeEach(func() {
				fakeAnalyzer.AnalyzeBatchReturns(core.BatchResult{}, core.ErrInvalidInput)
			})

			It("should return 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the caller is not authorized", func() {
			BeforeEach(func() {
				request.Header.Del("AUTH_TOKEN")
			})

			It("should return 401", func() {
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeAnalyzer.AnalyzeBatchCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleTaxRates", func() {
		BeforeEach(func() {
			fakeAnalyzer.TaxRatesReturns(tax.Rates{
				CapitalGainsLongTerm: 0.20,
				Currency:             "USD",
			})
		})

		It("should return the rates for the requested country", func() {
			request := newRequest(http.MethodGet, "/api/v1/tax-rates/us", nil)
			taxHandler.HandleTaxRates(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var resp struct {
				Country string    `json:"country"`
				Rates   tax.Rates `json:"tax_rates"`
			}
			Expect(json.NewDecoder(recorder.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Country).To(Equal("US"))
			Expect(resp.Rates.Currency).To(Equal("USD"))

			_, country := fakeAnalyzer.TaxRatesArgsForCall(0)
			Expect(country).To(Equal("us"))
		})

		It("should reject a missing country", func() {
			request := newRequest(http.MethodGet, "/api/v1/tax-rates/", nil)
			taxHandler.HandleTaxRates(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeResponse().Error).To(Equal("country parameter is required"))
			Expect(fakeAnalyzer.TaxRatesCallCount()).To(Equal(0))
		})
	})

	Describe("HandleSupportedFeatures", func() {
		It("should describe the service capabilities", func() {
			request := newRequest(http.MethodGet, "/api/v1/supported-features", nil)
			taxHandler.HandleSupportedFeatures(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.NewDecoder(recorder.Body).Decode(&resp)).To(Succeed())
			Expect(resp["networks"]).To(HaveLen(3))
			Expect(resp["categories"]).To(ContainElement("DeFi_Swap"))
			Expect(resp["countries"]).To(HaveLen(5))
			Expect(resp["analysis_types"]).To(ContainElement(core.AnalysisFullHistory))
		})
	})

	Describe("HandleHealth", func() {
		It("should report ok", func() {
			request := newRequest(http.MethodGet, "/health", nil)
			taxHandler.HandleHealth(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var resp map[string]string
			Expect(json.NewDecoder(recorder.Body).Decode(&resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("ok"))
		})
	})
})
