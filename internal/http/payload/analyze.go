package payload

import (
	"time"

	"suitax/internal/core"

	"github.com/jellydator/validation"
)

type AnalyzeRequest struct {
	Input       string `json:"input"`
	Country     string `json:"country"`
	Year        int    `json:"tax_year"`
	FullHistory bool   `json:"full_history"`
}

func (a AnalyzeRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Input, validation.Required, validation.Length(40, 70)),
		validation.Field(&a.Country, validation.Required, validation.Length(2, 2)),
		validation.Field(&a.Year, validation.Min(2015), validation.Max(2100)),
	)
}

func (a AnalyzeRequest) ToCoreRequest() core.AnalysisRequest {
	year := a.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	return core.AnalysisRequest{
		Input:       a.Input,
		Country:     a.Country,
		Year:        year,
		FullHistory: a.FullHistory,
	}
}
