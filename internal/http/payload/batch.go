package payload

import (
	"fmt"
	"regexp"
	"time"

	"suitax/internal/core"

	"github.com/jellydator/validation"
)

type BatchAnalysisRequest struct {
	Addresses []string `json:"addresses"`
	Country   string   `json:"country"`
	Year      int      `json:"tax_year"`
}

func (b BatchAnalysisRequest) Validate() error {
	regex, err := regexp.Compile(`^(0x)?[a-fA-F0-9]{64}$`)
	if err != nil {
		return fmt.Errorf("compile regex: %w", err)
	}

	return validation.ValidateStruct(&b,
		validation.Field(&b.Addresses, validation.Required, validation.Length(1, 10)),
		validation.Field(&b.Addresses, validation.Each(validation.Match(regex))),
		validation.Field(&b.Country, validation.Required, validation.Length(2, 2)),
		validation.Field(&b.Year, validation.Min(2015), validation.Max(2100)),
	)
}

func (b BatchAnalysisRequest) ToCoreRequest() core.BatchRequest {
	year := b.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	return core.BatchRequest{
		Addresses: b.Addresses,
		Country:   b.Country,
		Year:      year,
	}
}
