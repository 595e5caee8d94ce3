package assessments

import (
	"context"

	"github.com/shopspring/decimal"
)

// CodeSetNotFoundMessage is reported for every patient in the batch when the
// HbA1c code definition cannot be resolved.
const CodeSetNotFoundMessage = "HbA1c CodeSet not found in the system"

type RiskCategory string

const (
	RiskWellControlled RiskCategory = "WellControlled"
	RiskNeedsAttention RiskCategory = "NeedsAttention"
	RiskHighRisk       RiskCategory = "HighRisk"
	RiskNoData         RiskCategory = "NoData"
)

//go:generate mockgen --build_flags=--mod=mod -source=./assessments.go -destination=./test/mock_service.go -package test MockService

// Service runs a bulk HbA1c risk assessment. One result is produced per
// distinct non-empty patient id, regardless of per-patient faults.
type Service interface {
	Assess(ctx context.Context, requests []Request) ([]Result, error)
}

type Request struct {
	PatientId string

	// LookbackDays is reserved for a future recency filter on the
	// observation query. Classification currently ignores it.
	LookbackDays *int
}

type Result struct {
	PatientId    string
	HbA1cValue   *decimal.Decimal
	RiskCategory RiskCategory
	InProgram    bool
	Error        *string
}
