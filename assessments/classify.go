package assessments

import (
	"github.com/careloop/assessment/observations"
	"github.com/careloop/assessment/pointer"
	"github.com/shopspring/decimal"
)

// Band boundaries are exact decimal thresholds, inclusive on the lower bound
// of each band.
var (
	needsAttentionThreshold = decimal.RequireFromString("7.0")
	highRiskThreshold       = decimal.RequireFromString("9.0")
)

// Classify is a pure function from a patient's optional latest observation
// and enrollment flag to a result. A malformed numeric value yields an
// error-carrying result for that patient instead of a fault.
func Classify(patientId string, observation *observations.Observation, inProgram bool) Result {
	result := Result{
		PatientId: patientId,
		InProgram: inProgram,
	}

	if observation == nil {
		result.RiskCategory = RiskNoData
		return result
	}

	value, err := observation.NumericValue()
	if err != nil {
		result.Error = pointer.FromAny(patientError(patientId, err))
		return result
	}
	if value == nil {
		result.RiskCategory = RiskNoData
		return result
	}

	result.HbA1cValue = value
	result.RiskCategory = riskCategoryFor(*value)
	return result
}

func riskCategoryFor(value decimal.Decimal) RiskCategory {
	switch {
	case value.LessThan(needsAttentionThreshold):
		return RiskWellControlled
	case value.LessThan(highRiskThreshold):
		return RiskNeedsAttention
	default:
		return RiskHighRisk
	}
}
