package api

// Field metadata consumed by declarative callers (no-code designers) that
// invoke the assessment as an automation step.
type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Direction   string `json:"direction"`
}

const (
	directionInput  = "input"
	directionOutput = "output"
)

func AssessmentFields() []Field {
	return []Field{
		{
			Name:        "patientId",
			Label:       "Patient ID",
			Description: "Identifier of the patient to assess.",
			Required:    true,
			Direction:   directionInput,
		},
		{
			Name:        "lookbackDays",
			Label:       "Lookback Days",
			Description: "Reserved for a future recency window on lab results. Currently ignored by classification.",
			Required:    false,
			Direction:   directionInput,
		},
		{
			Name:        "hba1cValue",
			Label:       "HbA1c Value",
			Description: "Most recent finalized HbA1c result, absent when the patient has no eligible observation.",
			Direction:   directionOutput,
		},
		{
			Name:        "riskCategory",
			Label:       "Risk Category",
			Description: "WellControlled (< 7.0), NeedsAttention (7.0 to < 9.0), HighRisk (>= 9.0) or NoData.",
			Direction:   directionOutput,
		},
		{
			Name:        "isInProgram",
			Label:       "In Diabetes Program",
			Description: "Whether the patient has an active enrollment in a diabetes-care program.",
			Direction:   directionOutput,
		},
		{
			Name:        "errorMessage",
			Label:       "Error Message",
			Description: "Set when this patient's assessment failed; other fields may be unset in that case.",
			Direction:   directionOutput,
		},
	}
}
