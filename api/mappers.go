package api

import (
	"github.com/careloop/assessment/assessments"
	"github.com/shopspring/decimal"
)

type AssessmentRequestDto struct {
	PatientId    string `json:"patientId"`
	LookbackDays *int   `json:"lookbackDays,omitempty"`
}

type AssessmentBatchDto struct {
	Requests []AssessmentRequestDto `json:"requests"`
}

type AssessmentResultDto struct {
	PatientId    string           `json:"patientId"`
	HbA1cValue   *decimal.Decimal `json:"hba1cValue,omitempty"`
	RiskCategory string           `json:"riskCategory,omitempty"`
	InProgram    bool             `json:"isInProgram"`
	Error        *string          `json:"errorMessage,omitempty"`
}

type AssessmentResponseDto struct {
	BatchId string                `json:"batchId"`
	Results []AssessmentResultDto `json:"results"`
}

func NewAssessmentRequests(batch AssessmentBatchDto) []assessments.Request {
	requests := make([]assessments.Request, 0, len(batch.Requests))
	for _, dto := range batch.Requests {
		requests = append(requests, assessments.Request{
			PatientId:    dto.PatientId,
			LookbackDays: dto.LookbackDays,
		})
	}
	return requests
}

func NewAssessmentResponseDto(batchId string, results []assessments.Result) AssessmentResponseDto {
	dtos := make([]AssessmentResultDto, 0, len(results))
	for _, result := range results {
		dtos = append(dtos, AssessmentResultDto{
			PatientId:    result.PatientId,
			HbA1cValue:   result.HbA1cValue,
			RiskCategory: string(result.RiskCategory),
			InProgram:    result.InProgram,
			Error:        result.Error,
		})
	}
	return AssessmentResponseDto{
		BatchId: batchId,
		Results: dtos,
	}
}
