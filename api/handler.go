package api

import (
	"fmt"
	"net/http"

	"github.com/careloop/assessment/assessments"
	"github.com/careloop/assessment/errors"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Handler struct {
	assessments assessments.Service
	logger      *zap.SugaredLogger
}

type Params struct {
	fx.In

	Assessments assessments.Service
	Logger      *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		assessments: p.Assessments,
		logger:      p.Logger,
	}
}

// AssessBatch
// (POST /v1/assessments)
func (h *Handler) AssessBatch(ctx echo.Context) error {
	batch := AssessmentBatchDto{}
	if err := ctx.Bind(&batch); err != nil {
		return errors.BadRequest
	}

	// patientId is mandatory at the boundary: reject the batch rather than
	// silently skipping the malformed request.
	for i, request := range batch.Requests {
		if request.PatientId == "" {
			return errors.HttpError{
				Code: http.StatusBadRequest,
				Err:  fmt.Errorf("requests[%d]: patientId is required", i),
			}
		}
	}

	batchId := uuid.NewString()
	results, err := h.assessments.Assess(ctx.Request().Context(), NewAssessmentRequests(batch))
	if err != nil {
		h.logger.Errorw("assessment batch failed", "batchId", batchId, "error", err)
		return errors.InternalServerError
	}

	h.logger.Infow("assessment batch completed", "batchId", batchId, "patients", len(results))
	return ctx.JSON(http.StatusOK, NewAssessmentResponseDto(batchId, results))
}

// ListAssessmentFields
// (GET /v1/assessments/fields)
func (h *Handler) ListAssessmentFields(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, AssessmentFields())
}
