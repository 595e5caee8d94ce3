package assessments

import (
	"context"
	"errors"
	"fmt"

	"github.com/careloop/assessment/codes"
	"github.com/careloop/assessment/enrollments"
	"github.com/careloop/assessment/observations"
	"github.com/careloop/assessment/pointer"
	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type service struct {
	codes        codes.Resolver
	observations observations.Repository
	enrollments  enrollments.Repository
	logger       *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(codes codes.Resolver, observations observations.Repository, enrollments enrollments.Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		codes:        codes,
		observations: observations,
		enrollments:  enrollments,
		logger:       logger,
	}, nil
}

func (s *service) Assess(ctx context.Context, requests []Request) ([]Result, error) {
	if len(requests) == 0 {
		return []Result{}, nil
	}

	patientIds := mapset.NewSet[string]()
	requestsByPatient := make(map[string]Request, len(requests))
	for _, request := range requests {
		if request.PatientId == "" {
			continue
		}
		if patientIds.Add(request.PatientId) {
			// Retained per patient so a future lookback filter can use
			// per-request context during the observation fetch.
			requestsByPatient[request.PatientId] = request
		}
	}
	if patientIds.Cardinality() == 0 {
		return []Result{}, nil
	}
	ids := patientIds.ToSlice()

	codeId, err := s.codes.Resolve(ctx, codes.HbA1cCodeName)
	if errors.Is(err, codes.ErrNotFound) {
		s.logger.Errorw("HbA1c code definition is missing", "patients", len(ids))
		results := make([]Result, 0, len(ids))
		for _, patientId := range ids {
			results = append(results, Result{
				PatientId: patientId,
				Error:     pointer.FromAny(CodeSetNotFoundMessage),
			})
		}
		return results, nil
	} else if err != nil {
		return nil, fmt.Errorf("error resolving HbA1c code: %w", err)
	}

	// The two fetches are independent reads. Both must complete before
	// classification starts; either failure fails the call.
	var latest map[string]observations.Observation
	var flags map[string]bool
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		latest, err = s.observations.LatestEligible(egCtx, ids, codeId)
		return err
	})
	eg.Go(func() error {
		var err error
		flags, err = s.enrollments.ActiveDiabetesEnrollment(egCtx, ids)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(ids))
	for _, patientId := range ids {
		results = append(results, s.assessPatient(patientId, latest, flags))
	}
	return results, nil
}

// assessPatient isolates faults to a single patient: a panic while
// classifying one patient is converted into an error-carrying result and the
// rest of the batch proceeds.
func (s *service) assessPatient(patientId string, latest map[string]observations.Observation, flags map[string]bool) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("patient assessment failed", "patientId", patientId, "error", r)
			result = Result{
				PatientId: patientId,
				Error:     pointer.FromAny(patientError(patientId, fmt.Errorf("%v", r))),
			}
		}
	}()

	var observation *observations.Observation
	if o, ok := latest[patientId]; ok {
		observation = &o
	}

	return Classify(patientId, observation, flags[patientId])
}

func patientError(patientId string, err error) string {
	return fmt.Sprintf("error assessing patient %s: %v", patientId, err)
}
