package observations

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusFinal       = "final"
	ValueTypeQuantity = "quantity"
)

//go:generate mockgen --build_flags=--mod=mod -source=./observations.go -destination=./test/mock_repository.go -package test MockRepository

// Repository returns the single most recent eligible observation per patient.
// Eligible means: matching code, final status, quantity value type, non-null
// numeric value.
type Repository interface {
	LatestEligible(ctx context.Context, patientIds []string, codeId string) (map[string]Observation, error)
}

type Observation struct {
	Id            *primitive.ObjectID   `bson:"_id,omitempty"`
	SubjectId     string                `bson:"subjectId"`
	CodeId        *primitive.ObjectID   `bson:"codeId,omitempty"`
	Status        string                `bson:"status"`
	ValueType     string                `bson:"valueType"`
	Value         *primitive.Decimal128 `bson:"value,omitempty"`
	EffectiveTime *time.Time            `bson:"effectiveTime,omitempty"`
}

// NumericValue converts the stored decimal to an exact decimal.Decimal.
// A nil value yields a nil decimal, not an error.
func (o *Observation) NumericValue() (*decimal.Decimal, error) {
	if o.Value == nil {
		return nil, nil
	}

	value, err := decimal.NewFromString(o.Value.String())
	if err != nil {
		return nil, fmt.Errorf("malformed numeric value %q: %w", o.Value.String(), err)
	}
	return &value, nil
}

// Eligible reports whether an observation can participate in an assessment:
// final status, quantity value type and a non-null numeric value.
func (o *Observation) Eligible() bool {
	return o.Status == StatusFinal && o.ValueType == ValueTypeQuantity && o.Value != nil
}

// CollapseLatest reduces a list of observations sorted by effective time
// descending to a mapping with at most one eligible observation per patient.
// The first observation encountered for a patient wins; for identical
// timestamps the tie-break is the input order, which callers needing
// reproducibility should fix with a secondary sort key.
func CollapseLatest(sorted []Observation) map[string]Observation {
	latest := make(map[string]Observation)
	for _, observation := range sorted {
		if !observation.Eligible() {
			continue
		}
		if _, ok := latest[observation.SubjectId]; !ok {
			latest[observation.SubjectId] = observation
		}
	}
	return latest
}
