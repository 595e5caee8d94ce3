package test

import (
	"time"

	"github.com/careloop/assessment/observations"
	"github.com/careloop/assessment/pointer"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func QuantityObservation(subjectId, value string, effective time.Time) observations.Observation {
	return observations.Observation{
		Id:            pointer.FromAny(primitive.NewObjectID()),
		SubjectId:     subjectId,
		Status:        observations.StatusFinal,
		ValueType:     observations.ValueTypeQuantity,
		Value:         Decimal128(value),
		EffectiveTime: pointer.FromAny(effective),
	}
}

func Decimal128(value string) *primitive.Decimal128 {
	d, err := primitive.ParseDecimal128(value)
	if err != nil {
		panic(err)
	}
	return &d
}
