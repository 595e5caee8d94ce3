package enrollments

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	enrollmentsCollectionName = "programEnrollments"

	chunkSize = 250
)

func NewRepository(db *mongo.Database) (Repository, error) {
	return &repository{
		collection: db.Collection(enrollmentsCollectionName),
	}, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) ActiveDiabetesEnrollment(ctx context.Context, patientIds []string) (map[string]bool, error) {
	if len(patientIds) == 0 {
		return map[string]bool{}, nil
	}

	var matches []string
	for _, chunk := range chunkIds(patientIds, chunkSize) {
		selector := bson.M{
			"subjectId": bson.M{
				"$in": chunk,
			},
			"status": StatusActive,
			"programName": primitive.Regex{
				Pattern: ProgramNamePattern,
			},
		}

		cursor, err := r.collection.Find(ctx, selector)
		if err != nil {
			return nil, fmt.Errorf("error listing enrollments: %w", err)
		}

		var enrollments []Enrollment
		if err = cursor.All(ctx, &enrollments); err != nil {
			return nil, fmt.Errorf("error decoding enrollments: %w", err)
		}

		// The selector already filters on status and program name; re-check
		// here so the matching rule holds even if the query changes.
		for _, enrollment := range enrollments {
			if !enrollment.ActiveDiabetes() {
				continue
			}
			matches = append(matches, enrollment.SubjectId)
		}
	}

	return FlagActive(patientIds, matches), nil
}

func chunkIds(ids []string, size int) [][]string {
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for size < len(ids) {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}
