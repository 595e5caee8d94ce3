package enrollments

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusActive = "Active"

	// ProgramNamePattern matches diabetes-care programs by name using the
	// store's default (case-sensitive) text comparison.
	ProgramNamePattern = "Diabetes"
)

//go:generate mockgen --build_flags=--mod=mod -source=./enrollments.go -destination=./test/mock_repository.go -package test MockRepository

// Repository reports active diabetes-program enrollment as a mapping that is
// total over the requested patient set: every requested patient has an entry,
// defaulted to false.
type Repository interface {
	ActiveDiabetesEnrollment(ctx context.Context, patientIds []string) (map[string]bool, error)
}

type Enrollment struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	SubjectId   string              `bson:"subjectId"`
	ProgramName string              `bson:"programName"`
	Status      string              `bson:"status"`
}

// ActiveDiabetes reports whether the enrollment links its patient to an
// active diabetes-care program. Program-name matching is case-sensitive,
// mirroring the store's default text comparison.
func (e *Enrollment) ActiveDiabetes() bool {
	return e.Status == StatusActive && strings.Contains(e.ProgramName, ProgramNamePattern)
}

// FlagActive builds the total enrollment mapping: every requested patient
// starts at false and matches upgrade the flag to true. Matches outside the
// requested set are ignored, and repeated matches are idempotent.
func FlagActive(patientIds []string, matches []string) map[string]bool {
	flags := make(map[string]bool, len(patientIds))
	for _, patientId := range patientIds {
		flags[patientId] = false
	}
	for _, subjectId := range matches {
		if _, ok := flags[subjectId]; ok {
			flags[subjectId] = true
		}
	}
	return flags
}
