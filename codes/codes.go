package codes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("code definition not found")

// HbA1cCodeName is the display name of the glycated-hemoglobin code definition.
const HbA1cCodeName = "HbA1c"

//go:generate mockgen --build_flags=--mod=mod -source=./codes.go -destination=./test/mock_resolver.go -package test MockResolver

// Resolver maps the display name of a lab-test code definition to the
// identifier observations are stored under. Returns ErrNotFound when no
// definition matches the name exactly.
type Resolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}
