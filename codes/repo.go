package codes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	codesCollectionName = "codeDefinitions"
)

type Definition struct {
	Id     *primitive.ObjectID `bson:"_id,omitempty"`
	Name   string              `bson:"name"`
	System *string             `bson:"system,omitempty"`
	Code   *string             `bson:"code,omitempty"`
}

func NewRepository(db *mongo.Database) (Resolver, error) {
	return &repository{
		collection: db.Collection(codesCollectionName),
	}, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Resolve(ctx context.Context, name string) (string, error) {
	selector := bson.M{
		"name": name,
	}

	definition := &Definition{}
	err := r.collection.FindOne(ctx, selector).Decode(definition)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	} else if err != nil {
		return "", fmt.Errorf("error resolving code definition %q: %w", name, err)
	}

	return definition.Id.Hex(), nil
}
