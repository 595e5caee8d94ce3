package observations

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	observationsCollectionName = "observations"

	// fetchLimit caps the number of documents a single query can return,
	// protecting the store from unbounded batches.
	fetchLimit = 1000

	// chunkSize bounds the number of patients covered by one query so large
	// batches are split rather than truncated at the patient level. Within a
	// chunk the fetchLimit still applies: a patient whose latest eligible
	// observation sorts after fetchLimit more-recent chunk-mate documents is
	// reported as having no data. Known limit.
	chunkSize = 250
)

func NewRepository(db *mongo.Database) (Repository, error) {
	return &repository{
		collection: db.Collection(observationsCollectionName),
	}, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) LatestEligible(ctx context.Context, patientIds []string, codeId string) (map[string]Observation, error) {
	if len(patientIds) == 0 || codeId == "" {
		return map[string]Observation{}, nil
	}

	codeObjId, err := primitive.ObjectIDFromHex(codeId)
	if err != nil {
		return nil, fmt.Errorf("invalid code id %q: %w", codeId, err)
	}

	latest := make(map[string]Observation)
	for _, chunk := range chunkIds(patientIds, chunkSize) {
		selector := bson.M{
			"codeId": codeObjId,
			"subjectId": bson.M{
				"$in": chunk,
			},
			"status":    StatusFinal,
			"valueType": ValueTypeQuantity,
			"value": bson.M{
				"$ne": nil,
			},
		}
		opts := options.Find().
			SetSort(bson.D{{Key: "effectiveTime", Value: -1}}).
			SetLimit(fetchLimit)

		cursor, err := r.collection.Find(ctx, selector, opts)
		if err != nil {
			return nil, fmt.Errorf("error listing observations: %w", err)
		}

		var results []Observation
		if err = cursor.All(ctx, &results); err != nil {
			return nil, fmt.Errorf("error decoding observations: %w", err)
		}

		// Chunks partition the patient set, so per-chunk results never
		// collide in the merged mapping.
		for subjectId, observation := range CollapseLatest(results) {
			latest[subjectId] = observation
		}
	}

	return latest, nil
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
