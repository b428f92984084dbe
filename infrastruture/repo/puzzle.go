package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/linetrace-api/puzzle"
	"github.com/beka-birhanu/linetrace-api/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PuzzleRepo handles the persistence of puzzle snapshots.
type PuzzleRepo struct {
	collection *mongo.Collection
}

// NewPuzzleRepo creates a new PuzzleRepo with the given MongoDB client, database name, and collection name.
func NewPuzzleRepo(client *mongo.Client, dbName, collectionName string) *PuzzleRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &PuzzleRepo{
		collection: collection,
	}
}

// Save inserts or updates a puzzle snapshot.
func (p *PuzzleRepo) Save(ctx context.Context, snapshot *puzzle.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": snapshot.ID}

	opts := options.Replace().SetUpsert(true)
	if _, err := p.collection.ReplaceOne(ctx, filter, snapshot, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a puzzle snapshot by its ID.
func (p *PuzzleRepo) ByID(ctx context.Context, id uuid.UUID) (*puzzle.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var snapshot puzzle.Snapshot
	if err := p.collection.FindOne(ctx, filter).Decode(&snapshot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, i.ErrPuzzleNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &snapshot, nil
}
