package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"labportal/internal/model"
)

//go:generate mockgen -source=repo.go -destination=storemock/mock_repository.go -package=storemock

// Repository is the document-store surface the rest of the service
// sees: get/set by serial number, nothing else.
type Repository interface {
	PutOrder(ctx context.Context, o model.Order) error
	GetOrder(ctx context.Context, serial string) (model.Order, bool, error)
}

type Mongo struct {
	coll *mongo.Collection
}

func New(db *mongo.Database, collection string) *Mongo {
	return &Mongo{coll: db.Collection(collection)}
}

// PutOrder writes the order document keyed by its serial number.
// Replaces any existing document at that key without an existence
// check, same as a Firestore-style set.
func (m *Mongo) PutOrder(ctx context.Context, o model.Order) error {
	_, err := m.coll.ReplaceOne(ctx,
		bson.M{"serialNumber": o.SerialNumber},
		o,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("put order %s: %w", o.SerialNumber, err)
	}
	return nil
}

func (m *Mongo) GetOrder(ctx context.Context, serial string) (model.Order, bool, error) {
	var o model.Order
	err := m.coll.FindOne(ctx, bson.M{"serialNumber": serial}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Order{}, false, nil
		}
		return model.Order{}, false, fmt.Errorf("get order %s: %w", serial, err)
	}
	return o, true, nil
}
