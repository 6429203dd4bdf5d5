package mongodb

import (
	"context"
	"errors"
	"time"

	"rescue-dog-favorites/internal/domain/favorites"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type slotDocument struct {
	Key       string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// SlotsRepo guarda un documento por slot, con la key como _id.
type SlotsRepo struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewSlotsRepo(collection *mongo.Collection) *SlotsRepo {
	return &SlotsRepo{
		collection: collection,
		now:        time.Now,
	}
}

// Open conecta y hace ping al primario.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

func (r *SlotsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var doc slotDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, favorites.ErrSlotNotFound
		}
		return nil, err
	}
	return doc.Payload, nil
}

func (r *SlotsRepo) Set(ctx context.Context, key string, payload []byte) error {
	doc := slotDocument{
		Key:       key,
		Payload:   payload,
		UpdatedAt: r.now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	return err
}
