package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"migranthealth/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStateRepo keeps the AppState as one document with a fixed _id, so
// save is a full upsert replace and load is a single FindOne.
type MongoStateRepo struct {
	coll *mongo.Collection
}

func NewMongoStateRepo(client *mongo.Client, database string) *MongoStateRepo {
	return &MongoStateRepo{coll: client.Database(database).Collection("APP_STATE")}
}

type stateDocument struct {
	ID              string `bson:"_id"`
	models.AppState `bson:",inline"`
}

func (r *MongoStateRepo) Load() *models.AppState {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc stateDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": StateKey}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Println("Error loading saved data:", err)
		}
		return nil
	}
	state := doc.AppState
	return &state
}

func (r *MongoStateRepo) Save(state models.AppState) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": StateKey}, stateDocument{ID: StateKey, AppState: state}, opts)
	if err != nil {
		log.Println("Error saving state to mongo:", err)
	}
	return err
}
