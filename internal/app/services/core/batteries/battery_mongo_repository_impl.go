package batteries

import (
	"context"

	"anamnese-service/internal/app/models"
	"anamnese-service/internal/pkg/constvars"
	"anamnese-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type batteryMongoRepository struct {
	collection *mongo.Collection
}

func NewBatteryMongoRepository(client *mongo.Client, dbName string) BatteryRepository {
	return &batteryMongoRepository{
		collection: client.Database(dbName).Collection(constvars.MongoCollectionBatteries),
	}
}

// InsertMany commits a whole batch in one ordered bulk insert. Callers
// only reach it after every battery has been computed and validated, so
// the write is the single commit point of the two-phase import.
func (r *batteryMongoRepository) InsertMany(ctx context.Context, batteries []models.Battery) error {
	documents := make([]interface{}, 0, len(batteries))
	for i := range batteries {
		documents = append(documents, batteries[i])
	}

	_, err := r.collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *batteryMongoRepository) FindByID(ctx context.Context, batteryID string) (*models.Battery, error) {
	var battery models.Battery
	err := r.collection.FindOne(ctx, bson.M{"_id": batteryID}).Decode(&battery)
	if err == mongo.ErrNoDocuments {
		return nil, exceptions.ErrBatteryNotFound(batteryID)
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &battery, nil
}
