package questionnaires

import (
	"context"

	"anamnese-service/internal/app/models"
	"anamnese-service/internal/pkg/constvars"
	"anamnese-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type questionnaireMongoRepository struct {
	collection *mongo.Collection
}

func NewQuestionnaireMongoRepository(client *mongo.Client, dbName string) QuestionnaireRepository {
	return &questionnaireMongoRepository{
		collection: client.Database(dbName).Collection(constvars.MongoCollectionQuestionnaires),
	}
}

func (r *questionnaireMongoRepository) Upsert(ctx context.Context, questionnaire *models.Questionnaire) (*models.Questionnaire, error) {
	filter := bson.M{"_id": questionnaire.ID}
	update := bson.M{"$set": questionnaire}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return questionnaire, nil
}

func (r *questionnaireMongoRepository) FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	err := r.collection.FindOne(ctx, bson.M{"_id": questionnaireID}).Decode(&questionnaire)
	if err == mongo.ErrNoDocuments {
		return nil, exceptions.ErrQuestionnaireNotFound(questionnaireID)
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &questionnaire, nil
}

func (r *questionnaireMongoRepository) DeleteByID(ctx context.Context, questionnaireID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": questionnaireID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
