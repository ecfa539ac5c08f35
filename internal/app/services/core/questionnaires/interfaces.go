package questionnaires

import (
	"context"

	"anamnese-service/internal/app/models"
)

type QuestionnaireUsecase interface {
	UpsertQuestionnaire(ctx context.Context, request *models.Questionnaire) (*models.Questionnaire, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error
	// LoadDefinition returns a validated definition, serving it from the
	// compiled-definition cache when possible. A definition that failed
	// validation is cached as rejected and keeps failing without being
	// re-validated per answer set.
	LoadDefinition(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
}

type QuestionnaireRepository interface {
	Upsert(ctx context.Context, questionnaire *models.Questionnaire) (*models.Questionnaire, error)
	FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	DeleteByID(ctx context.Context, questionnaireID string) error
}
