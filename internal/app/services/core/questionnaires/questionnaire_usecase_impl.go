package questionnaires

import (
	"context"
	"time"

	"anamnese-service/internal/app/config"
	"anamnese-service/internal/app/models"
	"anamnese-service/internal/app/services/core/scoring"
	"anamnese-service/internal/app/services/shared/redis"
	"anamnese-service/internal/pkg/constvars"
	"anamnese-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type questionnaireUsecase struct {
	QuestionnaireRepository QuestionnaireRepository
	RedisRepository         redis.RedisRepository
	Engine                  *scoring.Engine
	InternalConfig          *config.InternalConfig
}

func NewQuestionnaireUsecase(
	questionnaireRepository QuestionnaireRepository,
	redisRepository redis.RedisRepository,
	engine *scoring.Engine,
	internalConfig *config.InternalConfig,
) QuestionnaireUsecase {
	return &questionnaireUsecase{
		QuestionnaireRepository: questionnaireRepository,
		RedisRepository:         redisRepository,
		Engine:                  engine,
		InternalConfig:          internalConfig,
	}
}

func (uc *questionnaireUsecase) UpsertQuestionnaire(ctx context.Context, request *models.Questionnaire) (*models.Questionnaire, error) {
	if err := uc.Engine.ValidateDefinition(request); err != nil {
		return nil, err
	}

	questionnaire, err := uc.QuestionnaireRepository.Upsert(ctx, request)
	if err != nil {
		return nil, err
	}

	// Stale compiled copies and rejection verdicts must not survive a
	// republish.
	_ = uc.RedisRepository.Delete(ctx, constvars.RedisKeyCompiledDefinitionPrefix+request.ID)
	_ = uc.RedisRepository.Delete(ctx, constvars.RedisKeyRejectedDefinitionPrefix+request.ID)

	return questionnaire, nil
}

func (uc *questionnaireUsecase) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	return uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
}

func (uc *questionnaireUsecase) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	err := uc.QuestionnaireRepository.DeleteByID(ctx, questionnaireID)
	if err != nil {
		return err
	}

	_ = uc.RedisRepository.Delete(ctx, constvars.RedisKeyCompiledDefinitionPrefix+questionnaireID)
	_ = uc.RedisRepository.Delete(ctx, constvars.RedisKeyRejectedDefinitionPrefix+questionnaireID)
	return nil
}

func (uc *questionnaireUsecase) LoadDefinition(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyCompiledDefinitionPrefix+questionnaireID)
	if err == nil && cached != "" {
		var questionnaire models.Questionnaire
		if unmarshalErr := json.Unmarshal([]byte(cached), &questionnaire); unmarshalErr == nil {
			return &questionnaire, nil
		}
	}

	rejected, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyRejectedDefinitionPrefix+questionnaireID)
	if err == nil && rejected != "" {
		return nil, exceptions.BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientDefinitionRejected, rejected)
	}

	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	expiry := time.Minute * time.Duration(uc.InternalConfig.App.CompiledDefinitionCacheTTLInMinutes)
	if validationErr := uc.Engine.ValidateDefinition(questionnaire); validationErr != nil {
		_ = uc.RedisRepository.Set(ctx, constvars.RedisKeyRejectedDefinitionPrefix+questionnaireID, validationErr.Error(), expiry)
		return nil, validationErr
	}

	_ = uc.RedisRepository.Set(ctx, constvars.RedisKeyCompiledDefinitionPrefix+questionnaireID, questionnaire, expiry)
	return questionnaire, nil
}
