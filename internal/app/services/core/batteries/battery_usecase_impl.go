package batteries

import (
	"context"
	"sync"
	"time"

	"anamnese-service/internal/app/config"
	"anamnese-service/internal/app/models"
	"anamnese-service/internal/app/services/core/questionnaires"
	"anamnese-service/internal/app/services/core/scoring"
	"anamnese-service/internal/pkg/constvars"
	"anamnese-service/internal/pkg/dto/requests"
	"anamnese-service/internal/pkg/dto/responses"
	"anamnese-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type batteryUsecase struct {
	Log                  *zap.Logger
	QuestionnaireUsecase questionnaires.QuestionnaireUsecase
	BatteryRepository    BatteryRepository
	Publisher            ScoredEventPublisher
	Engine               *scoring.Engine
	InternalConfig       *config.InternalConfig
}

func NewBatteryUsecase(
	logger *zap.Logger,
	questionnaireUsecase questionnaires.QuestionnaireUsecase,
	batteryRepository BatteryRepository,
	publisher ScoredEventPublisher,
	engine *scoring.Engine,
	internalConfig *config.InternalConfig,
) BatteryUsecase {
	return &batteryUsecase{
		Log:                  logger,
		QuestionnaireUsecase: questionnaireUsecase,
		BatteryRepository:    batteryRepository,
		Publisher:            publisher,
		Engine:               engine,
		InternalConfig:       internalConfig,
	}
}

func (uc *batteryUsecase) ScoreBattery(ctx context.Context, request *requests.ScoreBattery) (*responses.ScoreBattery, error) {
	var response *responses.ScoreBattery

	err := utils.LogOperation(uc.Log, "score_battery", utils.GetRequestID(ctx), func() error {
		definition, err := uc.QuestionnaireUsecase.LoadDefinition(ctx, request.QuestionnaireID)
		if err != nil {
			return err
		}

		answers := requests.MapAnswers(request.Answers)
		score, completion, err := uc.Engine.ScoreBattery(definition, answers)
		if err != nil {
			return err
		}

		battery := models.Battery{
			ID:              utils.GenerateBatteryID(),
			QuestionnaireID: request.QuestionnaireID,
			PatientID:       request.PatientID,
			Answers:         answers,
			Complete:        completion.Complete,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}
		if err := uc.BatteryRepository.InsertMany(ctx, []models.Battery{battery}); err != nil {
			return err
		}

		uc.publishScored(ctx, &battery, "", score)

		response = &responses.ScoreBattery{
			BatteryID:  battery.ID,
			Score:      *mapScoreResult(score),
			Completion: mapCompletion(completion),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *batteryUsecase) CheckCompletion(ctx context.Context, request *requests.ScoreBattery) (*responses.Completion, error) {
	definition, err := uc.QuestionnaireUsecase.LoadDefinition(ctx, request.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	answers := requests.MapAnswers(request.Answers)
	activeSet := uc.Engine.Evaluate(definition, answers)
	completion := uc.Engine.CheckCompletion(definition, answers, activeSet)

	response := mapCompletion(completion)
	return &response, nil
}

func (uc *batteryUsecase) FindBatteryByID(ctx context.Context, batteryID string) (*models.Battery, error) {
	return uc.BatteryRepository.FindByID(ctx, batteryID)
}

// batchEntry is the phase-one outcome for one battery of an import:
// either a computed score with its battery document, or an error.
type batchEntry struct {
	battery    models.Battery
	score      *models.ScoreResult
	completion models.Completion
	err        error
}

// ImportBatch applies the engine to every battery independently and
// commits all-or-none. Phase one is pure computation fanned out over
// workers; nothing is written until every battery has a verdict, so a
// failing battery can never leave siblings half-committed.
func (uc *batteryUsecase) ImportBatch(ctx context.Context, request *requests.ImportBatch) (*responses.ImportBatch, error) {
	batchID := utils.GenerateBatchID()
	entries := make([]batchEntry, len(request.Batteries))

	workers := uc.InternalConfig.App.BatchImportWorkers
	if workers <= 0 {
		workers = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				entries[i] = uc.computeEntry(ctx, &request.Batteries[i])
			}
		}()
	}
	for i := range request.Batteries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	response := &responses.ImportBatch{
		BatchID: batchID,
		Results: make([]responses.BatteryImportResult, 0, len(entries)),
	}

	allSucceeded := true
	toCommit := make([]models.Battery, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		result := responses.BatteryImportResult{
			BatteryID:       entry.battery.ID,
			QuestionnaireID: request.Batteries[i].QuestionnaireID,
		}
		if entry.err != nil {
			allSucceeded = false
			result.Error = entry.err.Error()
		} else {
			result.Success = true
			result.Score = mapScoreResult(entry.score)
			completion := mapCompletion(entry.completion)
			result.Completion = &completion
			toCommit = append(toCommit, entry.battery)
		}
		response.Results = append(response.Results, result)
	}

	if !allSucceeded {
		uc.Log.Warn("batch import rejected",
			zap.String(constvars.LoggingBatchIDKey, batchID),
			zap.Int(constvars.LoggingBatchSizeKey, len(request.Batteries)),
		)
		return response, nil
	}

	if err := uc.BatteryRepository.InsertMany(ctx, toCommit); err != nil {
		return nil, err
	}
	response.Committed = true

	for i := range entries {
		uc.publishScored(ctx, &entries[i].battery, batchID, entries[i].score)
	}

	uc.Log.Info("batch import committed",
		zap.String(constvars.LoggingBatchIDKey, batchID),
		zap.Int(constvars.LoggingBatchSizeKey, len(toCommit)),
	)
	return response, nil
}

func (uc *batteryUsecase) computeEntry(ctx context.Context, input *requests.BatteryInput) batchEntry {
	definition, err := uc.QuestionnaireUsecase.LoadDefinition(ctx, input.QuestionnaireID)
	if err != nil {
		return batchEntry{battery: models.Battery{ID: input.BatteryID}, err: err}
	}

	answers := requests.MapAnswers(input.Answers)
	score, completion, err := uc.Engine.ScoreBattery(definition, answers)
	if err != nil {
		return batchEntry{battery: models.Battery{ID: input.BatteryID}, err: err}
	}

	batteryID := input.BatteryID
	if batteryID == "" {
		batteryID = utils.GenerateBatteryID()
	}
	return batchEntry{
		battery: models.Battery{
			ID:              batteryID,
			QuestionnaireID: input.QuestionnaireID,
			PatientID:       input.PatientID,
			Answers:         answers,
			Complete:        completion.Complete,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		},
		score:      score,
		completion: completion,
	}
}

func (uc *batteryUsecase) publishScored(ctx context.Context, battery *models.Battery, batchID string, score *models.ScoreResult) {
	event := &BatteryScoredEvent{
		Type:            constvars.BatteryScoredEventType,
		BatteryID:       battery.ID,
		QuestionnaireID: battery.QuestionnaireID,
		PatientID:       battery.PatientID,
		BatchID:         batchID,
		Complete:        battery.Complete,
		Score:           score,
		OccurredAt:      time.Now(),
	}
	if err := uc.Publisher.PublishBatteryScored(ctx, event); err != nil {
		// Scores are re-derivable, so a lost event is logged, not fatal.
		uc.Log.Error("failed to publish battery scored event",
			zap.String(constvars.LoggingBatteryKey, battery.ID),
			zap.Error(err),
		)
	}
}

func mapScoreResult(score *models.ScoreResult) *responses.ScoreResult {
	mapped := &responses.ScoreResult{
		QuestionnaireID:    score.QuestionnaireID,
		Sessions:           make(map[string]responses.SessionScore, len(score.Sessions)),
		QuestionnaireValue: score.QuestionnaireValue,
	}
	for sessionID, sessionScore := range score.Sessions {
		mapped.Sessions[sessionID] = responses.SessionScore{
			SessionID:      sessionScore.SessionID,
			Method:         string(sessionScore.Method),
			Value:          sessionScore.Value,
			ThresholdCount: sessionScore.ThresholdCount,
			RawQualitative: sessionScore.Qualitative,
		}
	}
	return mapped
}

func mapCompletion(completion models.Completion) responses.Completion {
	return responses.Completion{
		Complete:           completion.Complete,
		MissingQuestionIDs: completion.MissingQuestionIDs,
	}
}
