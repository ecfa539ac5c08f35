package batteries

import (
	"context"
	"testing"

	"anamnese-service/internal/app/config"
	"anamnese-service/internal/app/models"
	"anamnese-service/internal/app/services/core/scoring"
	"anamnese-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeQuestionnaireUsecase struct {
	definitions map[string]*models.Questionnaire
}

func (f *fakeQuestionnaireUsecase) UpsertQuestionnaire(_ context.Context, q *models.Questionnaire) (*models.Questionnaire, error) {
	f.definitions[q.ID] = q
	return q, nil
}

func (f *fakeQuestionnaireUsecase) FindQuestionnaireByID(_ context.Context, questionnaireID string) (*models.Questionnaire, error) {
	return f.LoadDefinition(context.Background(), questionnaireID)
}

func (f *fakeQuestionnaireUsecase) DeleteQuestionnaireByID(_ context.Context, questionnaireID string) error {
	delete(f.definitions, questionnaireID)
	return nil
}

func (f *fakeQuestionnaireUsecase) LoadDefinition(_ context.Context, questionnaireID string) (*models.Questionnaire, error) {
	definition, ok := f.definitions[questionnaireID]
	if !ok {
		return nil, assert.AnError
	}
	return definition, nil
}

type recordingBatteryRepository struct {
	inserted [][]models.Battery
}

func (r *recordingBatteryRepository) InsertMany(_ context.Context, batteries []models.Battery) error {
	r.inserted = append(r.inserted, batteries)
	return nil
}

func (r *recordingBatteryRepository) FindByID(_ context.Context, batteryID string) (*models.Battery, error) {
	for _, batch := range r.inserted {
		for i := range batch {
			if batch[i].ID == batteryID {
				return &batch[i], nil
			}
		}
	}
	return nil, assert.AnError
}

type recordingPublisher struct {
	events []*BatteryScoredEvent
}

func (p *recordingPublisher) PublishBatteryScored(_ context.Context, event *BatteryScoredEvent) error {
	p.events = append(p.events, event)
	return nil
}

func sumDefinition() *models.Questionnaire {
	return &models.Questionnaire{
		ID:    "triagem-tdah",
		Title: "Triagem TDAH",
		Sessions: []models.Session{
			{
				ID:    "sintomas",
				Title: "Sintomas",
				Order: 1,
				Questions: []models.Question{
					{
						ID:            "q1",
						Text:          "Dificuldade de atenção",
						Order:         1,
						ResponseKind:  models.ResponseKindBoolean,
						ScoringMethod: models.ScoringMethodSumItem,
						Required:      true,
						Choices: []models.Choice{
							{ID: "q1-sim", Label: "Sim", Value: 1},
							{ID: "q1-nao", Label: "Não", Value: 0},
						},
					},
					{
						ID:            "q2",
						Text:          "Inquietação",
						Order:         2,
						ResponseKind:  models.ResponseKindBoolean,
						ScoringMethod: models.ScoringMethodSumItem,
						Required:      true,
						Choices: []models.Choice{
							{ID: "q2-sim", Label: "Sim", Value: 1},
							{ID: "q2-nao", Label: "Não", Value: 0},
						},
					},
				},
			},
		},
	}
}

func newTestUsecase(t *testing.T) (BatteryUsecase, *recordingBatteryRepository, *recordingPublisher) {
	t.Helper()
	repository := &recordingBatteryRepository{}
	publisher := &recordingPublisher{}
	questionnaireUsecase := &fakeQuestionnaireUsecase{
		definitions: map[string]*models.Questionnaire{"triagem-tdah": sumDefinition()},
	}
	internalConfig := &config.InternalConfig{}
	internalConfig.App.BatchImportWorkers = 4
	usecase := NewBatteryUsecase(
		zap.NewNop(),
		questionnaireUsecase,
		repository,
		publisher,
		scoring.NewEngine(),
		internalConfig,
	)
	return usecase, repository, publisher
}

func TestScoreBattery(t *testing.T) {
	usecase, repository, publisher := newTestUsecase(t)

	response, err := usecase.ScoreBattery(context.Background(), &requests.ScoreBattery{
		QuestionnaireID: "triagem-tdah",
		PatientID:       "paciente-1",
		Answers: map[string]requests.Answer{
			"q1": {ChoiceID: "q1-sim"},
			"q2": {ChoiceID: "q2-nao"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, response)

	session, ok := response.Score.Sessions["sintomas"]
	require.True(t, ok)
	require.NotNil(t, session.Value)
	assert.Equal(t, 1.0, *session.Value)
	assert.True(t, response.Completion.Complete)

	require.Len(t, repository.inserted, 1)
	require.Len(t, repository.inserted[0], 1)
	assert.Equal(t, "paciente-1", repository.inserted[0][0].PatientID)
	assert.True(t, repository.inserted[0][0].Complete)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, response.BatteryID, publisher.events[0].BatteryID)
	assert.Empty(t, publisher.events[0].BatchID)
}

func TestScoreBatteryInvalidReference(t *testing.T) {
	usecase, repository, publisher := newTestUsecase(t)

	_, err := usecase.ScoreBattery(context.Background(), &requests.ScoreBattery{
		QuestionnaireID: "triagem-tdah",
		Answers: map[string]requests.Answer{
			"q1": {ChoiceID: "q2-sim"},
		},
	})
	require.Error(t, err)
	assert.Empty(t, repository.inserted)
	assert.Empty(t, publisher.events)
}

func TestCheckCompletion(t *testing.T) {
	usecase, repository, _ := newTestUsecase(t)

	response, err := usecase.CheckCompletion(context.Background(), &requests.ScoreBattery{
		QuestionnaireID: "triagem-tdah",
		Answers: map[string]requests.Answer{
			"q1": {ChoiceID: "q1-sim"},
		},
	})
	require.NoError(t, err)
	assert.False(t, response.Complete)
	assert.Equal(t, []string{"q2"}, response.MissingQuestionIDs)

	// Completion is a read-only check, nothing may be persisted.
	assert.Empty(t, repository.inserted)
}

func TestImportBatchCommitsWhenAllSucceed(t *testing.T) {
	usecase, repository, publisher := newTestUsecase(t)

	response, err := usecase.ImportBatch(context.Background(), &requests.ImportBatch{
		Batteries: []requests.BatteryInput{
			{
				BatteryID:       "bateria-1",
				QuestionnaireID: "triagem-tdah",
				Answers: map[string]requests.Answer{
					"q1": {ChoiceID: "q1-sim"},
					"q2": {ChoiceID: "q2-sim"},
				},
			},
			{
				BatteryID:       "bateria-2",
				QuestionnaireID: "triagem-tdah",
				Answers: map[string]requests.Answer{
					"q1": {ChoiceID: "q1-nao"},
					"q2": {ChoiceID: "q2-nao"},
				},
			},
		},
	})
	require.NoError(t, err)
	require.True(t, response.Committed)
	assert.NotEmpty(t, response.BatchID)
	require.Len(t, response.Results, 2)

	for _, result := range response.Results {
		assert.True(t, result.Success)
		assert.Empty(t, result.Error)
		require.NotNil(t, result.Score)
	}
	require.NotNil(t, response.Results[0].Score.Sessions["sintomas"].Value)
	assert.Equal(t, 2.0, *response.Results[0].Score.Sessions["sintomas"].Value)
	require.NotNil(t, response.Results[1].Score.Sessions["sintomas"].Value)
	assert.Equal(t, 0.0, *response.Results[1].Score.Sessions["sintomas"].Value)

	// One commit carrying both batteries, plus one scored event each
	// tagged with the batch.
	require.Len(t, repository.inserted, 1)
	assert.Len(t, repository.inserted[0], 2)
	require.Len(t, publisher.events, 2)
	for _, event := range publisher.events {
		assert.Equal(t, response.BatchID, event.BatchID)
	}
}

func TestImportBatchRejectsAllWhenOneFails(t *testing.T) {
	usecase, repository, publisher := newTestUsecase(t)

	response, err := usecase.ImportBatch(context.Background(), &requests.ImportBatch{
		Batteries: []requests.BatteryInput{
			{
				BatteryID:       "bateria-1",
				QuestionnaireID: "triagem-tdah",
				Answers: map[string]requests.Answer{
					"q1": {ChoiceID: "q1-sim"},
					"q2": {ChoiceID: "q2-sim"},
				},
			},
			{
				// Choice belongs to another question: per-battery failure.
				BatteryID:       "bateria-2",
				QuestionnaireID: "triagem-tdah",
				Answers: map[string]requests.Answer{
					"q1": {ChoiceID: "q2-sim"},
				},
			},
			{
				BatteryID:       "bateria-3",
				QuestionnaireID: "triagem-tdah",
				Answers: map[string]requests.Answer{
					"q1": {ChoiceID: "q1-nao"},
					"q2": {ChoiceID: "q2-nao"},
				},
			},
		},
	})
	require.NoError(t, err)

	// Every battery keeps its own verdict, siblings are not aborted.
	require.Len(t, response.Results, 3)
	assert.True(t, response.Results[0].Success)
	assert.False(t, response.Results[1].Success)
	assert.NotEmpty(t, response.Results[1].Error)
	assert.True(t, response.Results[2].Success)

	// One failure rejects the whole batch: nothing persisted, nothing
	// published.
	assert.False(t, response.Committed)
	assert.Empty(t, repository.inserted)
	assert.Empty(t, publisher.events)
}
