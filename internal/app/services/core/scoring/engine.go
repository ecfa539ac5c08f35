package scoring

import (
	"anamnese-service/internal/app/models"
)

// Engine computes visibility, completion and scores for a battery of
// answers. It holds no state: every method is a deterministic function of
// its inputs, safe to call from any number of goroutines.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// ScoreBattery runs the full pipeline in the required order: visibility is
// evaluated to completion before scoring is dispatched, so scoring never
// touches a session the current answers exclude.
func (e *Engine) ScoreBattery(definition *models.Questionnaire, answers map[string]models.Answer) (*models.ScoreResult, models.Completion, error) {
	activeSet := e.Evaluate(definition, answers)
	completion := e.CheckCompletion(definition, answers, activeSet)

	result, err := e.Score(definition, answers, activeSet)
	if err != nil {
		return nil, models.Completion{}, err
	}
	return result, completion, nil
}
