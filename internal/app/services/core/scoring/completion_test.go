package scoring

import (
	"testing"

	"anamnese-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCompletion(t *testing.T) {
	engine := NewEngine()
	definition := branchingDefinition()

	t.Run("Missing Preserves Definition Order", func(t *testing.T) {
		activeSet := engine.Evaluate(definition, nil)

		completion := engine.CheckCompletion(definition, nil, activeSet)

		assert.False(t, completion.Complete)
		assert.Equal(t, []string{"adhd_history"}, completion.MissingQuestionIDs)
	})

	t.Run("Revealed Session Adds Required Questions", func(t *testing.T) {
		answers := map[string]models.Answer{
			"adhd_history": choiceAnswer("yes"),
		}
		activeSet := engine.Evaluate(definition, answers)

		completion := engine.CheckCompletion(definition, answers, activeSet)

		assert.False(t, completion.Complete)
		assert.Contains(t, completion.MissingQuestionIDs, "s1")
	})

	t.Run("Deactivated Session Drops Its Questions", func(t *testing.T) {
		answers := map[string]models.Answer{
			"adhd_history": choiceAnswer("no"),
		}
		activeSet := engine.Evaluate(definition, answers)

		completion := engine.CheckCompletion(definition, answers, activeSet)

		assert.True(t, completion.Complete)
		assert.Empty(t, completion.MissingQuestionIDs)
	})

	t.Run("Deactivation After Answering Still Excludes", func(t *testing.T) {
		// s1 was answered while the snap session was visible; flipping the
		// gate removes it from the required set without discarding the
		// stale answer.
		answers := map[string]models.Answer{
			"adhd_history": choiceAnswer("no"),
			"s1":           choiceAnswer("c"),
		}
		activeSet := engine.Evaluate(definition, answers)

		completion := engine.CheckCompletion(definition, answers, activeSet)

		assert.True(t, completion.Complete)
		assert.NotContains(t, completion.MissingQuestionIDs, "s1")
	})

	t.Run("Structural Validity Per Response Kind", func(t *testing.T) {
		def := &models.Questionnaire{
			ID: "kinds",
			Sessions: []models.Session{
				{
					ID:    "s1",
					Order: 1,
					Questions: []models.Question{
						textQuestion("free", 1, true),
						{
							ID: "num", Order: 2, Required: true,
							ResponseKind:  models.ResponseKindNumeric,
							ScoringMethod: models.ScoringMethodNone,
						},
						choiceQuestion("pick", 3, models.ScoringMethodSumItem, true, yesNoChoices()),
					},
				},
			},
		}
		answers := map[string]models.Answer{
			"free": {Number: floatPtr(1)}, // wrong payload for free text
			"num":  {Number: floatPtr(7)},
			"pick": choiceAnswer("yes"),
		}
		activeSet := engine.Evaluate(def, answers)

		completion := engine.CheckCompletion(def, answers, activeSet)

		require.False(t, completion.Complete)
		assert.Equal(t, []string{"free"}, completion.MissingQuestionIDs)
	})
}
