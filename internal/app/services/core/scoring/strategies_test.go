package scoring

import (
	"testing"

	"anamnese-service/internal/app/models"
	"anamnese-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSumItem(t *testing.T) {
	engine := NewEngine()
	definition := &models.Questionnaire{
		ID:    "phq",
		Title: "PHQ",
		Sessions: []models.Session{
			{
				ID:    "s1",
				Order: 1,
				Questions: []models.Question{
					choiceQuestion("q1", 1, models.ScoringMethodSumItem, true, yesNoChoices()),
					choiceQuestion("q2", 2, models.ScoringMethodSumItem, true, yesNoChoices()),
					choiceQuestion("q3", 3, models.ScoringMethodSumItem, true, yesNoChoices()),
				},
			},
		},
	}

	t.Run("Three Boolean Questions", func(t *testing.T) {
		answers := map[string]models.Answer{
			"q1": choiceAnswer("yes"),
			"q2": choiceAnswer("no"),
			"q3": choiceAnswer("yes"),
		}
		activeSet := engine.Evaluate(definition, answers)

		result, err := engine.Score(definition, answers, activeSet)

		require.NoError(t, err)
		require.Contains(t, result.Sessions, "s1")
		assert.Equal(t, models.ScoringMethodSumItem, result.Sessions["s1"].Method)
		assert.Equal(t, 2.0, *result.Sessions["s1"].Value)
		assert.Equal(t, 2.0, *result.QuestionnaireValue)
	})

	t.Run("Unanswered Optional Question Contributes Zero", func(t *testing.T) {
		answers := map[string]models.Answer{
			"q1": choiceAnswer("yes"),
		}
		activeSet := engine.Evaluate(definition, answers)

		result, err := engine.Score(definition, answers, activeSet)

		require.NoError(t, err)
		assert.Equal(t, 1.0, *result.Sessions["s1"].Value)
	})

	t.Run("Deterministic Across Calls", func(t *testing.T) {
		answers := map[string]models.Answer{
			"q1": choiceAnswer("yes"),
			"q2": choiceAnswer("yes"),
		}
		activeSet := engine.Evaluate(definition, answers)

		first, err := engine.Score(definition, answers, activeSet)
		require.NoError(t, err)
		second, err := engine.Score(definition, answers, activeSet)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestScoreDevelopmentLevel(t *testing.T) {
	engine := NewEngine()
	definition := &models.Questionnaire{
		ID: "portage",
		Sessions: []models.Session{
			{
				ID:    "motor",
				Order: 1,
				Questions: []models.Question{
					choiceQuestion("q1", 1, models.ScoringMethodDevelopmentLevel, true, scaleChoices(4, -1)),
					choiceQuestion("q2", 2, models.ScoringMethodDevelopmentLevel, true, scaleChoices(4, -1)),
					choiceQuestion("q3", 3, models.ScoringMethodDevelopmentLevel, true, scaleChoices(4, -1)),
					choiceQuestion("q4", 4, models.ScoringMethodDevelopmentLevel, true, scaleChoices(4, -1)),
				},
			},
		},
	}

	t.Run("Mean Of Ordinal Values", func(t *testing.T) {
		answers := map[string]models.Answer{
			"q1": choiceAnswer("a"), // 0
			"q2": choiceAnswer("b"), // 1
			"q3": choiceAnswer("c"), // 2
			"q4": choiceAnswer("d"), // 3
		}
		activeSet := engine.Evaluate(definition, answers)

		result, err := engine.Score(definition, answers, activeSet)

		require.NoError(t, err)
		assert.Equal(t, 1.5, *result.Sessions["motor"].Value)
	})

	t.Run("Rounded To Two Decimals", func(t *testing.T) {
		answers := map[string]models.Answer{
			"q1": choiceAnswer("b"), // 1
			"q2": choiceAnswer("b"), // 1
			"q3": choiceAnswer("c"), // 2
		}
		activeSet := engine.Evaluate(definition, answers)

		result, err := engine.Score(definition, answers, activeSet)

		require.NoError(t, err)
		// 4/3 rounds to 1.33, never summed to 4
		assert.Equal(t, 1.33, *result.Sessions["motor"].Value)
	})

	t.Run("No Answers Yields No Value", func(t *testing.T) {
		answers := map[string]models.Answer{}
		activeSet := engine.Evaluate(definition, answers)

		result, err := engine.Score(definition, answers, activeSet)

		require.NoError(t, err)
		assert.Nil(t, result.Sessions["motor"].Value)
		assert.Nil(t, result.QuestionnaireValue)
	})
}

func TestScoreModeItems(t *testing.T) {
	engine := NewEngine()
	definition := &models.Questionnaire{
		ID: "mode",
		Sessions: []models.Session{
			{
				ID:    "s1",
				Order: 1,
				Questions: []models.Question{
					choiceQuestion("q1", 1, models.ScoringMethodModeItems, true, scaleChoices(4, -1)),
					choiceQuestion("q2", 2, models.ScoringMethodModeItems, true, scaleChoices(4, -1)),
					choiceQuestion("q3", 3, models.ScoringMethodModeItems, true, scaleChoices(4, -1)),
					choiceQuestion("q4", 4, models.ScoringMethodModeItems, true, scaleChoices(4, -1)),
				},
			},
		},
	}

	t.Run("Tie Breaks Toward Higher Value", func(t *testing.T) {
		answers := map[string]models.Answer{
			"q1": choiceAnswer("b"), // 1
			"q2": choiceAnswer("b"), // 1
			"q3": choiceAnswer("c"), // 2
			"q4": choiceAnswer("c"), // 2
		}
		activeSet := engine.Evaluate(definition, answers)

		result, err := engine.Score(definition, answers, activeSet)

		require.NoError(t, err)
		assert.Equal(t, 2.0, *result.Sessions["s1"].Value)
	})

	t.Run("Clear Majority Wins", func(t *testing.T) {
		answers := map[string]models.Answer{
			"q1": choiceAnswer("b"),
			"q2": choiceAnswer("b"),
			"q3": choiceAnswer("b"),
			"q4": choiceAnswer("d"),
		}
		activeSet := engine.Evaluate(definition, answers)

		result, err := engine.Score(definition, answers, activeSet)

		require.NoError(t, err)
		assert.Equal(t, 1.0, *result.Sessions["s1"].Value)
	})
}

func TestScoreThresholdCounting(t *testing.T) {
	engine := NewEngine()

	// SNAP-IV style: nine items on a 0-3 scale, the upper two options count
	// toward the clinical cut-off.
	questions := make([]models.Question, 0, 9)
	for i := 0; i < 9; i++ {
		questions = append(questions, choiceQuestion(
			string(rune('A'+i)), i+1, models.ScoringMethodSumAverageSession, true, scaleChoices(4, 2),
		))
	}
	definition := &models.Questionnaire{
		ID:       "snap-iv",
		Sessions: []models.Session{{ID: "inattention", Order: 1, Questions: questions}},
	}

	t.Run("Seven Flagged Answers", func(t *testing.T) {
		answers := make(map[string]models.Answer, 9)
		for i := 0; i < 7; i++ {
			answers[string(rune('A'+i))] = choiceAnswer("c") // Bastante, flagged
		}
		answers["H"] = choiceAnswer("a")
		answers["I"] = choiceAnswer("b")
		activeSet := engine.Evaluate(definition, answers)

		result, err := engine.Score(definition, answers, activeSet)

		require.NoError(t, err)
		score := result.Sessions["inattention"]
		assert.Equal(t, 7, *score.ThresholdCount)
		// raw sum is exposed alongside the tally: 7*2 + 0 + 1
		assert.Equal(t, 15.0, *score.Value)
	})

	t.Run("Shaded Choice Excluded From Tally But Not Sum", func(t *testing.T) {
		shaded := scaleChoices(4, 2)
		shaded[3].IsShaded = true
		def := &models.Questionnaire{
			ID: "asrs",
			Sessions: []models.Session{{
				ID:    "partA",
				Order: 1,
				Questions: []models.Question{
					choiceQuestion("q1", 1, models.ScoringMethodSumAverageSession, true, shaded),
					choiceQuestion("q2", 2, models.ScoringMethodSumAverageSession, true, scaleChoices(4, 2)),
				},
			}},
		}
		answers := map[string]models.Answer{
			"q1": choiceAnswer("d"), // shaded, value 3
			"q2": choiceAnswer("c"), // flagged, value 2
		}
		activeSet := engine.Evaluate(def, answers)

		result, err := engine.Score(def, answers, activeSet)

		require.NoError(t, err)
		score := result.Sessions["partA"]
		assert.Equal(t, 1, *score.ThresholdCount)
		assert.Equal(t, 5.0, *score.Value)
	})
}

func TestScoreQualitative(t *testing.T) {
	engine := NewEngine()
	definition := &models.Questionnaire{
		ID: "anamnesis",
		Sessions: []models.Session{
			{
				ID:    "history",
				Order: 1,
				Questions: []models.Question{
					textQuestion("q1", 1, true),
					textQuestion("q2", 2, false),
				},
			},
			{
				ID:    "symptoms",
				Order: 2,
				Questions: []models.Question{
					choiceQuestion("q3", 1, models.ScoringMethodSumItem, true, yesNoChoices()),
				},
			},
		},
	}

	answers := map[string]models.Answer{
		"q1": {Text: "Gestação sem intercorrências"},
		"q3": choiceAnswer("yes"),
	}
	activeSet := engine.Evaluate(definition, answers)

	result, err := engine.Score(definition, answers, activeSet)

	require.NoError(t, err)

	history := result.Sessions["history"]
	assert.Equal(t, models.ScoringMethodQualitative, history.Method)
	assert.Nil(t, history.Value)
	assert.Equal(t, map[string]string{"q1": "Gestação sem intercorrências"}, history.Qualitative)

	// questionnaire total covers the numeric subset only, the qualitative
	// session is surfaced on its own
	assert.Equal(t, 1.0, *result.QuestionnaireValue)
}

func TestScoreInvalidAnswerReference(t *testing.T) {
	engine := NewEngine()
	definition := &models.Questionnaire{
		ID: "q",
		Sessions: []models.Session{
			{
				ID:    "s1",
				Order: 1,
				Questions: []models.Question{
					choiceQuestion("q1", 1, models.ScoringMethodSumItem, true, yesNoChoices()),
				},
			},
		},
	}

	t.Run("Choice Outside Question", func(t *testing.T) {
		answers := map[string]models.Answer{"q1": choiceAnswer("maybe")}
		activeSet := engine.Evaluate(definition, answers)

		_, err := engine.Score(definition, answers, activeSet)

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "maybe")
	})

	t.Run("Question Outside Definition", func(t *testing.T) {
		answers := map[string]models.Answer{"ghost": choiceAnswer("yes")}
		activeSet := engine.Evaluate(definition, answers)

		_, err := engine.Score(definition, answers, activeSet)

		require.Error(t, err)
	})
}

func TestScoreExcludesInactiveSessions(t *testing.T) {
	engine := NewEngine()
	definition := &models.Questionnaire{
		ID: "branching",
		Sessions: []models.Session{
			{
				ID:    "screen",
				Order: 1,
				Questions: []models.Question{
					choiceQuestion("gate", 1, models.ScoringMethodNone, true, yesNoChoices()),
				},
			},
			{
				ID:    "followup",
				Order: 2,
				VisibilityRule: &models.VisibilityRule{
					QuestionID: "gate",
					Operator:   models.RuleOperatorEquals,
					ChoiceID:   "yes",
				},
				Questions: []models.Question{
					choiceQuestion("f1", 1, models.ScoringMethodSumItem, true, yesNoChoices()),
				},
			},
		},
	}

	// Answer the follow-up first, then flip the gate to "no": the stale
	// answer stays in the set but never reaches an aggregate.
	answers := map[string]models.Answer{
		"gate": choiceAnswer("no"),
		"f1":   choiceAnswer("yes"),
	}
	activeSet := engine.Evaluate(definition, answers)

	result, err := engine.Score(definition, answers, activeSet)

	require.NoError(t, err)
	assert.NotContains(t, result.Sessions, "followup")
	assert.Nil(t, result.QuestionnaireValue)
}
