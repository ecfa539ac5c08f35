package scoring

import (
	"anamnese-service/internal/app/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

// scaleChoices builds a 0..n-1 valued choice list, optionally flagging the
// upper values as threshold-positive, the way SNAP-IV/ASRS items flag
// "Bastante"/"Demais".
func scaleChoices(n int, thresholdFrom int) []models.Choice {
	labels := []string{"Nem um pouco", "Só um pouco", "Bastante", "Demais"}
	choices := make([]models.Choice, 0, n)
	for i := 0; i < n; i++ {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		choices = append(choices, models.Choice{
			ID:                  string(rune('a' + i)),
			Label:               label,
			Value:               float64(i),
			IsPositiveThreshold: thresholdFrom >= 0 && i >= thresholdFrom,
		})
	}
	return choices
}

func yesNoChoices() []models.Choice {
	return []models.Choice{
		{ID: "yes", Label: "Sim", Value: 1},
		{ID: "no", Label: "Não", Value: 0},
	}
}

func choiceQuestion(id string, order int, method models.ScoringMethod, required bool, choices []models.Choice) models.Question {
	kind := models.ResponseKindSingleChoice
	if len(choices) == 2 {
		kind = models.ResponseKindBoolean
	}
	return models.Question{
		ID:            id,
		Text:          id,
		Order:         order,
		ResponseKind:  kind,
		ScoringMethod: method,
		Required:      required,
		Choices:       choices,
	}
}

func textQuestion(id string, order int, required bool) models.Question {
	return models.Question{
		ID:            id,
		Text:          id,
		Order:         order,
		ResponseKind:  models.ResponseKindFreeText,
		ScoringMethod: models.ScoringMethodQualitative,
		Required:      required,
	}
}

func choiceAnswer(choiceID string) models.Answer {
	return models.Answer{ChoiceID: choiceID}
}
