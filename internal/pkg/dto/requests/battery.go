package requests

import "anamnese-service/internal/app/models"

// Answer mirrors models.Answer on the wire: one populated payload field
// per question, matching the question's response kind.
type Answer struct {
	ChoiceID  string   `json:"choice_id,omitempty"`
	ChoiceIDs []string `json:"choice_ids,omitempty"`
	Text      string   `json:"text,omitempty"`
	Number    *float64 `json:"number,omitempty"`
}

func (a Answer) ToModel() models.Answer {
	return models.Answer{
		ChoiceID:  a.ChoiceID,
		ChoiceIDs: a.ChoiceIDs,
		Text:      a.Text,
		Number:    a.Number,
	}
}

func MapAnswers(answers map[string]Answer) map[string]models.Answer {
	mapped := make(map[string]models.Answer, len(answers))
	for questionID, answer := range answers {
		mapped[questionID] = answer.ToModel()
	}
	return mapped
}

type ScoreBattery struct {
	QuestionnaireID string            `json:"questionnaire_id" validate:"required"`
	PatientID       string            `json:"patient_id,omitempty"`
	Answers         map[string]Answer `json:"answers" validate:"required"`
}

// BatteryInput is one battery inside a batch import. Each battery names
// its own questionnaire.
type BatteryInput struct {
	BatteryID       string            `json:"battery_id,omitempty"`
	QuestionnaireID string            `json:"questionnaire_id" validate:"required"`
	PatientID       string            `json:"patient_id,omitempty"`
	Answers         map[string]Answer `json:"answers" validate:"required"`
}

type ImportBatch struct {
	Batteries []BatteryInput `json:"batteries" validate:"required,min=1,dive"`
}
