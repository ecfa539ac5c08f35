package models

import "time"

// Answer is one respondent answer to a single question. Exactly one of the
// payload fields is expected to be populated, matching the question's
// response kind.
type Answer struct {
	ChoiceID  string   `json:"choice_id,omitempty" bson:"choice_id,omitempty"`
	ChoiceIDs []string `json:"choice_ids,omitempty" bson:"choice_ids,omitempty"`
	Text      string   `json:"text,omitempty" bson:"text,omitempty"`
	Number    *float64 `json:"number,omitempty" bson:"number,omitempty"`
}

// Empty reports whether the answer carries no payload at all.
func (a Answer) Empty() bool {
	return a.ChoiceID == "" && len(a.ChoiceIDs) == 0 && a.Text == "" && a.Number == nil
}

// SelectedChoiceIDs returns every choice id the answer selects, regardless
// of whether it was given as a single or a multiple selection.
func (a Answer) SelectedChoiceIDs() []string {
	if a.ChoiceID != "" {
		return []string{a.ChoiceID}
	}
	return a.ChoiceIDs
}

// Battery is one respondent's answer set for a questionnaire. Answers for
// sessions that later became inactive are retained; the engine excludes
// them from completion and scoring.
type Battery struct {
	ID              string            `json:"id,omitempty" bson:"_id,omitempty"`
	QuestionnaireID string            `json:"questionnaire_id" bson:"questionnaire_id"`
	PatientID       string            `json:"patient_id,omitempty" bson:"patient_id,omitempty"`
	Answers         map[string]Answer `json:"answers" bson:"answers"`
	Complete        bool              `json:"complete" bson:"complete"`
	CreatedAt       time.Time         `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
