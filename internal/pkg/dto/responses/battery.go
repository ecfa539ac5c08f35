package responses

// SessionScore is the wire form of one session's reduced result.
type SessionScore struct {
	SessionID      string            `json:"session_id"`
	Method         string            `json:"method"`
	Value          *float64          `json:"value,omitempty"`
	ThresholdCount *int              `json:"threshold_count,omitempty"`
	RawQualitative map[string]string `json:"raw_qualitative,omitempty"`
}

type ScoreResult struct {
	QuestionnaireID    string                  `json:"questionnaire_id"`
	Sessions           map[string]SessionScore `json:"sessions"`
	QuestionnaireValue *float64                `json:"questionnaire_value,omitempty"`
}

type Completion struct {
	Complete           bool     `json:"complete"`
	MissingQuestionIDs []string `json:"missing_question_ids"`
}

type ScoreBattery struct {
	BatteryID  string      `json:"battery_id,omitempty"`
	Score      ScoreResult `json:"score"`
	Completion Completion  `json:"completion"`
}

// BatteryImportResult is one entry of a batch import: either a computed
// score with completion status or a structured error, never both.
type BatteryImportResult struct {
	BatteryID       string       `json:"battery_id"`
	QuestionnaireID string       `json:"questionnaire_id"`
	Success         bool         `json:"success"`
	Score           *ScoreResult `json:"score,omitempty"`
	Completion      *Completion  `json:"completion,omitempty"`
	Error           string       `json:"error,omitempty"`
}

type ImportBatch struct {
	BatchID   string                `json:"batch_id"`
	Committed bool                  `json:"committed"`
	Results   []BatteryImportResult `json:"results"`
}
