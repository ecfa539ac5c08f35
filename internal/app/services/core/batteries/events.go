package batteries

import (
	"time"

	"anamnese-service/internal/app/models"
)

// BatteryScoredEvent is published after a battery's score has been
// committed. Consumers (report rendering, clinical dashboards) live
// outside this service.
type BatteryScoredEvent struct {
	Type            string              `json:"type"`
	BatteryID       string              `json:"battery_id"`
	QuestionnaireID string              `json:"questionnaire_id"`
	PatientID       string              `json:"patient_id,omitempty"`
	BatchID         string              `json:"batch_id,omitempty"`
	Complete        bool                `json:"complete"`
	Score           *models.ScoreResult `json:"score"`
	OccurredAt      time.Time           `json:"occurred_at"`
}
