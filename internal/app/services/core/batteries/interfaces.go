package batteries

import (
	"context"

	"anamnese-service/internal/app/models"
	"anamnese-service/internal/pkg/dto/requests"
	"anamnese-service/internal/pkg/dto/responses"
)

type BatteryUsecase interface {
	ScoreBattery(ctx context.Context, request *requests.ScoreBattery) (*responses.ScoreBattery, error)
	CheckCompletion(ctx context.Context, request *requests.ScoreBattery) (*responses.Completion, error)
	ImportBatch(ctx context.Context, request *requests.ImportBatch) (*responses.ImportBatch, error)
	FindBatteryByID(ctx context.Context, batteryID string) (*models.Battery, error)
}

type BatteryRepository interface {
	InsertMany(ctx context.Context, batteries []models.Battery) error
	FindByID(ctx context.Context, batteryID string) (*models.Battery, error)
}

type ScoredEventPublisher interface {
	PublishBatteryScored(ctx context.Context, event *BatteryScoredEvent) error
}
