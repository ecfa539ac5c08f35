package routers

import (
	"anamnese-service/internal/app/services/core/batteries"
	"anamnese-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBatteryRoutes(router chi.Router, batteryController *batteries.BatteryController) {
	router.Post("/score", batteryController.ScoreBattery)
	router.Post("/completion", batteryController.CheckCompletion)
	router.Post("/import", batteryController.ImportBatch)
	router.Get("/{"+constvars.URLParamBatteryID+"}", batteryController.FindBatteryByID)
}
