package batteries

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"anamnese-service/internal/pkg/constvars"
	"anamnese-service/internal/pkg/dto/requests"
	"anamnese-service/internal/pkg/exceptions"
	"anamnese-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BatteryController struct {
	Log            *zap.Logger
	BatteryUsecase BatteryUsecase
}

func NewBatteryController(logger *zap.Logger, batteryUsecase BatteryUsecase) *BatteryController {
	return &BatteryController{
		Log:            logger,
		BatteryUsecase: batteryUsecase,
	}
}

func (ctrl *BatteryController) ScoreBattery(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.ScoreBattery)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BatteryUsecase.ScoreBattery(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScoreBatterySuccessMessage, response)
}

func (ctrl *BatteryController) CheckCompletion(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.ScoreBattery)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BatteryUsecase.CheckCompletion(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompletionCheckSuccessMessage, response)
}

func (ctrl *BatteryController) ImportBatch(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.ImportBatch)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Batch imports compute one engine pass per battery, so they get a
	// wider deadline than single-battery scoring.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.BatteryUsecase.ImportBatch(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if !response.Committed {
		utils.BuildSuccessResponse(w, constvars.StatusUnprocessableEntity, constvars.ImportBatchRejectedMessage, response)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ImportBatchSuccessMessage, response)
}

func (ctrl *BatteryController) FindBatteryByID(w http.ResponseWriter, r *http.Request) {
	batteryID := chi.URLParam(r, constvars.URLParamBatteryID)
	if batteryID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamBatteryID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BatteryUsecase.FindBatteryByID(ctx, batteryID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindBatterySuccessMessage, response)
}
