package utils

import (
	"errors"
	"net/http"

	"anamnese-service/internal/pkg/constvars"
	"anamnese-service/internal/pkg/dto/responses"
	"anamnese-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error("request failed",
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.String("client_message", customErr.ClientMessage),
			zap.String("dev_message", customErr.DevMessage),
			zap.String("location", customErr.Location.FunctionName),
		)
	} else {
		log.Error("request failed with uncategorized error", zap.Error(err))
	}

	response := responses.ResponseDTO{
		Success: false,
		Message: clientMessage,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
