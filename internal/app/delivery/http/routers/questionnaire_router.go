package routers

import (
	"anamnese-service/internal/app/services/core/questionnaires"
	"anamnese-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(router chi.Router, questionnaireController *questionnaires.QuestionnaireController) {
	router.Post("/", questionnaireController.UpsertQuestionnaire)
	router.Put("/{"+constvars.URLParamQuestionnaireID+"}", questionnaireController.UpsertQuestionnaire)
	router.Get("/{"+constvars.URLParamQuestionnaireID+"}", questionnaireController.FindQuestionnaireByID)
	router.Delete("/{"+constvars.URLParamQuestionnaireID+"}", questionnaireController.DeleteQuestionnaireByID)
}
