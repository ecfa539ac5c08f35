package routers

import (
	"fmt"
	"time"

	"anamnese-service/internal/app/config"
	"anamnese-service/internal/app/delivery/http/middlewares"
	"anamnese-service/internal/app/services/core/batteries"
	"anamnese-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	questionnaireController *questionnaires.QuestionnaireController,
	batteryController *batteries.BatteryController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := internalConfig.App.EndpointPrefix
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/questionnaires", func(r chi.Router) {
				attachQuestionnaireRoutes(r, questionnaireController)
			})

			r.Route("/batteries", func(r chi.Router) {
				attachBatteryRoutes(r, batteryController)
			})
		})
	})
}
