package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anamnese-service/internal/app/config"
	"anamnese-service/internal/app/delivery/http/middlewares"
	"anamnese-service/internal/app/delivery/http/routers"
	"anamnese-service/internal/app/drivers/database"
	"anamnese-service/internal/app/drivers/logger"
	"anamnese-service/internal/app/drivers/messaging"
	"anamnese-service/internal/app/services/core/batteries"
	"anamnese-service/internal/app/services/core/questionnaires"
	"anamnese-service/internal/app/services/core/scoring"
	"anamnese-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Scoring engine
	engine := scoring.NewEngine()

	// Questionnaire
	questionnaireMongoRepository := questionnaires.NewQuestionnaireMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(
		questionnaireMongoRepository,
		redisRepository,
		engine,
		bootstrap.InternalConfig,
	)
	questionnaireController := questionnaires.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase)

	// Battery
	batteryMongoRepository := batteries.NewBatteryMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	scoredEventPublisher, err := batteries.NewScoredEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.ScoredEventQueue,
	)
	if err != nil {
		return err
	}
	batteryUsecase := batteries.NewBatteryUsecase(
		bootstrap.Logger,
		questionnaireUsecase,
		batteryMongoRepository,
		scoredEventPublisher,
		engine,
		bootstrap.InternalConfig,
	)
	batteryController := batteries.NewBatteryController(bootstrap.Logger, batteryUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		questionnaireController,
		batteryController,
	)
	return nil
}
