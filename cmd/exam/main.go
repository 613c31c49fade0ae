package main

import (
	"context"
	"log"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/config"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/database"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/health"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/middleware"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	nsqpkg "github.com/chetanshingare9301/Exam-Management-System/internal/pkg/nsq"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/server"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts/gateway"
	accountHandler "github.com/chetanshingare9301/Exam-Management-System/services/accounts/handler"
	accountHTTP "github.com/chetanshingare9301/Exam-Management-System/services/accounts/handler/http"
	accountRepository "github.com/chetanshingare9301/Exam-Management-System/services/accounts/repository"
	accountUsecase "github.com/chetanshingare9301/Exam-Management-System/services/accounts/usecase"
	examHandler "github.com/chetanshingare9301/Exam-Management-System/services/exams/handler"
	examHTTP "github.com/chetanshingare9301/Exam-Management-System/services/exams/handler/http"
	examRepository "github.com/chetanshingare9301/Exam-Management-System/services/exams/repository"
	examUsecase "github.com/chetanshingare9301/Exam-Management-System/services/exams/usecase"
	noticeHandler "github.com/chetanshingare9301/Exam-Management-System/services/notices/handler"
	noticeHTTP "github.com/chetanshingare9301/Exam-Management-System/services/notices/handler/http"
	noticeRepository "github.com/chetanshingare9301/Exam-Management-System/services/notices/repository"
	noticeUsecase "github.com/chetanshingare9301/Exam-Management-System/services/notices/usecase"
	questionHandler "github.com/chetanshingare9301/Exam-Management-System/services/questions/handler"
	questionHTTP "github.com/chetanshingare9301/Exam-Management-System/services/questions/handler/http"
	questionRepository "github.com/chetanshingare9301/Exam-Management-System/services/questions/repository"
	questionUsecase "github.com/chetanshingare9301/Exam-Management-System/services/questions/usecase"
	scheduleHandler "github.com/chetanshingare9301/Exam-Management-System/services/schedules/handler"
	scheduleHTTP "github.com/chetanshingare9301/Exam-Management-System/services/schedules/handler/http"
	scheduleRepository "github.com/chetanshingare9301/Exam-Management-System/services/schedules/repository"
	scheduleUsecase "github.com/chetanshingare9301/Exam-Management-System/services/schedules/usecase"
	subjectHandler "github.com/chetanshingare9301/Exam-Management-System/services/subjects/handler"
	subjectHTTP "github.com/chetanshingare9301/Exam-Management-System/services/subjects/handler/http"
	subjectRepository "github.com/chetanshingare9301/Exam-Management-System/services/subjects/repository"
	subjectUsecase "github.com/chetanshingare9301/Exam-Management-System/services/subjects/usecase"
	"github.com/labstack/echo/v4"
)

func main() {
	appName := "exam-service"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ".env"))
	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.ErrorField(err))
	}

	if configs.Database.RunMigrations {
		if err := database.RunMigrations(context.Background(), postgresClient.GetDB().DB); err != nil {
			zapLogger.Fatal("Failed to run migrations", logger.ErrorField(err))
		}
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.ErrorField(err))
	}

	checks := []health.Check{
		{Name: "postgres", Pinger: postgresClient},
		{Name: "redis", Pinger: redisClient},
	}

	// Initialize NSQ producer when codes are delivered by the notifier
	var publisher gateway.Publisher
	var producer *nsqpkg.Producer
	if configs.Notification.Mode == models.NotificationModeQueue {
		producer, err = nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.ErrorField(err))
		}
		publisher = producer
		checks = append(checks, health.Check{Name: "nsqd", Pinger: producer})
	}

	// Initialize repositories
	accountRepo := accountRepository.NewAccountRepo(configs, postgresClient.GetDB(), redisClient)
	noticeRepo := noticeRepository.NewNoticeRepo(configs, postgresClient.GetDB())
	subjectRepo := subjectRepository.NewSubjectRepo(configs, postgresClient.GetDB())
	examRepo := examRepository.NewExamRepo(configs, postgresClient.GetDB())
	questionRepo := questionRepository.NewQuestionRepo(configs, postgresClient.GetDB())
	scheduleRepo := scheduleRepository.NewScheduleRepo(configs, postgresClient.GetDB())

	// Initialize gateway
	accountGW := gateway.NewAccountGW(configs.Notification, publisher)

	// Initialize use cases
	accountUC := accountUsecase.NewAccountUC(accountRepo, accountGW, configs)
	noticeUC := noticeUsecase.NewNoticeUC(noticeRepo, configs)
	subjectUC := subjectUsecase.NewSubjectUC(subjectRepo, configs)
	examUC := examUsecase.NewExamUC(examRepo, configs)
	questionUC := questionUsecase.NewQuestionUC(questionRepo, configs)
	scheduleUC := scheduleUsecase.NewScheduleUC(scheduleRepo, configs)

	// Sessions and the role gate
	sessions := session.NewManager(session.NewRedisStore(redisClient, configs.Session.TTL), configs.Session)
	gate := session.NewGate(sessions)

	// Initialize handlers
	accounts := accountHandler.NewHandler(
		accountHTTP.NewAuthHandler(accountUC, sessions),
		accountHTTP.NewProfileHandler(accountUC, sessions),
		accountHTTP.NewStudentHandler(accountUC),
		gate,
		redisClient.GetClient(),
		configs,
	)
	notices := noticeHandler.NewHandler(noticeHTTP.NewNoticeHandler(noticeUC), gate)
	subjects := subjectHandler.NewHandler(subjectHTTP.NewSubjectHandler(subjectUC), gate)
	exams := examHandler.NewHandler(examHTTP.NewExamHandler(examUC), gate)
	questions := questionHandler.NewHandler(questionHTTP.NewQuestionHandler(questionUC), gate)
	schedules := scheduleHandler.NewHandler(scheduleHTTP.NewScheduleHandler(scheduleUC), gate)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = config.DurationOrDefault(configs.Server.ReadTimeout, 15*time.Second)
	e.Server.WriteTimeout = config.DurationOrDefault(configs.Server.WriteTimeout, 15*time.Second)

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.CORS(configs.Server.AllowOrigins))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, checks...)

	// Register service routes
	accounts.RegisterRoutes(e)
	notices.RegisterRoutes(e)
	subjects.RegisterRoutes(e)
	exams.RegisterRoutes(e)
	questions.RegisterRoutes(e)
	schedules.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port, configs.Server.ShutdownTimeout)
	if producer != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
	}
	srv.OnShutdown(func(ctx context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(ctx context.Context) error { return postgresClient.Close() })

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			logger.String("app", appName),
			logger.ErrorField(err),
		)
	}
}
