package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hoangnm/air-platform/config"
	"github.com/hoangnm/air-platform/database"
	_ "github.com/hoangnm/air-platform/docs" // Swagger docs - auto-generated
	adminctrl "github.com/hoangnm/air-platform/internal/controller/admin"
	employeectrl "github.com/hoangnm/air-platform/internal/controller/employee"
	managerctrl "github.com/hoangnm/air-platform/internal/controller/manager"
	"github.com/hoangnm/air-platform/internal/logger"
	"github.com/hoangnm/air-platform/internal/middleware"
	"github.com/hoangnm/air-platform/internal/model"
	"github.com/hoangnm/air-platform/internal/repository"
	"github.com/hoangnm/air-platform/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title AI Readiness Assessment API
// @version 1.0
// @description Multi-tenant employee survey platform with AI-generated follow-up questions and company readiness reports.
// @contact.name API Support
// @contact.email support@air-assessment.com
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewQuestionInstanceRepository,
			repository.NewAnswerRepository,
			repository.NewReportRepository,
			repository.NewPromptLogRepository,
			repository.NewCompanyRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewGeminiLLMService,
			service.NewEmailService,
			service.NewSurveyService,
			service.NewFollowUpService,
			service.NewReportService,
			service.NewCompanyService,
			service.NewCatalogService,
		),

		// API Controllers Layer
		fx.Provide(
			employeectrl.NewSurveyController,
			managerctrl.NewReportController,
			managerctrl.NewCompanyController,
			adminctrl.NewCatalogController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.WithAuth(cfg.Auth.JWTSecret))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	surveyCtrl *employeectrl.SurveyController,
	reportCtrl *managerctrl.ReportController,
	companyCtrl *managerctrl.CompanyController,
	catalogCtrl *adminctrl.CatalogController,
) {
	apiV1 := router.Group("/api/v1")
	{
		// Shared report view is the only unauthenticated route.
		apiV1.GET("/reports/share/:slug", reportCtrl.GetSharedReport)

		authed := apiV1.Group("", middleware.RequireAuth())
		{
			survey := authed.Group("/survey")
			survey.POST("/start", surveyCtrl.StartOrResume)
			survey.POST("/answer", surveyCtrl.SubmitAnswer)
			survey.POST("/follow-up", surveyCtrl.RequestFollowUp)

			authed.POST("/reports", reportCtrl.GenerateReport)

			companies := authed.Group("/companies")
			companies.POST("", companyCtrl.RegisterCompany)
			companies.POST("/join/:invite_code", companyCtrl.JoinCompany)
			companies.GET("/employees", companyCtrl.ListEmployees)
			companies.POST("/employees/remind", companyCtrl.RemindEmployee)
		}

		admin := apiV1.Group("/admin", middleware.RequireAuth())
		admin.POST("/questions", catalogCtrl.SeedCatalog)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("AI Readiness API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Company{},
		&model.User{},
		&model.Module{},
		&model.Question{},
		&model.QuestionInstance{},
		&model.Answer{},
		&model.Report{},
		&model.ReportScore{},
		&model.PromptLog{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
