package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterDeps holds everything the HTTP layer needs.
type RouterDeps struct {
	JWTSecret      string
	AllowedOrigins []string
	WorkoutService service.WorkoutService
	StatsService   service.StatsService
	TrainerService service.TrainerService
	Gatherer       prometheus.Gatherer // nil disables /metrics
	Logger         *zap.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger), cors.New(corsConfig(deps.AllowedOrigins)))

	SetupRoutes(router, deps)
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", RequestIDHeader)
	cfg.ExposeHeaders = []string{RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func SetupRoutes(router *gin.Engine, deps RouterDeps) {
	workoutHandler := NewWorkoutHandler(deps.WorkoutService, deps.StatsService)
	trainerHandler := NewTrainerHandler(deps.TrainerService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	protected := router.Group("/api/v1")
	protected.Use(AuthMiddleware(deps.JWTSecret))
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Client Routes ---
		clientGroup := protected.Group("/client")
		clientGroup.Use(RoleMiddleware(domain.RoleClient))
		{
			clientGroup.GET("/workout", workoutHandler.GetWorkoutForDate)
			clientGroup.GET("/logs", workoutHandler.GetLogs)

			exerciseGroup := clientGroup.Group("/plan-exercises/:planExerciseId")
			{
				exerciseGroup.POST("/sets", workoutHandler.CompleteSet)
				exerciseGroup.DELETE("/sets/:setNumber", workoutHandler.UncheckSet)
				exerciseGroup.POST("/complete-remaining", workoutHandler.CompleteRemainingSets)
				exerciseGroup.PUT("/notes", workoutHandler.SaveNotes)
				exerciseGroup.GET("/logs", workoutHandler.GetExerciseLogs)
			}

			clientGroup.GET("/stats/weekly", workoutHandler.GetWeeklyStats)
			clientGroup.GET("/stats/streak", workoutHandler.GetStreak)
		}

		// --- Trainer Routes ---
		trainerGroup := protected.Group("/trainer")
		trainerGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			trainerGroup.POST("/exercises", trainerHandler.CreateExercise)

			trainerGroup.POST("/plans", trainerHandler.CreateTrainingPlan)
			trainerGroup.POST("/plans/:planId/exercises", trainerHandler.AddPlanExercise)
			trainerGroup.GET("/plans/:planId/exercises", trainerHandler.ListPlanExercises)

			trainerGroup.POST("/clients/:clientId/plans", trainerHandler.AssignPlan)
		}
	}
}
