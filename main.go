package main

import (
	"log"
	"net/http"
	"time"

	"quiz-assignment-service/internal/config"
	"quiz-assignment-service/internal/db"
	"quiz-assignment-service/internal/event"
	"quiz-assignment-service/internal/handlers"
	"quiz-assignment-service/internal/repository"
	"quiz-assignment-service/internal/scheduler"
	"quiz-assignment-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, assignment events will not be published")
	}

	if cfg.SystemAssignerID == "" {
		log.Println("SYSTEM_ASSIGNER_ID not set, auto-assignment runs will fail until configured")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserRepository(database)
	quizRepo := repository.NewQuizRepository(database)

	// Keep the interface value nil when no publisher is configured.
	var pub service.EventPublisher
	if publisher != nil {
		pub = publisher
	}

	assignmentService := service.NewAssignmentService(userRepo, quizRepo, pub, cfg.SystemAssignerID)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	quizService := service.NewQuizService(quizRepo)
	quizHandler := handlers.NewQuizHandler(quizService)

	// Public routes - quiz definitions
	publicQuiz := r.Group("/public/quizz/quiz")
	{
		publicQuiz.GET("/", quizHandler.ListQuizzes)
		publicQuiz.GET("/:id", quizHandler.GetQuiz)
	}

	// Public routes - active quiz query
	publicUser := r.Group("/public/quizz/user")
	{
		publicUser.GET("/:id/active", func(c *gin.Context) {
			assignmentHandler.GetActiveQuiz(c)
			if publisher != nil {
				publisher.Publish("quiz.active.requested", gin.H{"id": c.Param("id")})
			}
		})
	}

	// Protected routes - quiz definition management
	protectedQuiz := r.Group("/protected/quizz/quiz")
	protectedQuiz.Use(requireUserID())
	{
		protectedQuiz.POST("/", quizHandler.CreateQuiz)
		protectedQuiz.PUT("/:id", quizHandler.UpdateQuiz)
		protectedQuiz.DELETE("/:id", quizHandler.DeleteQuiz)
	}

	// Protected routes - assignments
	protectedAssignment := r.Group("/protected/quizz/assignment")
	protectedAssignment.Use(requireUserID())
	{
		protectedAssignment.POST("/", assignmentHandler.AssignQuiz)
		protectedAssignment.POST("/run", assignmentHandler.RunAssignments)
	}

	protectedUser := r.Group("/protected/quizz/user")
	protectedUser.Use(requireUserID())
	{
		protectedUser.POST("/:id/complete", assignmentHandler.CompleteQuiz)
		protectedUser.POST("/:id/skip", assignmentHandler.SkipQuiz)
	}

	// Periodic auto-assignment sweep
	batch := scheduler.New(assignmentService, cfg.AssignmentIntervalMinutes)
	batch.Start()
	defer batch.Stop()

	r.Run(":" + cfg.Port)
}

func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
