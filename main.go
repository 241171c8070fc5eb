package main

import (
	"log"
	"net/http"
	"os"
	"prep-service/internal/db"
	"prep-service/internal/event"
	"prep-service/internal/handlers"
	"prep-service/internal/repository"
	"prep-service/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, analytics events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	mongoClient := db.Client
	database := mongoClient.Database("prep_service")

	userRepo := repository.NewUserRepository(database)
	testRepo := repository.NewTestRepository(database)
	partRepo := repository.NewPartRepository(database)
	groupRepo := repository.NewGroupRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	tagRepo := repository.NewTagRepository(database)
	submissionRepo := repository.NewSubmissionRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	conversationRepo := repository.NewConversationRepository(database)

	// Tags and parts (mini-test picker surface)
	tagService := service.NewTagService(tagRepo)
	tagHandler := handlers.NewTagHandler(tagService)
	partService := service.NewPartService(partRepo)
	partHandler := handlers.NewPartHandler(partService)

	// Learner analytics
	analyticsService := service.NewAnalyticsService(
		userRepo,
		submissionRepo,
		answerRepo,
		questionRepo,
		groupRepo,
		partRepo,
		tagRepo,
		testRepo,
	)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Admin KPI dashboard
	dashboardService := service.NewDashboardService(userRepo, submissionRepo, conversationRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Adaptive mini tests
	miniTestService := service.NewMiniTestService(partRepo, tagRepo, questionRepo, groupRepo)
	miniTestHandler := handlers.NewMiniTestHandler(miniTestService)

	// Public routes - tags and parts
	publicTag := r.Group("/public/prep/tag")
	{
		publicTag.GET("/", func(c *gin.Context) {
			tagHandler.GetAllTags(c)
			if publisher != nil {
				publisher.Publish("tag.list", nil)
			}
		})
		publicTag.GET("/:id", func(c *gin.Context) {
			tagHandler.GetTagByID(c)
			if publisher != nil {
				publisher.Publish("tag.get", gin.H{"id": c.Param("id")})
			}
		})
	}

	publicPart := r.Group("/public/prep/part")
	{
		publicPart.GET("/", func(c *gin.Context) {
			partHandler.GetAllParts(c)
			if publisher != nil {
				publisher.Publish("part.list", nil)
			}
		})
	}

	// Public routes - learner analytics
	publicAnalytics := r.Group("/public/prep/analytics")
	{
		publicAnalytics.GET("/:userId", func(c *gin.Context) {
			analyticsHandler.GetUserAnalytics(c)
			if publisher != nil {
				publisher.Publish("analytics.viewed", gin.H{
					"user_id": c.Param("userId"),
					"days":    c.Query("days"),
				})
			}
		})
		publicAnalytics.GET("/:userId/full-tests", func(c *gin.Context) {
			analyticsHandler.GetFullTestSummary(c)
			if publisher != nil {
				publisher.Publish("analytics.full_test_summary", gin.H{
					"user_id": c.Param("userId"),
					"size":    c.Query("size"),
				})
			}
		})
	}

	setupProtectedRoutes(r, dashboardHandler, miniTestHandler, publisher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "6868"
	}
	r.Run(":" + port)
}

func setupProtectedRoutes(
	r *gin.Engine,
	dashboardHandler *handlers.DashboardHandler,
	miniTestHandler *handlers.MiniTestHandler,
	publisher *event.EventPublisher,
) {
	protected := r.Group("/protected/prep")

	// Authentication middleware (user identity set by the gateway)
	protected.Use(func(c *gin.Context) {
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
	})

	// Admin KPI dashboard
	protected.GET("/admin/analytics", func(c *gin.Context) {
		dashboardHandler.GetAdminAnalytics(c)
		if publisher != nil {
			publisher.Publish("admin.analytics.viewed", gin.H{
				"user_id": c.GetHeader("X-User-ID"),
				"from":    c.Query("from"),
				"to":      c.Query("to"),
			})
		}
	})

	// Adaptive mini test
	protected.POST("/mini-test", func(c *gin.Context) {
		miniTestHandler.CreateMiniTest(c)
		if publisher != nil {
			publisher.Publish("minitest.generated", gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		}
	})
}
