package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"jpep-http-service/config"
	"jpep-http-service/controllers"
	_ "jpep-http-service/docs"
	"jpep-http-service/middleware"
	"jpep-http-service/services"
	"jpep-http-service/services/container"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Redis is optional; the rate limiter degrades to a no-op without it
	var redisService services.InterfaceRedisService
	rs := services.NewRedisService(cfg)
	if err := rs.Ping(); err != nil {
		config.Warning("redis unavailable, message rate limiting disabled: %v", err)
	} else {
		redisService = rs
	}

	serviceContainer := container.NewServiceContainer(db, cfg, redisService)
	middleware.InitAuthMiddleware(cfg)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer, redisService, cfg)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	redisService services.InterfaceRedisService,
	cfg *config.Config,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container, redisService, cfg)
}

// registerPublicRoutes registers routes that need no token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api.POST("/auth/login", controllers.HandleAuthFunc(container, "login"))

	api.GET("/representatives", controllers.HandleRepresentativeFunc(container, "getRepresentatives"))
	api.GET("/representatives/:id", controllers.HandleRepresentativeFunc(container, "getRepresentative"))

	api.GET("/constituencies", controllers.HandleConstituencyFunc(container, "getConstituencies"))
	api.GET("/constituencies/:id", controllers.HandleConstituencyFunc(container, "getConstituency"))
	api.GET("/constituencies/:id/projects", controllers.HandleConstituencyFunc(container, "getConstituencyProjects"))
	api.GET("/projects/:id", controllers.HandleConstituencyFunc(container, "getProject"))

	api.GET("/petitions", controllers.HandlePetitionFunc(container, "getPetitions"))
	api.GET("/petitions/:id", controllers.HandlePetitionFunc(container, "getPetition"))
}

// registerAuthenticatedRoutes registers routes behind the JWT middleware
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
	redisService services.InterfaceRedisService,
	cfg *config.Config,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authenticate())

	auth.GET("/users/me", controllers.HandleAuthFunc(container, "getCurrentUser"))

	auth.GET("/messages", controllers.HandleMessageFunc(container, "getMessages"))
	auth.POST("/messages",
		middleware.MessageRateLimiter(redisService, cfg.MessageDailyLimit),
		controllers.HandleMessageFunc(container, "sendMessage"))
	auth.GET("/messages/:id", controllers.HandleMessageFunc(container, "getMessage"))
	auth.POST("/messages/:id/reply", controllers.HandleMessageFunc(container, "replyMessage"))
	auth.DELETE("/messages/:id", controllers.HandleMessageFunc(container, "deleteMessage"))

	auth.POST("/petitions/:id/sign", controllers.HandlePetitionFunc(container, "signPetition"))
}
