package container

import (
	"sync"

	"gorm.io/gorm"

	"jpep-http-service/config"
	"jpep-http-service/services"
)

// ServiceContainer wires every service to its dependencies
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	userService           services.InterfaceUserService
	representativeService services.InterfaceRepresentativeService
	constituencyService   services.InterfaceConstituencyService
	messageService        services.InterfaceMessageService
	petitionService       services.InterfacePetitionService

	mu sync.RWMutex
}

// NewServiceContainer creates the container and initializes all services.
// redisService may be nil; rate limiting then degrades to a no-op.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisService services.InterfaceRedisService) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	c := &ServiceContainer{
		db:           db,
		config:       cfg,
		redisService: redisService,
	}
	c.initializeServices()
	return c
}

// initializeServices constructs every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)

	c.userService = services.NewUserService(c.db, c.config)
	c.representativeService = services.NewRepresentativeService(c.db, c.config)
	c.constituencyService = services.NewConstituencyService(c.db, c.config)
	c.messageService = services.NewMessageService(c.db, c.config)
	c.petitionService = services.NewPetitionService(c.db, c.config)
}

// GetService returns the service registered under name, or nil
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "user":
		return c.userService
	case "representative":
		return c.representativeService
	case "constituency":
		return c.constituencyService
	case "message":
		return c.messageService
	case "petition":
		return c.petitionService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
