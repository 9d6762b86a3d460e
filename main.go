// @title           JPEP HTTP Service API
// @version         1.0
// @description     Jamaica Political Engagement Platform: representative and constituency profiles, citizen messaging, voting records and petition tracking

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"jpep-http-service/config"
	"jpep-http-service/internal/database"
	"jpep-http-service/models"
	"jpep-http-service/routes"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	db := pool.DB

	if cfg.DBMigrationMode == "drop" {
		config.Warning("running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("failed to drop and recreate tables: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("auto migration failed: %v", err)
		}
	}

	ensureAdminExists(db, cfg)

	r := routes.SetupRouter(db, cfg)

	config.Info("server listening on http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate adds new columns and tables, never dropping anything
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Constituency{},
		&models.Representative{},
		&models.SocialMedia{},
		&models.Committee{},
		&models.CommitteeMember{},
		&models.Bill{},
		&models.VotingRecord{},
		&models.Project{},
		&models.ProjectUpdate{},
		&models.PerformanceMetric{},
		&models.ParliamentaryActivity{},
		&models.Statement{},
		&models.Message{},
		&models.Petition{},
		&models.PetitionSignature{},
	)
}

// dropAndRecreateTables drops everything and migrates from scratch
func dropAndRecreateTables(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&models.PetitionSignature{},
		&models.Petition{},
		&models.Message{},
		&models.Statement{},
		&models.ParliamentaryActivity{},
		&models.PerformanceMetric{},
		&models.ProjectUpdate{},
		&models.Project{},
		&models.VotingRecord{},
		&models.Bill{},
		&models.CommitteeMember{},
		&models.Committee{},
		&models.SocialMedia{},
		&models.Representative{},
		&models.Constituency{},
		&models.User{},
	)
	if err != nil {
		return err
	}
	return autoMigrate(db)
}

// ensureAdminExists seeds the bootstrap admin account on first boot
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		config.Error("failed to check for admin account: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := models.User{
		Name:     "System Administrator",
		Email:    cfg.DefaultAdminEmail,
		Password: cfg.DefaultAdminPassword,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		config.Error("failed to create default admin: %v", err)
		return
	}
	config.Info("created default admin account %s", admin.Email)
}
