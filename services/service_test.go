package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jpep-http-service/config"
	"jpep-http-service/models"
)

// setupTestDB opens a fresh in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	require.NoError(t, err)

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:      "test-secret",
		JWTExpiryHours:    1,
		MessageDailyLimit: 20,
	}
}

func createUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s-%d@example.com", role, time.Now().UnixNano()),
		Password: "secret123",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createConstituency(t *testing.T, db *gorm.DB, name, parish string) *models.Constituency {
	t.Helper()
	constituency := models.Constituency{
		Name:       name,
		Parish:     parish,
		Boundaries: `{"type":"Polygon","coordinates":[]}`,
		Population: 45000,
	}
	require.NoError(t, db.Create(&constituency).Error)
	return &constituency
}

func createRepresentative(t *testing.T, db *gorm.DB, name, party string, constituency *models.Constituency) *models.Representative {
	t.Helper()
	user := createUser(t, db, name, models.RoleRepresentative)
	representative := models.Representative{
		UserID:         user.ID,
		ConstituencyID: constituency.ID,
		Title:          "Member of Parliament",
		Party:          party,
		Biography:      name + " has served since 2020.",
	}
	require.NoError(t, db.Create(&representative).Error)
	return &representative
}

func createProject(t *testing.T, db *gorm.DB, constituencyID uint, title string, status models.ProjectStatus, start time.Time) *models.Project {
	t.Helper()
	project := models.Project{
		Title:          title,
		Description:    "test project",
		Status:         status,
		Budget:         1_000_000,
		StartDate:      start,
		ConstituencyID: constituencyID,
	}
	require.NoError(t, db.Create(&project).Error)
	return &project
}

func createMessage(t *testing.T, db *gorm.DB, senderID, recipientID uint, subject string, createdAt time.Time) *models.Message {
	t.Helper()
	message := models.Message{
		Subject:     subject,
		Content:     "hello",
		SenderID:    senderID,
		RecipientID: recipientID,
	}
	require.NoError(t, db.Create(&message).Error)
	// Pin creation time for deterministic ordering
	require.NoError(t, db.Model(&models.Message{}).Where("id = ?", message.ID).
		Update("created_at", createdAt).Error)
	message.CreatedAt = createdAt
	return &message
}
