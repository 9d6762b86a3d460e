package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jpep-http-service/models"
)

func createPetition(t *testing.T, db *gorm.DB, title string, target int, expiresAt time.Time) *models.Petition {
	t.Helper()
	petition := &models.Petition{
		Title:       title,
		Description: "petition description",
		TargetCount: target,
		Status:      models.PetitionActive,
		ExpiresAt:   expiresAt,
	}
	require.NoError(t, db.Create(petition).Error)
	return petition
}

func TestListPetitionsExpiresOverdue(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPetitionService(db, testConfig())

	createPetition(t, db, "Fix the drains", 100, time.Now().Add(30*24*time.Hour))
	overdue := createPetition(t, db, "Old cause", 100, time.Now().Add(-time.Hour))

	all, err := svc.ListPetitions(false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	active, err := svc.ListPetitions(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Fix the drains", active[0].Title)

	got, err := svc.GetPetitionByID(overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PetitionExpired, got.Status)
}

func TestSignPetition(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPetitionService(db, testConfig())

	user := createUser(t, db, "Citizen One", models.RoleCitizen)
	petition := createPetition(t, db, "Fix the drains", 2, time.Now().Add(30*24*time.Hour))

	signed, err := svc.SignPetition(petition.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, signed.SignaturesCount)
	assert.Equal(t, models.PetitionActive, signed.Status)

	// One signature per user
	_, err = svc.SignPetition(petition.ID, user.ID)
	assert.ErrorIs(t, err, ErrAlreadySigned)

	// Reaching the target completes the petition
	other := createUser(t, db, "Citizen Two", models.RoleCitizen)
	signed, err = svc.SignPetition(petition.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, signed.SignaturesCount)
	assert.Equal(t, models.PetitionCompleted, signed.Status)

	// A completed petition takes no further signatures
	third := createUser(t, db, "Citizen Three", models.RoleCitizen)
	_, err = svc.SignPetition(petition.ID, third.ID)
	assert.ErrorIs(t, err, ErrPetitionClosed)
}

func TestSignPetitionExpired(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPetitionService(db, testConfig())

	user := createUser(t, db, "Citizen One", models.RoleCitizen)
	petition := createPetition(t, db, "Old cause", 100, time.Now().Add(-time.Hour))

	_, err := svc.SignPetition(petition.ID, user.ID)
	assert.ErrorIs(t, err, ErrPetitionClosed)
}

func TestSignPetitionNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPetitionService(db, testConfig())

	user := createUser(t, db, "Citizen One", models.RoleCitizen)

	_, err := svc.SignPetition(42, user.ID)
	assert.ErrorIs(t, err, ErrPetitionNotFound)

	_, err = svc.GetPetitionByID(42)
	assert.ErrorIs(t, err, ErrPetitionNotFound)
}
