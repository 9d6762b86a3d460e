package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&User{},
		&Constituency{},
		&Representative{},
		&Project{},
	))
	return db
}

func TestConstituencyDemographicsValidation(t *testing.T) {
	db := setupTestDB(t)

	// Fractions within a category must sum to 1.0
	bad := Constituency{
		Name:         "Kingston Central",
		Parish:       "Kingston",
		Demographics: `{"gender":{"male":0.7,"female":0.6}}`,
	}
	err := db.Create(&bad).Error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sums to")

	good := Constituency{
		Name:         "Kingston Central",
		Parish:       "Kingston",
		Demographics: `{"gender":{"male":0.48,"female":0.52},"age":{"under30":0.4,"over30":0.6}}`,
	}
	require.NoError(t, db.Create(&good).Error)

	decoded, err := good.DecodeDemographics()
	require.NoError(t, err)
	assert.Equal(t, 0.52, decoded["gender"]["female"])

	// Malformed JSON is rejected before it reaches the database
	malformed := Constituency{
		Name:         "St. Andrew Western",
		Parish:       "St. Andrew",
		Demographics: `{"gender":`,
	}
	assert.Error(t, db.Create(&malformed).Error)

	// No demographics at all is fine
	empty := Constituency{Name: "Clarendon Northern", Parish: "Clarendon"}
	require.NoError(t, db.Create(&empty).Error)
}

func TestProjectBudgetValidation(t *testing.T) {
	db := setupTestDB(t)

	constituency := Constituency{Name: "Kingston Central", Parish: "Kingston"}
	require.NoError(t, db.Create(&constituency).Error)

	negative := Project{
		Title:          "Road Rehabilitation",
		Status:         ProjectProposed,
		Budget:         -5,
		ConstituencyID: constituency.ID,
	}
	err := db.Create(&negative).Error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")

	free := Project{
		Title:          "Community Cleanup",
		Status:         ProjectProposed,
		Budget:         0,
		ConstituencyID: constituency.ID,
	}
	require.NoError(t, db.Create(&free).Error)
}

func TestOneRepresentativePerConstituency(t *testing.T) {
	db := setupTestDB(t)

	constituency := Constituency{Name: "Kingston Central", Parish: "Kingston"}
	require.NoError(t, db.Create(&constituency).Error)

	first := User{Name: "Andre Bailey", Email: "abailey@example.com", Password: "secret123", Role: RoleRepresentative}
	require.NoError(t, db.Create(&first).Error)
	second := User{Name: "Carla Morgan", Email: "cmorgan@example.com", Password: "secret123", Role: RoleRepresentative}
	require.NoError(t, db.Create(&second).Error)

	require.NoError(t, db.Create(&Representative{
		UserID:         first.ID,
		ConstituencyID: constituency.ID,
		Title:          "Member of Parliament",
		Party:          "JLP",
	}).Error)

	// The seat is taken
	err := db.Create(&Representative{
		UserID:         second.ID,
		ConstituencyID: constituency.ID,
		Title:          "Member of Parliament",
		Party:          "PNP",
	}).Error
	assert.Error(t, err)

	// And one person cannot hold two seats
	other := Constituency{Name: "Kingston Eastern", Parish: "Kingston"}
	require.NoError(t, db.Create(&other).Error)
	err = db.Create(&Representative{
		UserID:         first.ID,
		ConstituencyID: other.ID,
		Title:          "Member of Parliament",
		Party:          "JLP",
	}).Error
	assert.Error(t, err)
}
