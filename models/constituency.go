package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

// Constituency represents an electoral district within a parish
type Constituency struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_constituency_parish_name" json:"name"`
	Parish           string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_constituency_parish_name" json:"parish"`
	Boundaries       string    `gorm:"type:text" json:"boundaries"` // GeoJSON polygon
	Population       int       `json:"population"`
	RegisteredVoters int       `json:"registered_voters"`
	Demographics     string    `gorm:"type:text" json:"demographics,omitempty"` // JSON, see Demographics
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Representative *Representative `gorm:"foreignKey:ConstituencyID" json:"representative,omitempty"`
	Projects       []Project       `gorm:"foreignKey:ConstituencyID" json:"projects,omitempty"`
}

// Demographics is the decoded form of Constituency.Demographics. Each
// category maps sub-groups to population fractions that sum to 1.0.
type Demographics map[string]map[string]float64

// ParishSummary pairs a parish name with its constituency count
type ParishSummary struct {
	Name              string `json:"name"`
	ConstituencyCount int    `json:"constituency_count"`
}

// DecodeDemographics parses the stored demographics JSON
func (c *Constituency) DecodeDemographics() (Demographics, error) {
	if c.Demographics == "" {
		return nil, nil
	}
	var d Demographics
	if err := json.Unmarshal([]byte(c.Demographics), &d); err != nil {
		return nil, err
	}
	return d, nil
}

// BeforeSave is a GORM hook that rejects demographic breakdowns whose
// fractions do not sum to 1.0 within each category
func (c *Constituency) BeforeSave(tx *gorm.DB) error {
	d, err := c.DecodeDemographics()
	if err != nil {
		return fmt.Errorf("invalid demographics JSON: %w", err)
	}
	for category, groups := range d {
		var sum float64
		for _, fraction := range groups {
			sum += fraction
		}
		if math.Abs(sum-1.0) > 0.01 {
			return fmt.Errorf("demographics category %q sums to %.3f, want 1.0", category, sum)
		}
	}
	return nil
}
