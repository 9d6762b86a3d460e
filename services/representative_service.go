package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"jpep-http-service/config"
	"jpep-http-service/models"
)

// InterfaceRepresentativeService defines the representative query service
type InterfaceRepresentativeService interface {
	GetAllRepresentatives() ([]models.Representative, error)
	GetRepresentativeByID(id uint) (*models.Representative, error)
	GetRepresentativeByConstituency(constituencyID uint) (*models.Representative, error)
	GetRepresentativesByParty(party string) ([]models.Representative, error)
	SearchRepresentatives(query string) ([]models.Representative, error)
	GetVotingRecords(representativeID uint, limit int) ([]models.VotingRecord, error)
	GetActivity(representativeID uint, limit int) ([]models.ParliamentaryActivity, error)
	GetPerformanceMetrics(representativeID uint) ([]models.PerformanceMetric, error)
	GetStatements(representativeID uint, limit int) ([]models.Statement, error)
	GetCommittees(representativeID uint) ([]models.CommitteeMember, error)
}

// DefaultRecordLimit caps voting record, activity and statement history
// unless the caller asks otherwise
const DefaultRecordLimit = 10

// RepresentativeService serves read-only representative queries
type RepresentativeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRepresentativeService creates a new representative service
func NewRepresentativeService(db *gorm.DB, cfg *config.Config) InterfaceRepresentativeService {
	return &RepresentativeService{
		DB:     db,
		Config: cfg,
	}
}

// listQuery is the base query for representative lists: identity and
// constituency summary preloaded, sorted by user name, case-insensitive
func (s *RepresentativeService) listQuery() *gorm.DB {
	return s.DB.Model(&models.Representative{}).
		Preload("User").
		Preload("Constituency").
		Preload("SocialMedia").
		Joins("JOIN users ON users.id = representatives.user_id").
		Order("LOWER(users.name) ASC")
}

// GetAllRepresentatives returns every representative sorted by display name
func (s *RepresentativeService) GetAllRepresentatives() ([]models.Representative, error) {
	var representatives []models.Representative
	if err := s.listQuery().Find(&representatives).Error; err != nil {
		return nil, err
	}
	return representatives, nil
}

// GetRepresentativeByID returns one representative with committee
// memberships and full performance-metric history
func (s *RepresentativeService) GetRepresentativeByID(id uint) (*models.Representative, error) {
	var representative models.Representative
	err := s.DB.
		Preload("User").
		Preload("Constituency").
		Preload("SocialMedia").
		Preload("CommitteeMembers.Committee").
		Preload("PerformanceMetrics", func(db *gorm.DB) *gorm.DB {
			return db.Order("period DESC")
		}).
		First(&representative, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRepresentativeNotFound
		}
		return nil, err
	}
	return &representative, nil
}

// GetRepresentativeByConstituency returns the at-most-one representative
// for a constituency
func (s *RepresentativeService) GetRepresentativeByConstituency(constituencyID uint) (*models.Representative, error) {
	var representative models.Representative
	err := s.DB.
		Preload("User").
		Preload("Constituency").
		Preload("SocialMedia").
		Where("constituency_id = ?", constituencyID).
		First(&representative).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRepresentativeNotFound
		}
		return nil, err
	}
	return &representative, nil
}

// GetRepresentativesByParty filters by exact party match
func (s *RepresentativeService) GetRepresentativesByParty(party string) ([]models.Representative, error) {
	var representatives []models.Representative
	if err := s.listQuery().Where("representatives.party = ?", party).Find(&representatives).Error; err != nil {
		return nil, err
	}
	return representatives, nil
}

// SearchRepresentatives matches the query case-insensitively against the
// representative's display name or their constituency name
func (s *RepresentativeService) SearchRepresentatives(query string) ([]models.Representative, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var representatives []models.Representative
	err := s.listQuery().
		Joins("JOIN constituencies ON constituencies.id = representatives.constituency_id").
		Where("LOWER(users.name) LIKE ? OR LOWER(constituencies.name) LIKE ?", pattern, pattern).
		Find(&representatives).Error
	if err != nil {
		return nil, err
	}
	return representatives, nil
}

// GetVotingRecords returns the latest votes with bill summaries, newest first
func (s *RepresentativeService) GetVotingRecords(representativeID uint, limit int) ([]models.VotingRecord, error) {
	if limit <= 0 {
		limit = DefaultRecordLimit
	}
	var records []models.VotingRecord
	err := s.DB.
		Preload("Bill").
		Where("representative_id = ?", representativeID).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetActivity returns the latest parliamentary activity, newest first
func (s *RepresentativeService) GetActivity(representativeID uint, limit int) ([]models.ParliamentaryActivity, error) {
	if limit <= 0 {
		limit = DefaultRecordLimit
	}
	var activities []models.ParliamentaryActivity
	err := s.DB.
		Where("representative_id = ?", representativeID).
		Order("date DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// GetPerformanceMetrics returns the full metric history, newest period
// first, metric type ascending within a period. No cap.
func (s *RepresentativeService) GetPerformanceMetrics(representativeID uint) ([]models.PerformanceMetric, error) {
	var metrics []models.PerformanceMetric
	err := s.DB.
		Where("representative_id = ?", representativeID).
		Order("period DESC, metric_type ASC").
		Find(&metrics).Error
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

// GetStatements returns the latest public statements, newest first
func (s *RepresentativeService) GetStatements(representativeID uint, limit int) ([]models.Statement, error) {
	if limit <= 0 {
		limit = DefaultRecordLimit
	}
	var statements []models.Statement
	err := s.DB.
		Where("representative_id = ?", representativeID).
		Order("date DESC").
		Limit(limit).
		Find(&statements).Error
	if err != nil {
		return nil, err
	}
	return statements, nil
}

// GetCommittees returns committee memberships with committee details
func (s *RepresentativeService) GetCommittees(representativeID uint) ([]models.CommitteeMember, error) {
	var members []models.CommitteeMember
	err := s.DB.
		Preload("Committee").
		Where("representative_id = ?", representativeID).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
