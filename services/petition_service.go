package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jpep-http-service/config"
	"jpep-http-service/models"
)

// InterfacePetitionService defines the petition tracking service
type InterfacePetitionService interface {
	ListPetitions(activeOnly bool) ([]models.Petition, error)
	GetPetitionByID(id uint) (*models.Petition, error)
	SignPetition(petitionID, userID uint) (*models.Petition, error)
}

// PetitionService tracks petitions and their signatures
type PetitionService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPetitionService creates a new petition service
func NewPetitionService(db *gorm.DB, cfg *config.Config) InterfacePetitionService {
	return &PetitionService{
		DB:     db,
		Config: cfg,
	}
}

// expireOverdue flips ACTIVE petitions past their expiry to EXPIRED.
// Run lazily before reads so status always reflects the clock.
func (s *PetitionService) expireOverdue(tx *gorm.DB) error {
	return tx.Model(&models.Petition{}).
		Where("status = ? AND expires_at < ?", models.PetitionActive, time.Now()).
		Update("status", models.PetitionExpired).Error
}

// ListPetitions returns petitions newest first, optionally ACTIVE only
func (s *PetitionService) ListPetitions(activeOnly bool) ([]models.Petition, error) {
	if err := s.expireOverdue(s.DB); err != nil {
		return nil, err
	}

	query := s.DB.Order("created_at DESC")
	if activeOnly {
		query = query.Where("status = ?", models.PetitionActive)
	}

	var petitions []models.Petition
	if err := query.Find(&petitions).Error; err != nil {
		return nil, err
	}
	return petitions, nil
}

// GetPetitionByID returns one petition
func (s *PetitionService) GetPetitionByID(id uint) (*models.Petition, error) {
	if err := s.expireOverdue(s.DB); err != nil {
		return nil, err
	}

	var petition models.Petition
	if err := s.DB.First(&petition, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetitionNotFound
		}
		return nil, err
	}
	return &petition, nil
}

// SignPetition records one signature per user on an active petition,
// bumping the counter and completing the petition when the target is met
func (s *PetitionService) SignPetition(petitionID, userID uint) (*models.Petition, error) {
	var petition models.Petition
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.expireOverdue(tx); err != nil {
			return err
		}

		if err := tx.First(&petition, petitionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPetitionNotFound
			}
			return err
		}
		if petition.Status != models.PetitionActive {
			return ErrPetitionClosed
		}

		var existing int64
		err := tx.Model(&models.PetitionSignature{}).
			Where("petition_id = ? AND user_id = ?", petitionID, userID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadySigned
		}

		signature := models.PetitionSignature{PetitionID: petitionID, UserID: userID}
		if err := tx.Create(&signature).Error; err != nil {
			return err
		}

		petition.SignaturesCount++
		if petition.SignaturesCount >= petition.TargetCount {
			petition.Status = models.PetitionCompleted
		}
		return tx.Model(&petition).Updates(map[string]interface{}{
			"signatures_count": petition.SignaturesCount,
			"status":           petition.Status,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &petition, nil
}
