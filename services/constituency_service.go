package services

import (
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"jpep-http-service/config"
	"jpep-http-service/models"
)

// RecentProjectCount is how many projects ride along on a constituency detail
const RecentProjectCount = 5

// InterfaceConstituencyService defines the constituency query service
type InterfaceConstituencyService interface {
	GetAllConstituencies() ([]models.Constituency, error)
	GetConstituencyByID(id uint) (*models.Constituency, error)
	ConstituencyExists(id uint) (bool, error)
	GetConstituenciesByParish(parish string) ([]models.Constituency, error)
	SearchConstituencies(query string) ([]models.Constituency, error)
	GetProjects(constituencyID uint) ([]models.Project, error)
	GetProjectByID(id uint) (*models.Project, error)
	GetParishes() ([]models.ParishSummary, error)
	GetStatistics() (*ConstituencyStatistics, error)
}

// PartyRepresentation is one party's share of constituency seats
type PartyRepresentation struct {
	Party      string `json:"party"`
	Count      int64  `json:"count"`
	Percentage int    `json:"percentage"`
}

// ProjectStatusCount is one project status's share of all projects
type ProjectStatusCount struct {
	Status     models.ProjectStatus `json:"status"`
	Count      int64                `json:"count"`
	Percentage int                  `json:"percentage"`
}

// ConstituencyStatistics aggregates representation and project figures
type ConstituencyStatistics struct {
	TotalConstituencies        int64                 `json:"total_constituencies"`
	PartyRepresentation        []PartyRepresentation `json:"party_representation"`
	ConstituenciesWithProjects int64                 `json:"constituencies_with_projects"`
	TotalProjects              int64                 `json:"total_projects"`
	ProjectsByStatus           []ProjectStatusCount  `json:"projects_by_status"`
}

// ConstituencyService serves read-only constituency queries
type ConstituencyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewConstituencyService creates a new constituency service
func NewConstituencyService(db *gorm.DB, cfg *config.Config) InterfaceConstituencyService {
	return &ConstituencyService{
		DB:     db,
		Config: cfg,
	}
}

// listQuery is the base query for constituency lists: representative
// summary preloaded, sorted by constituency name
func (s *ConstituencyService) listQuery() *gorm.DB {
	return s.DB.Model(&models.Constituency{}).
		Preload("Representative.User").
		Order("constituencies.name ASC")
}

// GetAllConstituencies returns every constituency sorted by name
func (s *ConstituencyService) GetAllConstituencies() ([]models.Constituency, error) {
	var constituencies []models.Constituency
	if err := s.listQuery().Find(&constituencies).Error; err != nil {
		return nil, err
	}
	return constituencies, nil
}

// GetConstituencyByID returns one constituency with its representative
// and the most recently started projects inline
func (s *ConstituencyService) GetConstituencyByID(id uint) (*models.Constituency, error) {
	var constituency models.Constituency
	err := s.DB.
		Preload("Representative.User").
		Preload("Projects", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date DESC").Limit(RecentProjectCount)
		}).
		First(&constituency, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConstituencyNotFound
		}
		return nil, err
	}
	return &constituency, nil
}

// ConstituencyExists reports whether a constituency id is present,
// without loading the record or its relations
func (s *ConstituencyService) ConstituencyExists(id uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Constituency{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetConstituenciesByParish filters by exact parish match
func (s *ConstituencyService) GetConstituenciesByParish(parish string) ([]models.Constituency, error) {
	var constituencies []models.Constituency
	if err := s.listQuery().Where("parish = ?", parish).Find(&constituencies).Error; err != nil {
		return nil, err
	}
	return constituencies, nil
}

// SearchConstituencies matches the query case-insensitively against
// constituency name or parish name
func (s *ConstituencyService) SearchConstituencies(query string) ([]models.Constituency, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var constituencies []models.Constituency
	err := s.listQuery().
		Where("LOWER(name) LIKE ? OR LOWER(parish) LIKE ?", pattern, pattern).
		Find(&constituencies).Error
	if err != nil {
		return nil, err
	}
	return constituencies, nil
}

// GetProjects returns the complete project list for a constituency with
// update history, grouped by status and newest start date first
func (s *ConstituencyService) GetProjects(constituencyID uint) ([]models.Project, error) {
	var projects []models.Project
	err := s.DB.
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Where("constituency_id = ?", constituencyID).
		Order("status ASC, start_date DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectByID returns one project with constituency summary and updates
func (s *ConstituencyService) GetProjectByID(id uint) (*models.Project, error) {
	var project models.Project
	err := s.DB.
		Preload("Constituency").
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// GetParishes groups constituencies by parish, alphabetically. Counts are
// computed per call; nothing is cached.
func (s *ConstituencyService) GetParishes() ([]models.ParishSummary, error) {
	var parishes []models.ParishSummary
	err := s.DB.Model(&models.Constituency{}).
		Select("parish AS name, COUNT(*) AS constituency_count").
		Group("parish").
		Order("parish ASC").
		Scan(&parishes).Error
	if err != nil {
		return nil, err
	}
	return parishes, nil
}

// GetStatistics computes seat representation per party and project
// breakdowns by status
func (s *ConstituencyService) GetStatistics() (*ConstituencyStatistics, error) {
	stats := &ConstituencyStatistics{
		PartyRepresentation: []PartyRepresentation{},
		ProjectsByStatus:    []ProjectStatusCount{},
	}

	if err := s.DB.Model(&models.Constituency{}).Count(&stats.TotalConstituencies).Error; err != nil {
		return nil, err
	}

	err := s.DB.Model(&models.Representative{}).
		Select("party, COUNT(*) AS count").
		Group("party").
		Order("party ASC").
		Scan(&stats.PartyRepresentation).Error
	if err != nil {
		return nil, err
	}
	for i := range stats.PartyRepresentation {
		stats.PartyRepresentation[i].Percentage = roundedPercentage(stats.PartyRepresentation[i].Count, stats.TotalConstituencies)
	}

	err = s.DB.Model(&models.Project{}).
		Distinct("constituency_id").
		Count(&stats.ConstituenciesWithProjects).Error
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Project{}).Count(&stats.TotalProjects).Error; err != nil {
		return nil, err
	}

	err = s.DB.Model(&models.Project{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&stats.ProjectsByStatus).Error
	if err != nil {
		return nil, err
	}
	for i := range stats.ProjectsByStatus {
		stats.ProjectsByStatus[i].Percentage = roundedPercentage(stats.ProjectsByStatus[i].Count, stats.TotalProjects)
	}

	return stats, nil
}

// roundedPercentage rounds count/total to the nearest whole percent,
// yielding 0 for an empty total rather than dividing by zero
func roundedPercentage(count, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
