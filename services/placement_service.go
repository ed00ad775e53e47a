package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"marketing-tracker/models"
)

// PlacementService handles Placement records and their Program links. The
// program set is replaced wholesale on edit; ids that do not resolve are
// silently dropped.
type PlacementService struct {
	db *gorm.DB
}

func NewPlacementService(db *gorm.DB) *PlacementService {
	return &PlacementService{db: db}
}

// PlacementInput carries a placement create/edit submission.
type PlacementInput struct {
	Name           string
	ProgramIDs     []uint
	Channel        string
	Status         string
	StartDate      *time.Time
	EndDate        *time.Time
	PlacementCode  string
	Format         string
	FrequencyCap   *int
	AdServer       string
	ImpressionGoal *int64
	ClickGoal      *int64
}

func (s *PlacementService) List(page, perPage int, q string) ([]models.Placement, int64, error) {
	query := s.db.Model(&models.Placement{})
	query = applySearch(query, q, "placement.name")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Placement
	err := paginate(query, page, perPage).
		Order("placement.id DESC").
		Preload("Programs").
		Find(&rows).Error
	return rows, total, err
}

func (s *PlacementService) Get(id uint) (*models.Placement, error) {
	var placement models.Placement
	if err := s.db.Preload("Programs").First(&placement, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &placement, nil
}

func (s *PlacementService) Create(in PlacementInput) (*models.Placement, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(in.ProgramIDs) == 0 {
		return nil, validationErr("Name and at least one Program are required.")
	}

	var created models.Placement
	err := s.db.Transaction(func(tx *gorm.DB) error {
		created = models.Placement{
			Name:           name,
			Channel:        strings.TrimSpace(in.Channel),
			Status:         strings.TrimSpace(in.Status),
			StartDate:      in.StartDate,
			EndDate:        in.EndDate,
			PlacementCode:  strings.TrimSpace(in.PlacementCode),
			Format:         strings.TrimSpace(in.Format),
			FrequencyCap:   in.FrequencyCap,
			AdServer:       strings.TrimSpace(in.AdServer),
			ImpressionGoal: in.ImpressionGoal,
			ClickGoal:      in.ClickGoal,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		var chosen []models.Program
		if err := tx.Where("id IN ?", in.ProgramIDs).Find(&chosen).Error; err != nil {
			return err
		}
		if len(chosen) > 0 {
			if err := tx.Model(&created).Association("Programs").Replace(&chosen); err != nil {
				return err
			}
		}
		created.Programs = chosen
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PlacementService) Update(id uint, in PlacementInput) (*models.Placement, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationErr("Name is required.")
	}

	var updated models.Placement
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, id).Error; err != nil {
			return notFound(err)
		}

		updated.Name = name
		updated.Channel = strings.TrimSpace(in.Channel)
		updated.Status = strings.TrimSpace(in.Status)
		updated.StartDate = in.StartDate
		updated.EndDate = in.EndDate
		updated.PlacementCode = strings.TrimSpace(in.PlacementCode)
		updated.Format = strings.TrimSpace(in.Format)
		updated.FrequencyCap = in.FrequencyCap
		updated.AdServer = strings.TrimSpace(in.AdServer)
		updated.ImpressionGoal = in.ImpressionGoal
		updated.ClickGoal = in.ClickGoal
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}

		var chosen []models.Program
		if len(in.ProgramIDs) > 0 {
			if err := tx.Where("id IN ?", in.ProgramIDs).Find(&chosen).Error; err != nil {
				return err
			}
		}
		assoc := tx.Model(&updated).Association("Programs")
		if len(chosen) == 0 {
			if err := assoc.Clear(); err != nil {
				return err
			}
		} else if err := assoc.Replace(&chosen); err != nil {
			return err
		}
		updated.Programs = chosen
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Programs lists programs for form option lists, name ascending.
func (s *PlacementService) Programs() ([]models.Program, error) {
	var programs []models.Program
	err := s.db.Order("name").Find(&programs).Error
	return programs, err
}
