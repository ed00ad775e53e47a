package services

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"marketing-tracker/models"
)

// ProgramService handles Program records and the target-list eligibility
// filter used by program forms.
type ProgramService struct {
	db *gorm.DB
}

func NewProgramService(db *gorm.DB) *ProgramService {
	return &ProgramService{db: db}
}

// ProgramInput carries a program create/edit submission.
type ProgramInput struct {
	Name         string
	CampaignID   uint
	TargetListID *uint
	Platform     string
	AssetID      string
}

func (s *ProgramService) List(page, perPage int, q string) ([]models.Program, int64, error) {
	query := s.db.Model(&models.Program{})

	q = strings.TrimSpace(q)
	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(program.name) LIKE ?"+
				" OR EXISTS (SELECT 1 FROM campaign WHERE campaign.id = program.campaign_id AND LOWER(campaign.name) LIKE ?)",
			pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Program
	err := paginate(query, page, perPage).
		Order("program.id DESC").
		Preload("Campaign").
		Preload("TargetList").
		Find(&rows).Error
	return rows, total, err
}

func (s *ProgramService) Get(id uint) (*models.Program, error) {
	var program models.Program
	err := s.db.Preload("Campaign").Preload("TargetList").First(&program, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &program, nil
}

func (s *ProgramService) Create(in ProgramInput) (*models.Program, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	program := models.Program{
		Name:         strings.TrimSpace(in.Name),
		CampaignID:   in.CampaignID,
		TargetListID: in.TargetListID,
		Platform:     strings.TrimSpace(in.Platform),
		AssetID:      strings.TrimSpace(in.AssetID),
	}
	if err := s.db.Create(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (s *ProgramService) Update(id uint, in ProgramInput) (*models.Program, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	var program models.Program
	if err := s.db.First(&program, id).Error; err != nil {
		return nil, notFound(err)
	}

	program.Name = strings.TrimSpace(in.Name)
	program.CampaignID = in.CampaignID
	program.TargetListID = in.TargetListID
	program.Platform = strings.TrimSpace(in.Platform)
	program.AssetID = strings.TrimSpace(in.AssetID)
	if err := s.db.Save(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (s *ProgramService) validate(in *ProgramInput) error {
	if strings.TrimSpace(in.Name) == "" || in.CampaignID == 0 {
		return validationErr("Name and Campaign are required.")
	}
	var campaign models.Campaign
	if err := s.db.First(&campaign, in.CampaignID).Error; err != nil {
		return notFound(err)
	}
	if in.TargetListID != nil {
		var tl models.TargetList
		if err := s.db.First(&tl, *in.TargetListID).Error; err != nil {
			return notFound(err)
		}
	}
	return nil
}

// EligibleTargetLists narrows target lists to those tagged with the
// contract's pharma AND any of the contract's brands. Both conditions are
// required; the brand condition matches any of the contract's brands, the
// pharma condition is an exact membership. currentTLID, when set, is
// force-included so an already-selected value stays visible on edit forms;
// an unresolvable currentTLID is silently omitted. Results are sorted
// case-insensitively by label.
func (s *ProgramService) EligibleTargetLists(campaignID, currentTLID uint) ([]models.TargetList, error) {
	var campaign models.Campaign
	if err := s.db.First(&campaign, campaignID).Error; err != nil {
		return nil, notFound(err)
	}
	var contract models.Contract
	if err := s.db.Preload("Brands").First(&contract, campaign.ContractID).Error; err != nil {
		return nil, notFound(err)
	}

	brandIDs := make([]uint, 0, len(contract.Brands))
	for _, b := range contract.Brands {
		brandIDs = append(brandIDs, b.ID)
	}

	var tls []models.TargetList
	if contract.PharmaID != 0 && len(brandIDs) > 0 {
		err := s.db.
			Where("EXISTS (SELECT 1 FROM pharma_target_list"+
				" WHERE pharma_target_list.target_list_id = target_list.id AND pharma_target_list.pharma_id = ?)",
				contract.PharmaID).
			Where("EXISTS (SELECT 1 FROM brand_target_list"+
				" WHERE brand_target_list.target_list_id = target_list.id AND brand_target_list.brand_id IN ?)",
				brandIDs).
			Order("label").
			Find(&tls).Error
		if err != nil {
			return nil, err
		}
	}

	if currentTLID != 0 && !containsTargetList(tls, currentTLID) {
		var current models.TargetList
		err := s.db.First(&current, currentTLID).Error
		if err == nil {
			tls = append(tls, current)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	sort.SliceStable(tls, func(i, j int) bool {
		return strings.ToLower(tls[i].Label) < strings.ToLower(tls[j].Label)
	})
	return tls, nil
}

// AllTargetLists returns every target list unfiltered, label ascending.
func (s *ProgramService) AllTargetLists() ([]models.TargetList, error) {
	var tls []models.TargetList
	err := s.db.Order("label").Find(&tls).Error
	return tls, err
}

// Campaigns lists campaigns for form option lists, name ascending.
func (s *ProgramService) Campaigns() ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := s.db.Order("name").Find(&campaigns).Error
	return campaigns, err
}

func containsTargetList(tls []models.TargetList, id uint) bool {
	for _, tl := range tls {
		if tl.ID == id {
			return true
		}
	}
	return false
}
