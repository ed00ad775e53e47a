package services

import (
	"strings"

	"gorm.io/gorm"

	"marketing-tracker/models"
)

// CampaignService handles Campaign records under a Contract.
type CampaignService struct {
	db *gorm.DB
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{db: db}
}

func (s *CampaignService) List(page, perPage int, q string) ([]models.Campaign, int64, error) {
	query := s.db.Model(&models.Campaign{})

	q = strings.TrimSpace(q)
	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(campaign.name) LIKE ?"+
				" OR EXISTS (SELECT 1 FROM contract WHERE contract.id = campaign.contract_id AND LOWER(contract.name) LIKE ?)",
			pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Campaign
	err := paginate(query, page, perPage).
		Order("campaign.id DESC").
		Preload("Contract").
		Find(&rows).Error
	return rows, total, err
}

func (s *CampaignService) Get(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.db.Preload("Contract").First(&campaign, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &campaign, nil
}

func (s *CampaignService) Create(name string, contractID uint, description string) (*models.Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" || contractID == 0 {
		return nil, validationErr("Name and Contract are required.")
	}

	var contract models.Contract
	if err := s.db.First(&contract, contractID).Error; err != nil {
		return nil, notFound(err)
	}

	campaign := models.Campaign{
		Name:        name,
		ContractID:  contract.ID,
		Description: strings.TrimSpace(description),
	}
	if err := s.db.Create(&campaign).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignService) Update(id uint, name string, contractID uint, description string) (*models.Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" || contractID == 0 {
		return nil, validationErr("Name and Contract are required.")
	}

	var campaign models.Campaign
	if err := s.db.First(&campaign, id).Error; err != nil {
		return nil, notFound(err)
	}
	var contract models.Contract
	if err := s.db.First(&contract, contractID).Error; err != nil {
		return nil, notFound(err)
	}

	campaign.Name = name
	campaign.ContractID = contract.ID
	campaign.Description = strings.TrimSpace(description)
	if err := s.db.Save(&campaign).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Contracts lists contracts for form option lists, name ascending.
func (s *CampaignService) Contracts() ([]models.Contract, error) {
	var contracts []models.Contract
	err := s.db.Order("name").Find(&contracts).Error
	return contracts, err
}
