package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"marketing-tracker/models"
)

// ClientService handles Client records. Clients carry no foreign key to
// Pharma; saving a client syncs a same-named Pharma row (and any default
// brands) so the rest of the system can pick them up by name.
type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func (s *ClientService) List(page, perPage int, q string) ([]models.Client, int64, error) {
	query := s.db.Model(&models.Client{})
	query = applySearch(query, q, "client.name", "client.notes")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Client
	err := paginate(query, page, perPage).
		Order("client.created_at DESC").
		Find(&rows).Error
	return rows, total, err
}

func (s *ClientService) Get(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &client, nil
}

func (s *ClientService) Create(name, notes, defaultBrandsCSV string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErr("Name is required")
	}

	var created models.Client
	err := s.db.Transaction(func(tx *gorm.DB) error {
		created = models.Client{Name: name, Notes: strings.TrimSpace(notes)}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		return syncPharmaAndBrands(tx, name, defaultBrandsCSV)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ClientService) Update(id uint, name, notes, defaultBrandsCSV string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErr("Name is required")
	}

	var updated models.Client
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, id).Error; err != nil {
			return notFound(err)
		}
		updated.Name = name
		updated.Notes = strings.TrimSpace(notes)
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}
		return syncPharmaAndBrands(tx, name, defaultBrandsCSV)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MappedPharma resolves the pharma informally linked to a client by name,
// with its brands. Returns nil without error when no pharma matches.
func (s *ClientService) MappedPharma(client *models.Client) (*models.Pharma, error) {
	var pharma models.Pharma
	err := s.db.Preload("Brands").Where("name = ?", client.Name).First(&pharma).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pharma, nil
}

// syncPharmaAndBrands ensures a pharma named after the client exists and
// that each CSV brand name exists under it.
func syncPharmaAndBrands(tx *gorm.DB, name, brandsCSV string) error {
	pharma, err := findOrCreatePharmaByName(tx, name)
	if err != nil {
		return err
	}
	for _, bn := range splitCSV(brandsCSV) {
		if _, err := findOrCreateBrand(tx, pharma.ID, bn); err != nil {
			return err
		}
	}
	return nil
}
