package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"marketing-tracker/models"
)

// ContractService handles Contract records and their Brand set. Brand
// assignments are always full replacements; brands not owned by the
// contract's Pharma are silently ignored.
type ContractService struct {
	db *gorm.DB
}

func NewContractService(db *gorm.DB) *ContractService {
	return &ContractService{db: db}
}

// ContractInput carries a create/edit form submission. The Pharma can be
// given by id or, on create, by name (found or created). Brands can be
// given by id or as a CSV of names under the same rule.
type ContractInput struct {
	Name       string
	PharmaID   uint
	PharmaName string
	BrandIDs   []uint
	BrandsCSV  string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ContractDetail aggregates a contract with its campaigns and programs for
// the detail view.
type ContractDetail struct {
	Contract           models.Contract
	Campaigns          []models.Campaign
	ProgramsByCampaign map[uint][]models.Program
	AllPrograms        []models.Program
}

func (s *ContractService) List(page, perPage int, q string) ([]models.Contract, int64, error) {
	query := s.db.Model(&models.Contract{})

	q = strings.TrimSpace(q)
	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(contract.name) LIKE ?"+
				" OR EXISTS (SELECT 1 FROM pharma WHERE pharma.id = contract.pharma_id AND LOWER(pharma.name) LIKE ?)"+
				" OR EXISTS (SELECT 1 FROM contract_brand JOIN brand ON brand.id = contract_brand.brand_id"+
				" WHERE contract_brand.contract_id = contract.id AND LOWER(brand.name) LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Contract
	err := paginate(query, page, perPage).
		Order("contract.id DESC").
		Preload("Pharma").
		Preload("Brands").
		Find(&rows).Error
	return rows, total, err
}

func (s *ContractService) Get(id uint) (*models.Contract, error) {
	var contract models.Contract
	err := s.db.Preload("Pharma").Preload("Brands").First(&contract, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &contract, nil
}

// Detail loads the contract plus its campaigns (name asc) and, per
// campaign, its programs (name asc).
func (s *ContractService) Detail(id uint) (*ContractDetail, error) {
	contract, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	var campaigns []models.Campaign
	if err := s.db.Where("contract_id = ?", contract.ID).Order("name").Find(&campaigns).Error; err != nil {
		return nil, err
	}

	byCampaign := make(map[uint][]models.Program, len(campaigns))
	for _, c := range campaigns {
		var programs []models.Program
		if err := s.db.Where("campaign_id = ?", c.ID).Order("name").Find(&programs).Error; err != nil {
			return nil, err
		}
		byCampaign[c.ID] = programs
	}

	var all []models.Program
	err = s.db.
		Joins("JOIN campaign ON campaign.id = program.campaign_id").
		Where("campaign.contract_id = ?", contract.ID).
		Order("program.name").
		Find(&all).Error
	if err != nil {
		return nil, err
	}

	return &ContractDetail{
		Contract:           *contract,
		Campaigns:          campaigns,
		ProgramsByCampaign: byCampaign,
		AllPrograms:        all,
	}, nil
}

func (s *ContractService) Create(in ContractInput) (*models.Contract, error) {
	name := strings.TrimSpace(in.Name)
	pharmaName := strings.TrimSpace(in.PharmaName)
	if name == "" || (in.PharmaID == 0 && pharmaName == "") {
		return nil, validationErr("Contract name and Pharma are required.")
	}

	var created models.Contract
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pharma *models.Pharma
		if in.PharmaID != 0 {
			pharma = &models.Pharma{}
			if err := tx.First(pharma, in.PharmaID).Error; err != nil {
				return notFound(err)
			}
		} else {
			p, err := findOrCreatePharmaByName(tx, pharmaName)
			if err != nil {
				return err
			}
			pharma = p
		}

		created = models.Contract{
			Name:      name,
			PharmaID:  pharma.ID,
			StartDate: in.StartDate,
			EndDate:   in.EndDate,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		brands, err := s.resolveBrands(tx, pharma.ID, in.BrandIDs, in.BrandsCSV)
		if err != nil {
			return err
		}
		if len(brands) > 0 {
			if err := tx.Model(&created).Association("Brands").Replace(&brands); err != nil {
				return err
			}
		}
		created.Brands = brands
		created.Pharma = *pharma
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the contract's scalar fields and its whole Brand set.
func (s *ContractService) Update(id uint, in ContractInput) (*models.Contract, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.PharmaID == 0 {
		return nil, validationErr("Contract name and Pharma are required.")
	}

	var updated models.Contract
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, id).Error; err != nil {
			return notFound(err)
		}
		var pharma models.Pharma
		if err := tx.First(&pharma, in.PharmaID).Error; err != nil {
			return notFound(err)
		}

		updated.Name = name
		updated.PharmaID = pharma.ID
		updated.StartDate = in.StartDate
		updated.EndDate = in.EndDate
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}

		brands, err := s.resolveBrands(tx, pharma.ID, in.BrandIDs, in.BrandsCSV)
		if err != nil {
			return err
		}
		assoc := tx.Model(&updated).Association("Brands")
		if len(brands) == 0 {
			if err := assoc.Clear(); err != nil {
				return err
			}
		} else if err := assoc.Replace(&brands); err != nil {
			return err
		}
		updated.Brands = brands
		updated.Pharma = pharma
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// resolveBrands keeps only brands owned by the pharma when ids are given,
// and finds-or-creates brands under it when names are given instead.
func (s *ContractService) resolveBrands(tx *gorm.DB, pharmaID uint, brandIDs []uint, brandsCSV string) ([]models.Brand, error) {
	if len(brandIDs) > 0 {
		var brands []models.Brand
		err := tx.Where("id IN ? AND pharma_id = ?", brandIDs, pharmaID).Find(&brands).Error
		return brands, err
	}

	names := splitCSV(brandsCSV)
	brands := make([]models.Brand, 0, len(names))
	for _, bn := range names {
		b, err := findOrCreateBrand(tx, pharmaID, bn)
		if err != nil {
			return nil, err
		}
		brands = append(brands, *b)
	}
	return brands, nil
}

// Pharmas lists all pharmas for form option lists, name ascending.
func (s *ContractService) Pharmas() ([]models.Pharma, error) {
	var pharmas []models.Pharma
	err := s.db.Order("name").Find(&pharmas).Error
	return pharmas, err
}

// BrandsForPharma returns a pharma's brands for the cascading brand picker.
func (s *ContractService) BrandsForPharma(pharmaID uint) ([]models.Brand, error) {
	var pharma models.Pharma
	if err := s.db.First(&pharma, pharmaID).Error; err != nil {
		return nil, notFound(err)
	}
	var brands []models.Brand
	err := s.db.Where("pharma_id = ?", pharma.ID).Order("name").Find(&brands).Error
	return brands, err
}
