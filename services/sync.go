package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"marketing-tracker/models"
)

// findOrCreatePharmaByName reuses an existing Pharma row on an exact name
// match and creates one otherwise. Idempotent across callers.
func findOrCreatePharmaByName(tx *gorm.DB, name string) (*models.Pharma, error) {
	var pharma models.Pharma
	err := tx.Where("name = ?", name).First(&pharma).Error
	if err == nil {
		return &pharma, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	pharma = models.Pharma{Name: name}
	if err := tx.Create(&pharma).Error; err != nil {
		return nil, err
	}
	return &pharma, nil
}

// findOrCreateBrand does the same for a Brand under a given Pharma.
func findOrCreateBrand(tx *gorm.DB, pharmaID uint, name string) (*models.Brand, error) {
	var brand models.Brand
	err := tx.Where("name = ? AND pharma_id = ?", name, pharmaID).First(&brand).Error
	if err == nil {
		return &brand, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	brand = models.Brand{Name: name, PharmaID: pharmaID}
	if err := tx.Create(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

// splitCSV trims a comma-separated list and drops empty entries.
func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
