package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"marketing-tracker/models"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// A single connection keeps the in-memory database alive for the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func seedPharma(t *testing.T, db *gorm.DB, name string) models.Pharma {
	t.Helper()
	pharma := models.Pharma{Name: name}
	require.NoError(t, db.Create(&pharma).Error)
	return pharma
}

func seedBrand(t *testing.T, db *gorm.DB, pharmaID uint, name string) models.Brand {
	t.Helper()
	brand := models.Brand{Name: name, PharmaID: pharmaID}
	require.NoError(t, db.Create(&brand).Error)
	return brand
}

func seedContract(t *testing.T, db *gorm.DB, name string, pharmaID uint, brands ...models.Brand) models.Contract {
	t.Helper()
	contract := models.Contract{Name: name, PharmaID: pharmaID}
	require.NoError(t, db.Create(&contract).Error)
	if len(brands) > 0 {
		require.NoError(t, db.Model(&contract).Association("Brands").Replace(&brands))
	}
	return contract
}

func seedCampaign(t *testing.T, db *gorm.DB, name string, contractID uint) models.Campaign {
	t.Helper()
	campaign := models.Campaign{Name: name, ContractID: contractID}
	require.NoError(t, db.Create(&campaign).Error)
	return campaign
}

func seedTargetList(t *testing.T, db *gorm.DB, label string, pharmas []models.Pharma, brands []models.Brand) models.TargetList {
	t.Helper()
	tl := models.TargetList{
		Label:            label,
		S3Key:            "target-lists/" + label + ".csv",
		OriginalFilename: label + ".csv",
	}
	require.NoError(t, db.Create(&tl).Error)
	if len(pharmas) > 0 {
		require.NoError(t, db.Model(&tl).Association("Pharmas").Replace(&pharmas))
	}
	if len(brands) > 0 {
		require.NoError(t, db.Model(&tl).Association("Brands").Replace(&brands))
	}
	return tl
}
