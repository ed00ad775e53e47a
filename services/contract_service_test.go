package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-tracker/models"
	"marketing-tracker/services"
)

func TestContractCreateWithNewPharmaAndBrandNames(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewContractService(db)

	contract, err := svc.Create(services.ContractInput{
		Name:       "Acme Q3",
		PharmaName: "Acme",
		BrandsCSV:  "Xolair, Yondelis",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Q3", contract.Name)
	assert.Equal(t, "Acme", contract.Pharma.Name)
	require.Len(t, contract.Brands, 2)

	var brandCount int64
	require.NoError(t, db.Model(&models.Brand{}).Where("pharma_id = ?", contract.PharmaID).Count(&brandCount).Error)
	assert.Equal(t, int64(2), brandCount)
}

func TestContractCreateReusesPharmaByName(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewContractService(db)

	first, err := svc.Create(services.ContractInput{Name: "C1", PharmaName: "Acme"})
	require.NoError(t, err)
	second, err := svc.Create(services.ContractInput{Name: "C2", PharmaName: "Acme"})
	require.NoError(t, err)

	assert.Equal(t, first.PharmaID, second.PharmaID)

	var pharmaCount int64
	require.NoError(t, db.Model(&models.Pharma{}).Count(&pharmaCount).Error)
	assert.Equal(t, int64(1), pharmaCount)
}

func TestContractCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewContractService(db)

	_, err := svc.Create(services.ContractInput{PharmaName: "Acme"})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.Create(services.ContractInput{Name: "C1"})
	require.ErrorAs(t, err, &verr)

	_, err = svc.Create(services.ContractInput{Name: "C1", PharmaID: 999})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestContractCreateIgnoresForeignBrands(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewContractService(db)

	acme := seedPharma(t, db, "Acme")
	other := seedPharma(t, db, "Other")
	owned := seedBrand(t, db, acme.ID, "Owned")
	foreign := seedBrand(t, db, other.ID, "Foreign")

	contract, err := svc.Create(services.ContractInput{
		Name:     "C1",
		PharmaID: acme.ID,
		BrandIDs: []uint{owned.ID, foreign.ID},
	})
	require.NoError(t, err)
	require.Len(t, contract.Brands, 1)
	assert.Equal(t, owned.ID, contract.Brands[0].ID)
}

func TestContractUpdateReplacesBrandSet(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewContractService(db)

	acme := seedPharma(t, db, "Acme")
	b1 := seedBrand(t, db, acme.ID, "B1")
	b2 := seedBrand(t, db, acme.ID, "B2")
	b3 := seedBrand(t, db, acme.ID, "B3")
	contract := seedContract(t, db, "C1", acme.ID, b1, b2)

	updated, err := svc.Update(contract.ID, services.ContractInput{
		Name:     "C1",
		PharmaID: acme.ID,
		BrandIDs: []uint{b3.ID},
	})
	require.NoError(t, err)
	require.Len(t, updated.Brands, 1)
	assert.Equal(t, b3.ID, updated.Brands[0].ID)

	count := db.Model(&models.Contract{ID: contract.ID}).Association("Brands").Count()
	assert.Equal(t, int64(1), count)

	cleared, err := svc.Update(contract.ID, services.ContractInput{
		Name:     "C1",
		PharmaID: acme.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, cleared.Brands)
	assert.Zero(t, db.Model(&models.Contract{ID: contract.ID}).Association("Brands").Count())
}

func TestContractListSearchMatchesPharmaAndBrand(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewContractService(db)

	acme := seedPharma(t, db, "Acme")
	beta := seedPharma(t, db, "Beta Pharma")
	xolair := seedBrand(t, db, acme.ID, "Xolair")
	seedContract(t, db, "Spring Deal", acme.ID, xolair)
	seedContract(t, db, "Winter Deal", beta.ID)

	rows, total, err := svc.List(1, 15, "acme")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Spring Deal", rows[0].Name)

	rows, total, err = svc.List(1, 15, "XOLAIR")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Spring Deal", rows[0].Name)

	_, total, err = svc.List(1, 15, "deal")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestContractListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewContractService(db)

	acme := seedPharma(t, db, "Acme")
	seedContract(t, db, "Old", acme.ID)
	seedContract(t, db, "New", acme.ID)

	rows, total, err := svc.List(1, 15, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "New", rows[0].Name)
	assert.Equal(t, "Old", rows[1].Name)
}

func TestContractDetailGroupsProgramsByCampaign(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewContractService(db)

	acme := seedPharma(t, db, "Acme")
	contract := seedContract(t, db, "C1", acme.ID)
	spring := seedCampaign(t, db, "Spring", contract.ID)
	fall := seedCampaign(t, db, "Fall", contract.ID)
	require.NoError(t, db.Create(&models.Program{Name: "P1", CampaignID: spring.ID}).Error)
	require.NoError(t, db.Create(&models.Program{Name: "P2", CampaignID: spring.ID}).Error)
	require.NoError(t, db.Create(&models.Program{Name: "P3", CampaignID: fall.ID}).Error)

	detail, err := svc.Detail(contract.ID)
	require.NoError(t, err)
	require.Len(t, detail.Campaigns, 2)
	assert.Equal(t, "Fall", detail.Campaigns[0].Name)
	assert.Len(t, detail.ProgramsByCampaign[spring.ID], 2)
	assert.Len(t, detail.ProgramsByCampaign[fall.ID], 1)
	assert.Len(t, detail.AllPrograms, 3)

	_, err = svc.Detail(999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBrandsForPharma(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewContractService(db)

	acme := seedPharma(t, db, "Acme")
	seedBrand(t, db, acme.ID, "Zeta")
	seedBrand(t, db, acme.ID, "Alpha")

	brands, err := svc.BrandsForPharma(acme.ID)
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "Alpha", brands[0].Name)
	assert.Equal(t, "Zeta", brands[1].Name)

	_, err = svc.BrandsForPharma(999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
