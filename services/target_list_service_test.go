package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-tracker/models"
	"marketing-tracker/services"
	"marketing-tracker/storage"
)

// memoryStore is an in-memory ObjectStore for tests.
type memoryStore struct {
	objects map[string][]byte
	fail    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string][]byte)}
}

func (m *memoryStore) Upload(ctx context.Context, r io.Reader, filename string) (string, error) {
	if m.fail != nil {
		return "", m.fail
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	key := "target-lists/test-" + filename
	m.objects[key] = data
	return key, nil
}

func (m *memoryStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	if m.fail != nil {
		return "", m.fail
	}
	return "https://example-bucket.s3.amazonaws.com/" + key + "?X-Amz-Expires=300", nil
}

func TestTargetListUpload(t *testing.T) {
	db := newTestDB(t)
	store := newMemoryStore()
	svc := services.NewTargetListService(db, store)

	acme := seedPharma(t, db, "Acme")
	b1 := seedBrand(t, db, acme.ID, "B1")

	tl, err := svc.Upload(context.Background(), strings.NewReader("npi_id\n123"), services.UploadInput{
		Label:     "Q3 HCP List",
		Filename:  "hcp.csv",
		SizeBytes: 11,
		PharmaIDs: []uint{acme.ID},
		BrandIDs:  []uint{b1.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Q3 HCP List", tl.Label)
	assert.Equal(t, "hcp.csv", tl.OriginalFilename)
	assert.NotEmpty(t, tl.S3Key)
	assert.False(t, tl.UploadedAt.IsZero())
	assert.Len(t, tl.Pharmas, 1)
	assert.Len(t, tl.Brands, 1)

	assert.Equal(t, []byte("npi_id\n123"), store.objects[tl.S3Key])
}

func TestTargetListUploadDefaultsLabelToFilename(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTargetListService(db, newMemoryStore())

	tl, err := svc.Upload(context.Background(), strings.NewReader("x"), services.UploadInput{
		Filename: "hcp.csv",
	})
	require.NoError(t, err)
	assert.Equal(t, "hcp.csv", tl.Label)
}

func TestTargetListUploadRequiresFile(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTargetListService(db, newMemoryStore())

	var verr *services.ValidationError
	_, err := svc.Upload(context.Background(), strings.NewReader(""), services.UploadInput{})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Please choose a file to upload.", verr.Message)
}

func TestTargetListUploadStoreFailureDoesNotPersist(t *testing.T) {
	db := newTestDB(t)
	store := newMemoryStore()
	store.fail = errors.New("s3 upload failed")
	svc := services.NewTargetListService(db, store)

	_, err := svc.Upload(context.Background(), strings.NewReader("x"), services.UploadInput{
		Filename: "hcp.csv",
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.TargetList{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTargetListUpdateReplacesTags(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTargetListService(db, newMemoryStore())

	acme := seedPharma(t, db, "Acme")
	other := seedPharma(t, db, "Other")
	b1 := seedBrand(t, db, acme.ID, "B1")
	tl := seedTargetList(t, db, "List", []models.Pharma{acme}, []models.Brand{b1})

	updated, err := svc.Update(tl.ID, "Renamed", []uint{other.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Label)
	require.Len(t, updated.Pharmas, 1)
	assert.Equal(t, other.ID, updated.Pharmas[0].ID)
	assert.Empty(t, updated.Brands)

	var verr *services.ValidationError
	_, err = svc.Update(tl.ID, "  ", nil, nil)
	require.ErrorAs(t, err, &verr)
}

func TestTargetListDownloadURL(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTargetListService(db, newMemoryStore())

	tl := seedTargetList(t, db, "List", nil, nil)

	url, err := svc.DownloadURL(context.Background(), tl.ID, services.DefaultDownloadTTL)
	require.NoError(t, err)
	assert.Contains(t, url, tl.S3Key)

	_, err = svc.DownloadURL(context.Background(), 999, services.DefaultDownloadTTL)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestTargetListDownloadURLUnconfiguredStore(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTargetListService(db, storage.NewS3Store(nil, "", "target-lists/", ""))

	tl := seedTargetList(t, db, "List", nil, nil)

	_, err := svc.DownloadURL(context.Background(), tl.ID, services.DefaultDownloadTTL)
	assert.ErrorIs(t, err, storage.ErrNotConfigured)
}

func TestTargetListListSearch(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTargetListService(db, newMemoryStore())

	seedTargetList(t, db, "Oncology HCPs", nil, nil)
	seedTargetList(t, db, "Cardio HCPs", nil, nil)

	rows, total, err := svc.List(1, 15, "oncology")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Oncology HCPs", rows[0].Label)
}
