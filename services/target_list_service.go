package services

import (
	"context"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"marketing-tracker/models"
	"marketing-tracker/storage"
)

const DefaultDownloadTTL = 5 * time.Minute

// TargetListService handles TargetList records. File bytes go straight to
// the object store; only the returned key is persisted. The upload is not
// transactional with the database write, so a failed commit can leave an
// orphaned object behind.
type TargetListService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewTargetListService(db *gorm.DB, store storage.ObjectStore) *TargetListService {
	return &TargetListService{db: db, store: store}
}

// UploadInput carries a multipart upload submission. Label falls back to
// the original filename when empty.
type UploadInput struct {
	Label     string
	Filename  string
	SizeBytes int64
	PharmaIDs []uint
	BrandIDs  []uint
}

func (s *TargetListService) List(page, perPage int, q string) ([]models.TargetList, int64, error) {
	query := s.db.Model(&models.TargetList{})
	query = applySearch(query, q, "target_list.label", "target_list.original_filename", "target_list.s3_key")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.TargetList
	err := paginate(query, page, perPage).
		Order("target_list.uploaded_at DESC").
		Preload("Pharmas").
		Preload("Brands").
		Find(&rows).Error
	return rows, total, err
}

func (s *TargetListService) Get(id uint) (*models.TargetList, error) {
	var tl models.TargetList
	err := s.db.Preload("Pharmas").Preload("Brands").First(&tl, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &tl, nil
}

// Upload stores the payload and records the target list with its reference
// key and tags.
func (s *TargetListService) Upload(ctx context.Context, r io.Reader, in UploadInput) (*models.TargetList, error) {
	filename := strings.TrimSpace(in.Filename)
	if filename == "" {
		return nil, validationErr("Please choose a file to upload.")
	}
	label := strings.TrimSpace(in.Label)
	if label == "" {
		label = filename
	}

	key, err := s.store.Upload(ctx, r, filename)
	if err != nil {
		return nil, err
	}

	var created models.TargetList
	err = s.db.Transaction(func(tx *gorm.DB) error {
		created = models.TargetList{
			Label:            label,
			S3Key:            key,
			OriginalFilename: filename,
			SizeBytes:        in.SizeBytes,
			UploadedAt:       time.Now().UTC(),
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		return s.replaceTags(tx, &created, in.PharmaIDs, in.BrandIDs)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update edits the label and replaces the pharma/brand tag sets. The stored
// file is untouched; the reference key never changes after upload.
func (s *TargetListService) Update(id uint, label string, pharmaIDs, brandIDs []uint) (*models.TargetList, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, validationErr("Label is required.")
	}

	var updated models.TargetList
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, id).Error; err != nil {
			return notFound(err)
		}
		updated.Label = label
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}
		return s.replaceTags(tx, &updated, pharmaIDs, brandIDs)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DownloadURL produces a time-limited signed URL for the stored file.
func (s *TargetListService) DownloadURL(ctx context.Context, id uint, ttl time.Duration) (string, error) {
	tl, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, tl.S3Key, ttl)
}

func (s *TargetListService) replaceTags(tx *gorm.DB, tl *models.TargetList, pharmaIDs, brandIDs []uint) error {
	var pharmas []models.Pharma
	if len(pharmaIDs) > 0 {
		if err := tx.Where("id IN ?", pharmaIDs).Find(&pharmas).Error; err != nil {
			return err
		}
	}
	assoc := tx.Model(tl).Association("Pharmas")
	if len(pharmas) == 0 {
		if err := assoc.Clear(); err != nil {
			return err
		}
	} else if err := assoc.Replace(&pharmas); err != nil {
		return err
	}
	tl.Pharmas = pharmas

	var brands []models.Brand
	if len(brandIDs) > 0 {
		if err := tx.Where("id IN ?", brandIDs).Find(&brands).Error; err != nil {
			return err
		}
	}
	assoc = tx.Model(tl).Association("Brands")
	if len(brands) == 0 {
		if err := assoc.Clear(); err != nil {
			return err
		}
	} else if err := assoc.Replace(&brands); err != nil {
		return err
	}
	tl.Brands = brands
	return nil
}
