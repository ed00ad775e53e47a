package models

import "time"

// TargetList references an externally stored audience-list file. Only the
// storage key is persisted, never the bytes. Pharma and Brand tags drive
// the eligibility filter on program forms.
type TargetList struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Label            string    `gorm:"column:label;size:200;not null" json:"label"`
	S3Key            string    `gorm:"column:s3_key;size:300;not null" json:"s3_key"`
	OriginalFilename string    `gorm:"column:original_filename;size:255;not null" json:"original_filename"`
	SizeBytes        int64     `gorm:"column:size_bytes" json:"size_bytes"`
	UploadedAt       time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
	Pharmas          []Pharma  `gorm:"many2many:pharma_target_list" json:"pharmas,omitempty"`
	Brands           []Brand   `gorm:"many2many:brand_target_list" json:"brands,omitempty"`
}

func (TargetList) TableName() string {
	return "target_list"
}
