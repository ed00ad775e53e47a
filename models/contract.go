package models

import "time"

// Contract is an agreement scoped to one Pharma and a subset of its Brands.
// The brand set lives in the contract_brand join table and is replaced
// wholesale on every edit.
type Contract struct {
	ID        uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"column:name;size:200;not null" json:"name"`
	PharmaID  uint       `gorm:"column:pharma_id;not null;index" json:"pharma_id"`
	StartDate *time.Time `gorm:"column:start_date;type:date" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"column:end_date;type:date" json:"end_date,omitempty"`
	Pharma    Pharma     `gorm:"foreignKey:PharmaID" json:"pharma,omitempty"`
	Brands    []Brand    `gorm:"many2many:contract_brand" json:"brands,omitempty"`
	Campaigns []Campaign `gorm:"foreignKey:ContractID" json:"campaigns,omitempty"`
}

func (Contract) TableName() string {
	return "contract"
}
