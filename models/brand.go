package models

// Brand is a product line owned by exactly one Pharma.
type Brand struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"column:name;size:120;not null" json:"name"`
	PharmaID uint   `gorm:"column:pharma_id;not null;index" json:"pharma_id"`
	Pharma   Pharma `gorm:"foreignKey:PharmaID" json:"pharma,omitempty"`
}

func (Brand) TableName() string {
	return "brand"
}
