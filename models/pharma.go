package models

// Pharma is a pharmaceutical manufacturer, the root of the brand hierarchy.
// Its name doubles as the informal link to Client records.
type Pharma struct {
	ID     uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name   string  `gorm:"column:name;size:120;uniqueIndex;not null" json:"name"`
	Brands []Brand `gorm:"foreignKey:PharmaID" json:"brands,omitempty"`
}

func (Pharma) TableName() string {
	return "pharma"
}
