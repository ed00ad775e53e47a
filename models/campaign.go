package models

// Campaign groups Programs under a Contract.
type Campaign struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;size:200;not null" json:"name"`
	ContractID  uint      `gorm:"column:contract_id;not null;index" json:"contract_id"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Contract    Contract  `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	Programs    []Program `gorm:"foreignKey:CampaignID" json:"programs,omitempty"`
}

func (Campaign) TableName() string {
	return "campaign"
}
