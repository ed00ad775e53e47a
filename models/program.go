package models

// Program belongs to one Campaign and optionally references a TargetList.
// The target list is expected to come from the eligibility filter, but that
// is enforced by the forms, not the schema.
type Program struct {
	ID           uint        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string      `gorm:"column:name;size:200;not null" json:"name"`
	CampaignID   uint        `gorm:"column:campaign_id;not null;index" json:"campaign_id"`
	TargetListID *uint       `gorm:"column:target_list_id" json:"target_list_id,omitempty"`
	Platform     string      `gorm:"column:platform;size:255" json:"platform,omitempty"`
	AssetID      string      `gorm:"column:asset_id;size:255" json:"asset_id,omitempty"`
	Campaign     Campaign    `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	TargetList   *TargetList `gorm:"foreignKey:TargetListID" json:"target_list,omitempty"`
	Placements   []Placement `gorm:"many2many:program_placement" json:"placements,omitempty"`
}

func (Program) TableName() string {
	return "program"
}
