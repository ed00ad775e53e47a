package models

import "time"

// Placement is a booked slot linked to one or more Programs through the
// program_placement join table. It must reference at least one Program at
// creation; the linked set is replaced wholesale on edit.
type Placement struct {
	ID             uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name           string     `gorm:"column:name;size:200;not null" json:"name"`
	Channel        string     `gorm:"column:channel;size:100" json:"channel,omitempty"`
	Status         string     `gorm:"column:status;size:50" json:"status,omitempty"`
	StartDate      *time.Time `gorm:"column:start_date;type:date" json:"start_date,omitempty"`
	EndDate        *time.Time `gorm:"column:end_date;type:date" json:"end_date,omitempty"`
	PlacementCode  string     `gorm:"column:placement_code;size:100" json:"placement_code,omitempty"`
	Format         string     `gorm:"column:format;size:100" json:"format,omitempty"`
	FrequencyCap   *int       `gorm:"column:frequency_cap" json:"frequency_cap,omitempty"`
	AdServer       string     `gorm:"column:ad_server;size:100" json:"ad_server,omitempty"`
	ImpressionGoal *int64     `gorm:"column:impression_goal" json:"impression_goal,omitempty"`
	ClickGoal      *int64     `gorm:"column:click_goal" json:"click_goal,omitempty"`
	Programs       []Program  `gorm:"many2many:program_placement" json:"programs,omitempty"`
}

func (Placement) TableName() string {
	return "placement"
}
