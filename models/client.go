package models

import "time"

// Client is an internal account record. It carries no foreign key to
// Pharma; the two are linked only by matching name strings.
type Client struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:200;not null" json:"name"`
	Notes     string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Client) TableName() string {
	return "client"
}
