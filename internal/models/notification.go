package models

import (
	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel

	UserID   uint           `gorm:"not null;index"`
	Type     string         `gorm:"not null"`
	Title    string         `gorm:"not null"`
	Message  string         `gorm:"not null"`
	Read     bool           `gorm:"not null;default:false;index"`
	Metadata datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
