package models

type User struct {
	BaseModel

	Email        string  `gorm:"uniqueIndex;not null"`
	Name         *string `gorm:"type:varchar(255)"`
	Role         string  `gorm:"not null;default:user"`
	PasswordHash string  `gorm:"not null"`

	// Relationships
	Projects      []Project      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks         []Task         `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
