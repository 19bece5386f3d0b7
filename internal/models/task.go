package models

type Task struct {
	BaseModel

	UserID      uint    `gorm:"not null;index"`
	ProjectID   *uint   `gorm:"index"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	Status      string  `gorm:"not null;default:todo;index"`

	// Relationships
	User    User     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
