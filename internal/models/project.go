package models

type Project struct {
	BaseModel

	UserID      uint    `gorm:"not null;index"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
