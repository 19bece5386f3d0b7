package models

import "time"

// BaseModel is shared by every table. Rows are hard-deleted, so there is no
// DeletedAt column.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
