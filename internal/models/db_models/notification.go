package db_models

import "github.com/google/uuid"

type Notification struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	Title   string
	Message string
	Type    string `gorm:"default:info"`
	Link    string
	IsRead  bool `gorm:"default:false;index"`
}
