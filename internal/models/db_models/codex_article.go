package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CodexArticle struct {
	BaseModel
	Title       string `gorm:"not null"`
	Slug        string `gorm:"unique;not null"`
	Content     string `gorm:"type:text"`
	Excerpt     string
	CoverImage  string
	CategoryID  uuid.UUID      `gorm:"type:uuid;index"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;index"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	IsPublished bool           `gorm:"default:false;index"`

	Category CodexCategory `gorm:"foreignKey:CategoryID"`
	Author   User          `gorm:"foreignKey:AuthorID"`
}
