package db_models

type CodexCategory struct {
	BaseModel
	Name        string `gorm:"unique;not null"`
	Slug        string `gorm:"unique;not null"`
	Description string
	Icon        string
	Color       string

	Articles []CodexArticle `gorm:"foreignKey:CategoryID"`
}
