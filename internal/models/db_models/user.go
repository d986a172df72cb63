package db_models

import "gorm.io/datatypes"

// User roles: "guest" for bootstrapped throwaway accounts, "admin" for seeded
// operators, "user" for everyone registered through /auth/register.
type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Image        string
	Role         string `gorm:"default:user"`
	Preferences  datatypes.JSON

	Notifications []Notification  `gorm:"foreignKey:UserID"`
	Analyses      []PlantAnalysis `gorm:"foreignKey:UserID"`
	Articles      []CodexArticle  `gorm:"foreignKey:AuthorID"`
}
