package models

import (
	"gorm.io/gorm"
)

type ArticleCategory struct {
	gorm.Model
	Name string `json:"name"`
	Lang string `json:"lang" gorm:"default:ru"`
}

type Article struct {
	gorm.Model
	CategoryID *uint            `json:"cat_id"`
	Category   *ArticleCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Title      string           `json:"title"`
	Body       string           `json:"body"`
	Img        string           `json:"img"`
	Lang       string           `json:"lang" gorm:"default:ru"`
}

type Gallery struct {
	gorm.Model
	Title string `json:"title"`
	Img   string `json:"img"`
	Lang  string `json:"lang" gorm:"default:ru"`
}

type FAQ struct {
	gorm.Model
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Lang     string `json:"lang" gorm:"default:ru"`
}
