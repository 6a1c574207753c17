package models

import (
	"time"

	"gorm.io/gorm"
)

// Tour types, matching the published catalogue.
const (
	TourTypeGuaranteed = 1
	TourTypeOnRequest  = 2
	TourTypeProposeOwn = 3
)

// Departure price statuses.
const (
	PriceStatusAvailable = 1
	PriceStatusSoldOut   = 2
	PriceStatusCompleted = 3
)

type Tour struct {
	gorm.Model
	Title       string      `json:"title"`
	CategoryID  *uint       `json:"cat_id"`
	Category    *Category   `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Type        int         `json:"type"`
	Duration    int         `json:"duration"`
	Description string      `json:"description"`
	Included    string      `json:"included"`
	Excluded    string      `json:"excluded"`
	Top         bool        `json:"top"`
	Views       int         `json:"views"`
	Prices      []Price     `json:"prices" gorm:"foreignKey:TourID"`
	Routes      []Route     `json:"routes" gorm:"foreignKey:TourID"`
	Images      []TourImage `json:"images" gorm:"foreignKey:TourID"`
}

// Price is one published departure window for a tour. Windows are allowed to
// overlap.
type Price struct {
	gorm.Model
	TourID   uint       `json:"tour_id"`
	Price    int        `json:"price"`
	Currency string     `json:"currency" gorm:"default:USD"`
	Status   int        `json:"status" gorm:"default:1"`
	Deadline *time.Time `json:"deadline"`
	Start    *time.Time `json:"start"`
	End      *time.Time `json:"end"`
}

// Route is one day of a tour's itinerary.
type Route struct {
	gorm.Model
	TourID      uint   `json:"tour_id"`
	Day         int    `json:"day"`
	Start       string `json:"start"`
	Finish      string `json:"finish"`
	Description string `json:"description"`
	Hotel       string `json:"hotel"`
	Meals       string `json:"meals"`
}

type TourImage struct {
	gorm.Model
	TourID   uint   `json:"tour_id"`
	Location string `json:"location"`
	Img      string `json:"img"`
}

// Slider is a main-page banner linking to a tour.
type Slider struct {
	gorm.Model
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Img      string `json:"img"`
	TourID   *uint  `json:"tour_id"`
	IsActive bool   `json:"is_active"`
}
