package models

import (
	"time"

	"gorm.io/gorm"
)

// Request-kind records go through a manual triage lifecycle.
const (
	RequestStatusUnserviced = 0
	RequestStatusServiced   = 1
)

// Review-kind records start pending and are moderated by the admin surface.
const (
	ReviewStatusRejected = 0
	ReviewStatusApproved = 1
	ReviewStatusPending  = 2
)

// ContactInfo is the contact field group shared by the request kinds.
type ContactInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Request is a general tour inquiry from the main page. TourName is empty for
// a free-form inquiry, in which case Budget carries a "min-max" range.
type Request struct {
	gorm.Model
	ContactInfo `gorm:"embedded"`
	Message     string `json:"message"`
	Size        int    `json:"size"`
	Budget      string `json:"budget"`
	TourName    string `json:"tour_name"`
	Status      int    `json:"status" gorm:"default:0"`
}

// TourRequest is an inquiry tied to a specific tour and, optionally, to one of
// its published departures.
type TourRequest struct {
	gorm.Model
	ContactInfo `gorm:"embedded"`
	TourID      uint   `json:"tour_id"`
	Tour        Tour   `json:"-" gorm:"foreignKey:TourID"`
	PriceID     *uint  `json:"price_id"`
	Price       *Price `json:"-" gorm:"foreignKey:PriceID"`
	Comment     string `json:"comment"`
	Status      int    `json:"status" gorm:"default:0"`
}

// SiteReview is a review of the site itself.
type SiteReview struct {
	gorm.Model
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Mark      float64 `json:"mark"`
	Text      string  `json:"text"`
	Status    int     `json:"status" gorm:"default:2"`
}

// TourReview is a review left on a tour's detail page.
type TourReview struct {
	gorm.Model
	TourID  uint    `json:"tour_id"`
	Tour    Tour    `json:"-" gorm:"foreignKey:TourID"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Rating  float64 `json:"rating"`
	Visited string  `json:"visited"`
	Comment string  `json:"comment"`
	Status  int     `json:"status" gorm:"default:2"`
}

// CustomTourRequest is a submission from the "build your own tour"
// configurator. GuideNeeded is deliberately a pointer: nil means the form
// never collected the answer, which is distinct from an explicit "no".
type CustomTourRequest struct {
	gorm.Model
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Categories    string    `json:"categories"`
	Accommodation string    `json:"accommodation"`
	Transport     string    `json:"transport"`
	Meal          string    `json:"meal"`
	People        int       `json:"people"`
	Method        string    `json:"method"`
	DateFrom      time.Time `json:"datefrom"`
	DateTo        time.Time `json:"dateto"`
	GuideNeeded   *bool     `json:"gid"`
	Comment       string    `json:"comment"`
	Status        int       `json:"status" gorm:"default:0"`
}

// CarRentalRequest is a vehicle-rental inquiry.
type CarRentalRequest struct {
	gorm.Model
	ContactInfo `gorm:"embedded"`
	CarModel    string `json:"model"`
	DateFrom    string `json:"datefrom"`
	DateTo      string `json:"dateto"`
	Comment     string `json:"comment"`
	Status      int    `json:"status" gorm:"default:0"`
}

// Feedback is a call-back request: just contact details and an optional note.
type Feedback struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Comment string `json:"comment"`
	Status  int    `json:"status" gorm:"default:0"`
}

// Lead is a purchase intent for a specific departure, possibly with
// co-travelers.
type Lead struct {
	gorm.Model
	ContactInfo `gorm:"embedded"`
	TourName    string     `json:"tour_name"`
	Start       string     `json:"p_start"`
	Price       int        `json:"p_price"`
	Currency    string     `json:"p_currency"`
	DateOfBirth string     `json:"dateofborn"`
	Gender      string     `json:"gender"`
	Nationality string     `json:"nationality"`
	Travelers   []Traveler `json:"travelers" gorm:"foreignKey:LeadID"`
	Status      int        `json:"status" gorm:"default:0"`
}

// Traveler is a co-traveler attached to a Lead.
type Traveler struct {
	gorm.Model
	LeadID      uint   `json:"-"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"dateofborn"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}
