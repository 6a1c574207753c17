package models

import (
	"gorm.io/gorm"
)

type Region struct {
	gorm.Model
	Name string `json:"name"`
	Img  string `json:"img"`
}

type Category struct {
	gorm.Model
	Name     string  `json:"name"`
	Img      string  `json:"img"`
	RegionID *uint   `json:"region_id"`
	Region   *Region `json:"region,omitempty" gorm:"foreignKey:RegionID"`
}

// CarType is a vehicle class offered for rental and as configurator transport.
type CarType struct {
	gorm.Model
	Name string `json:"name"`
	Img  string `json:"img"`
}
