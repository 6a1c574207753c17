package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/silkway-travel/tour-booking-api/internal/models"
	"gorm.io/gorm"
)

type TourHandler struct {
	db *gorm.DB
}

func NewTourHandler(db *gorm.DB) *TourHandler {
	return &TourHandler{db: db}
}

type TourListInput struct {
	PageParams
	CategoryID uint `query:"cat_id" doc:"Filter by category"`
	Type       int  `query:"type" doc:"Filter by tour type" minimum:"0" maximum:"3"`
	Top        bool `query:"top" doc:"Only main-page tours"`
}

type TourListOutput struct {
	Body []models.Tour
}

func (h *TourHandler) HandleTourList(ctx context.Context, input *TourListInput) (*TourListOutput, error) {
	offset, limit := input.Limits()

	q := h.db.Model(&models.Tour{}).Preload("Prices").Preload("Category")
	if input.CategoryID != 0 {
		q = q.Where("category_id = ?", input.CategoryID)
	}
	if input.Type != 0 {
		q = q.Where("type = ?", input.Type)
	}
	if input.Top {
		q = q.Where("top = ?", true)
	}

	var tours []models.Tour
	if err := q.Offset(offset).Limit(limit).Find(&tours).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list tours: " + err.Error())
	}

	return &TourListOutput{Body: tours}, nil
}

type TourDetailInput struct {
	ID uint `path:"id" doc:"Tour ID"`
}

type TourDetailOutput struct {
	Body models.Tour
}

// HandleTourDetail returns one tour with its departures, itinerary and
// images, bumping the view counter.
func (h *TourHandler) HandleTourDetail(ctx context.Context, input *TourDetailInput) (*TourDetailOutput, error) {
	var tour models.Tour
	err := h.db.Preload("Prices").Preload("Routes").Preload("Images").Preload("Category").
		First(&tour, input.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Tour not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load tour: " + err.Error())
	}

	if err := h.db.Model(&tour).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to count view: " + err.Error())
	}
	tour.Views++

	return &TourDetailOutput{Body: tour}, nil
}
