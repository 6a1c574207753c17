package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/silkway-travel/tour-booking-api/internal/models"
	"github.com/silkway-travel/tour-booking-api/internal/notifier"
	"gorm.io/gorm"
)

type TourRequestInput struct {
	ID   uint `path:"id" doc:"Tour ID"`
	Body struct {
		FirstName string `json:"first_name" required:"true"`
		LastName  string `json:"last_name" required:"true"`
		Email     string `json:"email" required:"true" format:"email"`
		Phone     string `json:"phone" required:"true"`
		Comment   string `json:"comment" required:"true"`
		PriceID   *uint  `json:"price_id,omitempty" doc:"Departure the request is about"`
	}
}

type TourRequestOutput struct {
	Body struct {
		ID        uint      `json:"id"`
		TourID    uint      `json:"tour_id"`
		CreatedAt time.Time `json:"created_at"`
	}
}

func (h *IntakeHandler) HandleTourRequest(ctx context.Context, input *TourRequestInput) (*TourRequestOutput, error) {
	var tour models.Tour
	if err := h.db.First(&tour, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Tour not found")
		}
		return nil, huma.Error500InternalServerError("Failed to look up tour: " + err.Error())
	}

	var price *models.Price
	if input.Body.PriceID != nil {
		var p models.Price
		err := h.db.Where("id = ? AND tour_id = ?", *input.Body.PriceID, tour.ID).First(&p).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, huma.Error404NotFound("Departure not found for this tour")
			}
			return nil, huma.Error500InternalServerError("Failed to look up departure: " + err.Error())
		}
		price = &p
	}

	request := models.TourRequest{
		ContactInfo: models.ContactInfo{
			FirstName: input.Body.FirstName,
			LastName:  input.Body.LastName,
			Email:     input.Body.Email,
			Phone:     input.Body.Phone,
		},
		TourID:  tour.ID,
		PriceID: input.Body.PriceID,
		Comment: input.Body.Comment,
		Status:  models.RequestStatusUnserviced,
	}

	if err := h.db.Create(&request).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save tour request: " + err.Error())
	}

	h.dispatch(notifier.FormatTourRequest(request, tour.Title, price))

	res := &TourRequestOutput{}
	res.Body.ID = request.ID
	res.Body.TourID = request.TourID
	res.Body.CreatedAt = request.CreatedAt
	return res, nil
}

type TourReviewInput struct {
	ID   uint `path:"id" doc:"Tour ID"`
	Body struct {
		Name    string  `json:"name" required:"true"`
		Email   string  `json:"email" required:"true" format:"email"`
		Rating  float64 `json:"rating" required:"true" minimum:"0" maximum:"5"`
		Visited string  `json:"visited,omitempty" doc:"Month of the visit"`
		Comment string  `json:"comment,omitempty"`
	}
}

type TourReviewOutput struct {
	Body struct {
		ID        uint      `json:"id"`
		TourID    uint      `json:"tour_id"`
		Name      string    `json:"name"`
		Rating    float64   `json:"rating"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"created_at"`
	}
}

func (h *IntakeHandler) HandleTourReview(ctx context.Context, input *TourReviewInput) (*TourReviewOutput, error) {
	var tour models.Tour
	if err := h.db.First(&tour, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Tour not found")
		}
		return nil, huma.Error500InternalServerError("Failed to look up tour: " + err.Error())
	}

	review := models.TourReview{
		TourID:  tour.ID,
		Name:    input.Body.Name,
		Email:   input.Body.Email,
		Rating:  input.Body.Rating,
		Visited: input.Body.Visited,
		Comment: input.Body.Comment,
		Status:  models.ReviewStatusPending,
	}

	if err := h.db.Create(&review).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save review: " + err.Error())
	}

	h.dispatch(notifier.FormatTourReview(review, tour.Title))

	res := &TourReviewOutput{}
	res.Body.ID = review.ID
	res.Body.TourID = review.TourID
	res.Body.Name = review.Name
	res.Body.Rating = review.Rating
	res.Body.Comment = review.Comment
	res.Body.CreatedAt = review.CreatedAt
	return res, nil
}

type LeadTravelerInput struct {
	FirstName   string `json:"first_name" required:"true"`
	LastName    string `json:"last_name" required:"true"`
	DateOfBirth string `json:"dateofborn,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

type LeadInput struct {
	ID   uint `path:"id" doc:"Tour ID"`
	Body struct {
		FirstName   string              `json:"first_name" required:"true"`
		LastName    string              `json:"last_name" required:"true"`
		Email       string              `json:"email" required:"true" format:"email"`
		Phone       string              `json:"phone" required:"true"`
		PriceID     uint                `json:"price_id" required:"true" doc:"Departure being purchased"`
		DateOfBirth string              `json:"dateofborn,omitempty"`
		Gender      string              `json:"gender,omitempty"`
		Nationality string              `json:"nationality,omitempty"`
		Travelers   []LeadTravelerInput `json:"travelers,omitempty" doc:"Co-travelers"`
	}
}

type LeadOutput struct {
	Body struct {
		ID        uint      `json:"id"`
		TourID    uint      `json:"tour_id"`
		Travelers int       `json:"travelers"`
		CreatedAt time.Time `json:"created_at"`
	}
}

func (h *IntakeHandler) HandleLead(ctx context.Context, input *LeadInput) (*LeadOutput, error) {
	var tour models.Tour
	if err := h.db.First(&tour, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Tour not found")
		}
		return nil, huma.Error500InternalServerError("Failed to look up tour: " + err.Error())
	}

	var price models.Price
	if err := h.db.Where("id = ? AND tour_id = ?", input.Body.PriceID, tour.ID).First(&price).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Departure not found for this tour")
		}
		return nil, huma.Error500InternalServerError("Failed to look up departure: " + err.Error())
	}

	start := ""
	if price.Start != nil {
		start = price.Start.Format("2006-01-02")
	}

	lead := models.Lead{
		ContactInfo: models.ContactInfo{
			FirstName: input.Body.FirstName,
			LastName:  input.Body.LastName,
			Email:     input.Body.Email,
			Phone:     input.Body.Phone,
		},
		TourName:    tour.Title,
		Start:       start,
		Price:       price.Price,
		Currency:    price.Currency,
		DateOfBirth: input.Body.DateOfBirth,
		Gender:      input.Body.Gender,
		Nationality: input.Body.Nationality,
		Status:      models.RequestStatusUnserviced,
	}
	for _, t := range input.Body.Travelers {
		lead.Travelers = append(lead.Travelers, models.Traveler{
			FirstName:   t.FirstName,
			LastName:    t.LastName,
			DateOfBirth: t.DateOfBirth,
			Gender:      t.Gender,
			Nationality: t.Nationality,
		})
	}

	if err := h.db.Create(&lead).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save lead: " + err.Error())
	}

	h.dispatch(notifier.FormatLead(lead))

	res := &LeadOutput{}
	res.Body.ID = lead.ID
	res.Body.TourID = tour.ID
	res.Body.Travelers = len(lead.Travelers)
	res.Body.CreatedAt = lead.CreatedAt
	return res, nil
}
