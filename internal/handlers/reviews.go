package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/silkway-travel/tour-booking-api/internal/models"
	"github.com/silkway-travel/tour-booking-api/internal/notifier"
)

type SiteReviewCreateInput struct {
	Body struct {
		FirstName string  `json:"firstname" required:"true"`
		LastName  string  `json:"lastname" required:"true"`
		Mark      float64 `json:"mark" required:"true" minimum:"0" maximum:"5"`
		Text      string  `json:"text" required:"true"`
	}
}

// SiteReviewView is the public projection of a review: no moderation status.
type SiteReviewView struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Mark      float64   `json:"mark"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type SiteReviewCreateOutput struct {
	Body SiteReviewView
}

func (h *IntakeHandler) HandleSiteReviewCreate(ctx context.Context, input *SiteReviewCreateInput) (*SiteReviewCreateOutput, error) {
	review := models.SiteReview{
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
		Mark:      input.Body.Mark,
		Text:      input.Body.Text,
		Status:    models.ReviewStatusPending,
	}

	if err := h.db.Create(&review).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save review: " + err.Error())
	}

	h.dispatch(notifier.FormatSiteReview(review))

	return &SiteReviewCreateOutput{Body: SiteReviewView{
		ID:        review.ID,
		FirstName: review.FirstName,
		LastName:  review.LastName,
		Mark:      review.Mark,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}}, nil
}

type SiteReviewListInput struct {
	PageParams
}

type SiteReviewListOutput struct {
	Body []SiteReviewView
}

// HandleSiteReviewList lists approved reviews, newest first.
func (h *ContentHandler) HandleSiteReviewList(ctx context.Context, input *SiteReviewListInput) (*SiteReviewListOutput, error) {
	offset, limit := input.Limits()

	var reviews []models.SiteReview
	err := h.db.Where("status = ?", models.ReviewStatusApproved).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list reviews: " + err.Error())
	}

	out := &SiteReviewListOutput{Body: []SiteReviewView{}}
	for _, r := range reviews {
		out.Body = append(out.Body, SiteReviewView{
			ID:        r.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Mark:      r.Mark,
			Text:      r.Text,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
