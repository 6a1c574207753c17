package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/silkway-travel/tour-booking-api/internal/auth"
	"github.com/silkway-travel/tour-booking-api/internal/models"
	"gorm.io/gorm"
)

// AdminHandler is the triage surface: list intake records and move them
// between statuses. Records are never deleted through the API.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func intakeModel(kind string) (interface{}, bool) {
	switch kind {
	case "requests":
		return &models.Request{}, true
	case "tour-requests":
		return &models.TourRequest{}, true
	case "site-reviews":
		return &models.SiteReview{}, true
	case "tour-reviews":
		return &models.TourReview{}, true
	case "custom-tours":
		return &models.CustomTourRequest{}, true
	case "car-rentals":
		return &models.CarRentalRequest{}, true
	case "feedback":
		return &models.Feedback{}, true
	case "leads":
		return &models.Lead{}, true
	}
	return nil, false
}

type UpdateStatusInput struct {
	Kind string `path:"kind" enum:"requests,tour-requests,site-reviews,tour-reviews,custom-tours,car-rentals,feedback,leads"`
	ID   uint   `path:"id"`
	Body struct {
		Status int `json:"status" minimum:"0" maximum:"2"`
	}
}

type UpdateStatusOutput struct {
	Body struct {
		ID        uint `json:"id"`
		OldStatus int  `json:"old_status"`
		NewStatus int  `json:"new_status"`
	}
}

// HandleUpdateStatus writes a new triage status. Any status can be written at
// any time; the change is recorded in the audit log, last write wins.
func (h *AdminHandler) HandleUpdateStatus(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	model, ok := intakeModel(input.Kind)
	if !ok {
		return nil, huma.Error404NotFound("Unknown intake kind")
	}

	var oldStatus int
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var row struct{ Status int }
		if err := tx.Model(model).Select("status").Where("id = ?", input.ID).Take(&row).Error; err != nil {
			return err
		}
		oldStatus = row.Status

		if err := tx.Model(model).Where("id = ?", input.ID).Update("status", input.Body.Status).Error; err != nil {
			return err
		}

		change := models.StatusChange{
			Kind:        input.Kind,
			RecordID:    input.ID,
			OldStatus:   oldStatus,
			NewStatus:   input.Body.Status,
			ChangedByID: userID,
		}
		return tx.Create(&change).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Record not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update status: " + err.Error())
	}

	res := &UpdateStatusOutput{}
	res.Body.ID = input.ID
	res.Body.OldStatus = oldStatus
	res.Body.NewStatus = input.Body.Status
	return res, nil
}

type IntakeListInput struct {
	Kind string `path:"kind" enum:"requests,tour-requests,site-reviews,tour-reviews,custom-tours,car-rentals,feedback,leads"`
	PageParams
	Status int `query:"status" minimum:"-1" maximum:"2" default:"-1" doc:"Filter by triage status, -1 for all"`
}

type IntakeListOutput struct {
	Body struct {
		Kind    string      `json:"kind"`
		Records interface{} `json:"records"`
	}
}

// HandleIntakeList lists intake records of one kind for triage, newest first.
func (h *AdminHandler) HandleIntakeList(ctx context.Context, input *IntakeListInput) (*IntakeListOutput, error) {
	if _, ok := ctx.Value(auth.UserIDKey).(uint); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	offset, limit := input.Limits()

	q := h.db.Order("created_at DESC").Offset(offset).Limit(limit)
	if input.Status >= 0 {
		q = q.Where("status = ?", input.Status)
	}

	var records interface{}
	var err error
	switch input.Kind {
	case "requests":
		var rows []models.Request
		err = q.Find(&rows).Error
		records = rows
	case "tour-requests":
		var rows []models.TourRequest
		err = q.Find(&rows).Error
		records = rows
	case "site-reviews":
		var rows []models.SiteReview
		err = q.Find(&rows).Error
		records = rows
	case "tour-reviews":
		var rows []models.TourReview
		err = q.Find(&rows).Error
		records = rows
	case "custom-tours":
		var rows []models.CustomTourRequest
		err = q.Find(&rows).Error
		records = rows
	case "car-rentals":
		var rows []models.CarRentalRequest
		err = q.Find(&rows).Error
		records = rows
	case "feedback":
		var rows []models.Feedback
		err = q.Find(&rows).Error
		records = rows
	case "leads":
		var rows []models.Lead
		err = q.Preload("Travelers").Find(&rows).Error
		records = rows
	default:
		return nil, huma.Error404NotFound("Unknown intake kind")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list records: " + err.Error())
	}

	res := &IntakeListOutput{}
	res.Body.Kind = input.Kind
	res.Body.Records = records
	return res, nil
}
