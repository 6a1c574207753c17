package handlers

import (
	"context"
	"testing"

	"github.com/silkway-travel/tour-booking-api/internal/auth"
	"github.com/silkway-travel/tour-booking-api/internal/models"
)

func TestHandleUpdateStatus(t *testing.T) {
	db := setupDB(t)
	handler := NewAdminHandler(db)

	feedback := models.Feedback{Name: "Айгуль", Email: "a@example.com", Phone: "+996", Status: models.RequestStatusUnserviced}
	db.Create(&feedback)

	ctx := context.WithValue(context.Background(), auth.UserIDKey, uint(7))

	input := &UpdateStatusInput{Kind: "feedback", ID: feedback.ID}
	input.Body.Status = models.RequestStatusServiced

	resp, err := handler.HandleUpdateStatus(ctx, input)
	if err != nil {
		t.Fatalf("HandleUpdateStatus returned error: %v", err)
	}
	if resp.Body.OldStatus != models.RequestStatusUnserviced || resp.Body.NewStatus != models.RequestStatusServiced {
		t.Errorf("unexpected status transition in response: %+v", resp.Body)
	}

	var stored models.Feedback
	db.First(&stored, feedback.ID)
	if stored.Status != models.RequestStatusServiced {
		t.Errorf("expected status %d, got %d", models.RequestStatusServiced, stored.Status)
	}

	var change models.StatusChange
	if err := db.Where("kind = ? AND record_id = ?", "feedback", feedback.ID).First(&change).Error; err != nil {
		t.Fatalf("expected an audit row: %v", err)
	}
	if change.OldStatus != 0 || change.NewStatus != 1 || change.ChangedByID != 7 {
		t.Errorf("unexpected audit row: %+v", change)
	}
}

func TestHandleUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	// There is no state machine: a serviced record can go back to unserviced.
	db := setupDB(t)
	handler := NewAdminHandler(db)

	review := models.SiteReview{FirstName: "A", LastName: "B", Mark: 5, Text: "ok", Status: models.ReviewStatusApproved}
	db.Create(&review)

	ctx := context.WithValue(context.Background(), auth.UserIDKey, uint(1))

	input := &UpdateStatusInput{Kind: "site-reviews", ID: review.ID}
	input.Body.Status = models.ReviewStatusPending

	if _, err := handler.HandleUpdateStatus(ctx, input); err != nil {
		t.Fatalf("backward transition rejected: %v", err)
	}

	var stored models.SiteReview
	db.First(&stored, review.ID)
	if stored.Status != models.ReviewStatusPending {
		t.Errorf("expected status %d, got %d", models.ReviewStatusPending, stored.Status)
	}
}

func TestHandleUpdateStatus_NotFound(t *testing.T) {
	db := setupDB(t)
	handler := NewAdminHandler(db)

	ctx := context.WithValue(context.Background(), auth.UserIDKey, uint(1))

	input := &UpdateStatusInput{Kind: "requests", ID: 424242}
	input.Body.Status = models.RequestStatusServiced

	if _, err := handler.HandleUpdateStatus(ctx, input); err == nil {
		t.Fatal("expected 404 for unknown record")
	}
}

func TestHandleUpdateStatus_Unauthorized(t *testing.T) {
	db := setupDB(t)
	handler := NewAdminHandler(db)

	input := &UpdateStatusInput{Kind: "requests", ID: 1}
	input.Body.Status = models.RequestStatusServiced

	if _, err := handler.HandleUpdateStatus(context.Background(), input); err == nil {
		t.Fatal("expected 401 without an authenticated admin")
	}
}

func TestHandleIntakeList(t *testing.T) {
	db := setupDB(t)
	handler := NewAdminHandler(db)

	for i := 0; i < 4; i++ {
		db.Create(&models.Feedback{Name: "N", Email: "e@example.com", Phone: "+996", Status: i % 2})
	}

	ctx := context.WithValue(context.Background(), auth.UserIDKey, uint(1))

	input := &IntakeListInput{Kind: "feedback", Status: models.RequestStatusServiced}
	input.PageSize = 50

	out, err := handler.HandleIntakeList(ctx, input)
	if err != nil {
		t.Fatalf("HandleIntakeList returned error: %v", err)
	}
	rows, ok := out.Body.Records.([]models.Feedback)
	if !ok {
		t.Fatalf("expected []models.Feedback, got %T", out.Body.Records)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 serviced rows, got %d", len(rows))
	}
}
