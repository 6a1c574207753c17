package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/silkway-travel/tour-booking-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Tour{}, &models.Price{}, &models.Route{}, &models.TourImage{},
		&models.Slider{}, &models.Category{}, &models.CarType{},
		&models.ArticleCategory{}, &models.Article{},
		&models.Request{}, &models.TourRequest{}, &models.SiteReview{},
		&models.TourReview{}, &models.CustomTourRequest{}, &models.CarRentalRequest{},
		&models.Feedback{}, &models.Lead{}, &models.Traveler{},
		&models.StatusChange{}, &models.AdminUser{}, &models.APIKey{},
	)
	if err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}

	return db
}

// stubNotifier records deliveries and optionally fails every call.
type stubNotifier struct {
	err       error
	delivered chan string
}

func (s *stubNotifier) Deliver(ctx context.Context, text string) error {
	if s.delivered != nil {
		s.delivered <- text
	}
	return s.err
}

func validSendRequestInput() *SendRequestInput {
	input := &SendRequestInput{}
	input.Body.FirstName = "Aidar"
	input.Body.LastName = "Bekov"
	input.Body.Email = "aidar@example.com"
	input.Body.Phone = "+996700123456"
	input.Body.Message = "Хотим поехать в июле"
	input.Body.Size = 4
	input.Body.Budget = "100-500"
	return input
}

func TestHandleSendRequest(t *testing.T) {
	db := setupDB(t)
	handler := NewIntakeHandler(db, nil, 0)

	resp, err := handler.HandleSendRequest(context.Background(), validSendRequestInput())
	if err != nil {
		t.Fatalf("HandleSendRequest returned error: %v", err)
	}
	if resp.Body.ID == 0 {
		t.Error("expected a record ID in the response")
	}
	if resp.Body.CreatedAt.IsZero() {
		t.Error("expected created_at in the response")
	}

	var request models.Request
	if err := db.First(&request, resp.Body.ID).Error; err != nil {
		t.Fatalf("failed to load created request: %v", err)
	}
	if request.FirstName != "Aidar" || request.Email != "aidar@example.com" {
		t.Errorf("persisted fields do not match input: %+v", request)
	}
	if request.Status != models.RequestStatusUnserviced {
		t.Errorf("expected default status %d, got %d", models.RequestStatusUnserviced, request.Status)
	}
}

func TestHandleSendRequest_BadBudget(t *testing.T) {
	db := setupDB(t)
	handler := NewIntakeHandler(db, nil, 0)

	input := validSendRequestInput()
	input.Body.Budget = "lots"

	if _, err := handler.HandleSendRequest(context.Background(), input); err == nil {
		t.Fatal("expected error for a budget without a min-max range")
	}

	var count int64
	db.Model(&models.Request{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no record persisted, got %d", count)
	}
}

func TestHandleSendRequest_MissingFieldRejected(t *testing.T) {
	db := setupDB(t)
	handler := NewIntakeHandler(db, nil, 0)

	_, api := humatest.New(t)
	huma.Post(api, "/main/send-requests", handler.HandleSendRequest)

	resp := api.Post("/main/send-requests", map[string]any{
		"first_name": "Aidar",
		"last_name":  "Bekov",
		// email missing
		"phone":   "+996700123456",
		"message": "msg",
		"size":    2,
		"budget":  "100-500",
	})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for missing email, got %d", resp.Code)
	}

	var count int64
	db.Model(&models.Request{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no record persisted, got %d", count)
	}
}

func TestHandleSendRequest_NotifierFailureIsolated(t *testing.T) {
	db := setupDB(t)
	handler := NewIntakeHandler(db, &stubNotifier{err: errors.New("telegram is down")}, 0)

	resp, err := handler.HandleSendRequest(context.Background(), validSendRequestInput())
	if err != nil {
		t.Fatalf("submission failed because of the notifier: %v", err)
	}
	if resp == nil {
		t.Fatal("expected a response")
	}

	var count int64
	db.Model(&models.Request{}).Count(&count)
	if count != 1 {
		t.Errorf("expected the record to be persisted, got %d rows", count)
	}
}

func TestHandleSendRequest_NotificationText(t *testing.T) {
	db := setupDB(t)
	stub := &stubNotifier{delivered: make(chan string, 1)}
	handler := NewIntakeHandler(db, stub, 0)

	if _, err := handler.HandleSendRequest(context.Background(), validSendRequestInput()); err != nil {
		t.Fatalf("HandleSendRequest returned error: %v", err)
	}

	select {
	case text := <-stub.delivered:
		if want := "$100 - $500"; !strings.Contains(text, want) {
			t.Errorf("expected %q in delivered text:\n%s", want, text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never delivered")
	}
}

func TestHandleCreateYourTour_GuideTriState(t *testing.T) {
	db := setupDB(t)
	handler := NewIntakeHandler(db, nil, 0)

	newInput := func() *CreateYourTourInput {
		input := &CreateYourTourInput{}
		input.Body.FullName = "Асанов Бакыт"
		input.Body.Email = "bakyt@example.com"
		input.Body.Phone = "+996555000111"
		input.Body.Categories = []string{"Горы", "Озера"}
		input.Body.Accommodation = "Юрта"
		input.Body.Transport = "Минивэн"
		input.Body.Meal = "Все включено"
		input.Body.People = 3
		input.Body.DateFrom = "2026-07-10"
		input.Body.DateTo = "2026-07-20"
		return input
	}

	// Answer never collected
	resp, err := handler.HandleCreateYourTour(context.Background(), newInput())
	if err != nil {
		t.Fatalf("HandleCreateYourTour returned error: %v", err)
	}
	var stored models.CustomTourRequest
	if err := db.First(&stored, resp.Body.ID).Error; err != nil {
		t.Fatalf("failed to load record: %v", err)
	}
	if stored.GuideNeeded != nil {
		t.Errorf("expected nil guide flag, got %v", *stored.GuideNeeded)
	}
	if stored.Categories != "Горы, Озера" {
		t.Errorf("expected joined categories, got %q", stored.Categories)
	}

	// Explicit no
	input := newInput()
	no := false
	input.Body.GuideNeeded = &no
	resp, err = handler.HandleCreateYourTour(context.Background(), input)
	if err != nil {
		t.Fatalf("HandleCreateYourTour returned error: %v", err)
	}
	var second models.CustomTourRequest
	if err := db.First(&second, resp.Body.ID).Error; err != nil {
		t.Fatalf("failed to load record: %v", err)
	}
	if second.GuideNeeded == nil || *second.GuideNeeded {
		t.Error("expected explicit false guide flag to survive storage")
	}
}

func TestHandleCreateYourTour_BadDate(t *testing.T) {
	db := setupDB(t)
	handler := NewIntakeHandler(db, nil, 0)

	input := &CreateYourTourInput{}
	input.Body.FullName = "Асанов Бакыт"
	input.Body.Email = "bakyt@example.com"
	input.Body.Phone = "+996555000111"
	input.Body.Categories = []string{"Горы"}
	input.Body.Accommodation = "Юрта"
	input.Body.Transport = "Минивэн"
	input.Body.Meal = "Обед"
	input.Body.People = 2
	input.Body.DateFrom = "10.07.2026"
	input.Body.DateTo = "2026-07-20"

	if _, err := handler.HandleCreateYourTour(context.Background(), input); err == nil {
		t.Fatal("expected error for malformed date")
	}

	var count int64
	db.Model(&models.CustomTourRequest{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no record persisted, got %d", count)
	}
}

func TestHandleTourRequest(t *testing.T) {
	db := setupDB(t)
	handler := NewIntakeHandler(db, nil, 0)

	tour := models.Tour{Title: "Ala-Kul Trek", Type: models.TourTypeGuaranteed}
	db.Create(&tour)
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	price := models.Price{TourID: tour.ID, Price: 780, Currency: "USD", Start: &start}
	db.Create(&price)

	input := &TourRequestInput{ID: tour.ID}
	input.Body.FirstName = "Ivan"
	input.Body.LastName = "Orlov"
	input.Body.Email = "ivan@example.com"
	input.Body.Phone = "+79990001122"
	input.Body.Comment = "Есть ли скидки?"
	input.Body.PriceID = &price.ID

	resp, err := handler.HandleTourRequest(context.Background(), input)
	if err != nil {
		t.Fatalf("HandleTourRequest returned error: %v", err)
	}
	if resp.Body.TourID != tour.ID {
		t.Errorf("expected tour ID %d, got %d", tour.ID, resp.Body.TourID)
	}

	var stored models.TourRequest
	if err := db.First(&stored, resp.Body.ID).Error; err != nil {
		t.Fatalf("failed to load record: %v", err)
	}
	if stored.Status != models.RequestStatusUnserviced {
		t.Errorf("expected default status, got %d", stored.Status)
	}
}

func TestHandleTourRequest_TourNotFound(t *testing.T) {
	db := setupDB(t)
	handler := NewIntakeHandler(db, nil, 0)

	input := &TourRequestInput{ID: 9999}
	input.Body.FirstName = "Ivan"
	input.Body.LastName = "Orlov"
	input.Body.Email = "ivan@example.com"
	input.Body.Phone = "+79990001122"
	input.Body.Comment = "?"

	_, err := handler.HandleTourRequest(context.Background(), input)
	if err == nil {
		t.Fatal("expected 404 for unknown tour")
	}

	var count int64
	db.Model(&models.TourRequest{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no record persisted, got %d", count)
	}
}

func TestHandleLead_WithTravelers(t *testing.T) {
	db := setupDB(t)
	stub := &stubNotifier{delivered: make(chan string, 1)}
	handler := NewIntakeHandler(db, stub, 0)

	tour := models.Tour{Title: "Issyk-Kul Tour"}
	db.Create(&tour)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	price := models.Price{TourID: tour.ID, Price: 950, Currency: "USD", Start: &start}
	db.Create(&price)

	input := &LeadInput{ID: tour.ID}
	input.Body.FirstName = "Anna"
	input.Body.LastName = "Kim"
	input.Body.Email = "anna@example.com"
	input.Body.Phone = "+77010002233"
	input.Body.PriceID = price.ID
	input.Body.Travelers = []LeadTravelerInput{
		{FirstName: "Oleg", LastName: "Kim"},
		{FirstName: "Mia", LastName: "Kim"},
	}

	resp, err := handler.HandleLead(context.Background(), input)
	if err != nil {
		t.Fatalf("HandleLead returned error: %v", err)
	}
	if resp.Body.Travelers != 2 {
		t.Errorf("expected 2 travelers in response, got %d", resp.Body.Travelers)
	}

	var travelerCount int64
	db.Model(&models.Traveler{}).Count(&travelerCount)
	if travelerCount != 2 {
		t.Errorf("expected 2 traveler rows, got %d", travelerCount)
	}

	select {
	case text := <-stub.delivered:
		if !strings.Contains(text, "Traveler: 2") {
			t.Errorf("expected numbered traveler blocks in:\n%s", text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never delivered")
	}
}
