package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/silkway-travel/tour-booking-api/internal/models"
	"github.com/silkway-travel/tour-booking-api/internal/notifier"
	"gorm.io/gorm"
)

// IntakeHandler owns the public submission endpoints: validate, persist,
// then hand the notification off to the group chat. The response depends on
// persistence only; the notification never fails a request.
type IntakeHandler struct {
	db       *gorm.DB
	notifier notifier.Notifier
	timeout  time.Duration
}

func NewIntakeHandler(db *gorm.DB, n notifier.Notifier, timeout time.Duration) *IntakeHandler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &IntakeHandler{db: db, notifier: n, timeout: timeout}
}

// dispatch takes a formatter result and delivers it outside the request path.
// Formatting and transport failures are logged and suppressed.
func (h *IntakeHandler) dispatch(text string, err error) {
	if err != nil {
		log.Printf("notification formatting failed: %v", err)
		return
	}
	if h.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()
		if err := h.notifier.Deliver(ctx, text); err != nil {
			log.Printf("notification delivery failed: %v", err)
		}
	}()
}

type SendRequestInput struct {
	Body struct {
		FirstName string `json:"first_name" required:"true" doc:"Customer first name"`
		LastName  string `json:"last_name" required:"true" doc:"Customer last name"`
		Email     string `json:"email" required:"true" format:"email"`
		Phone     string `json:"phone" required:"true"`
		Message   string `json:"message" required:"true"`
		Size      int    `json:"size" required:"true" minimum:"1" doc:"Party size"`
		Budget    string `json:"budget,omitempty" doc:"Per-person budget as a min-max range, required when no tour is named"`
		TourName  string `json:"tour_name,omitempty" doc:"Tour the request is about, empty for a free-form inquiry"`
	}
}

type SendRequestOutput struct {
	Body struct {
		ID        uint      `json:"id"`
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		CreatedAt time.Time `json:"created_at"`
	}
}

func (h *IntakeHandler) HandleSendRequest(ctx context.Context, input *SendRequestInput) (*SendRequestOutput, error) {
	if input.Body.TourName == "" && !strings.Contains(input.Body.Budget, "-") {
		return nil, huma.Error400BadRequest("budget must be a min-max range")
	}

	request := models.Request{
		ContactInfo: models.ContactInfo{
			FirstName: input.Body.FirstName,
			LastName:  input.Body.LastName,
			Email:     input.Body.Email,
			Phone:     input.Body.Phone,
		},
		Message:  input.Body.Message,
		Size:     input.Body.Size,
		Budget:   input.Body.Budget,
		TourName: input.Body.TourName,
		Status:   models.RequestStatusUnserviced,
	}

	if err := h.db.Create(&request).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save request: " + err.Error())
	}

	h.dispatch(notifier.FormatRequest(request))

	res := &SendRequestOutput{}
	res.Body.ID = request.ID
	res.Body.FirstName = request.FirstName
	res.Body.LastName = request.LastName
	res.Body.CreatedAt = request.CreatedAt
	return res, nil
}

type FeedbackInput struct {
	Body struct {
		Name    string `json:"name" required:"true"`
		Email   string `json:"email" required:"true" format:"email"`
		Phone   string `json:"phone" required:"true"`
		Comment string `json:"comment,omitempty"`
	}
}

type FeedbackOutput struct {
	Body struct {
		ID        uint      `json:"id"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	}
}

func (h *IntakeHandler) HandleFeedback(ctx context.Context, input *FeedbackInput) (*FeedbackOutput, error) {
	feedback := models.Feedback{
		Name:    input.Body.Name,
		Email:   input.Body.Email,
		Phone:   input.Body.Phone,
		Comment: input.Body.Comment,
		Status:  models.RequestStatusUnserviced,
	}

	if err := h.db.Create(&feedback).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save feedback: " + err.Error())
	}

	h.dispatch(notifier.FormatFeedback(feedback))

	res := &FeedbackOutput{}
	res.Body.ID = feedback.ID
	res.Body.Name = feedback.Name
	res.Body.CreatedAt = feedback.CreatedAt
	return res, nil
}

type CreateYourTourInput struct {
	Body struct {
		FullName      string   `json:"full_name" required:"true"`
		Email         string   `json:"email" required:"true" format:"email"`
		Phone         string   `json:"phone" required:"true"`
		Categories    []string `json:"categories" required:"true" minItems:"1" doc:"Chosen tour categories"`
		Accommodation string   `json:"accommodation" required:"true"`
		Transport     string   `json:"transport" required:"true"`
		Meal          string   `json:"meal" required:"true"`
		People        int      `json:"people" required:"true" minimum:"1" maximum:"8"`
		Method        string   `json:"method,omitempty" doc:"Preferred contact channel"`
		DateFrom      string   `json:"datefrom" required:"true" format:"date"`
		DateTo        string   `json:"dateto" required:"true" format:"date"`
		GuideNeeded   *bool    `json:"gid,omitempty" doc:"Whether a guide is wanted; omit if the form did not ask"`
		Comment       string   `json:"comment,omitempty"`
	}
}

type CreateYourTourOutput struct {
	Body struct {
		ID        uint      `json:"id"`
		FullName  string    `json:"full_name"`
		CreatedAt time.Time `json:"created_at"`
	}
}

func (h *IntakeHandler) HandleCreateYourTour(ctx context.Context, input *CreateYourTourInput) (*CreateYourTourOutput, error) {
	dateFrom, err := time.Parse("2006-01-02", input.Body.DateFrom)
	if err != nil {
		return nil, huma.Error400BadRequest("datefrom must be a YYYY-MM-DD date")
	}
	dateTo, err := time.Parse("2006-01-02", input.Body.DateTo)
	if err != nil {
		return nil, huma.Error400BadRequest("dateto must be a YYYY-MM-DD date")
	}

	customTour := models.CustomTourRequest{
		FullName:      input.Body.FullName,
		Email:         input.Body.Email,
		Phone:         input.Body.Phone,
		Categories:    strings.Join(input.Body.Categories, ", "),
		Accommodation: input.Body.Accommodation,
		Transport:     input.Body.Transport,
		Meal:          input.Body.Meal,
		People:        input.Body.People,
		Method:        input.Body.Method,
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		GuideNeeded:   input.Body.GuideNeeded,
		Comment:       input.Body.Comment,
		Status:        models.RequestStatusUnserviced,
	}

	if err := h.db.Create(&customTour).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save custom tour: " + err.Error())
	}

	h.dispatch(notifier.FormatCustomTour(customTour))

	res := &CreateYourTourOutput{}
	res.Body.ID = customTour.ID
	res.Body.FullName = customTour.FullName
	res.Body.CreatedAt = customTour.CreatedAt
	return res, nil
}

type CarRentInput struct {
	Body struct {
		CarModel  string `json:"model" required:"true" doc:"Requested vehicle model"`
		DateFrom  string `json:"datefrom" required:"true" format:"date"`
		DateTo    string `json:"dateto" required:"true" format:"date"`
		FirstName string `json:"first_name" required:"true"`
		LastName  string `json:"last_name" required:"true"`
		Email     string `json:"email" required:"true" format:"email"`
		Phone     string `json:"phone" required:"true"`
		Comment   string `json:"comment,omitempty"`
	}
}

type CarRentOutput struct {
	Body struct {
		ID        uint      `json:"id"`
		CarModel  string    `json:"model"`
		CreatedAt time.Time `json:"created_at"`
	}
}

func (h *IntakeHandler) HandleCarRent(ctx context.Context, input *CarRentInput) (*CarRentOutput, error) {
	rental := models.CarRentalRequest{
		ContactInfo: models.ContactInfo{
			FirstName: input.Body.FirstName,
			LastName:  input.Body.LastName,
			Email:     input.Body.Email,
			Phone:     input.Body.Phone,
		},
		CarModel: input.Body.CarModel,
		DateFrom: input.Body.DateFrom,
		DateTo:   input.Body.DateTo,
		Comment:  input.Body.Comment,
		Status:   models.RequestStatusUnserviced,
	}

	if err := h.db.Create(&rental).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to save car rental request: " + err.Error())
	}

	h.dispatch(notifier.FormatCarRental(rental))

	res := &CarRentOutput{}
	res.Body.ID = rental.ID
	res.Body.CarModel = rental.CarModel
	res.Body.CreatedAt = rental.CreatedAt
	return res, nil
}
