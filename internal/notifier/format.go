package notifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/silkway-travel/tour-booking-api/internal/models"
)

// MissingFieldError reports a field the formatter needs but the record does
// not carry. It must reach the caller: a half-formatted notification is worse
// than a dropped one.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

type field struct {
	name  string
	value string
}

func checkRequired(fields []field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}

func formatMark(mark float64) string {
	return strconv.FormatFloat(mark, 'f', -1, 64)
}

// FormatRequest renders a general tour inquiry. Without a tour name the
// message carries the per-person budget, rendered from the "min-max" range
// the form submits. With a tour name the header names the tour and the budget
// is dropped.
func FormatRequest(r models.Request) (string, error) {
	if err := checkRequired([]field{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"message", r.Message},
	}); err != nil {
		return "", err
	}
	if r.Size <= 0 {
		return "", &MissingFieldError{Field: "size"}
	}

	if r.TourName == "" {
		min, max, ok := strings.Cut(r.Budget, "-")
		if !ok {
			return "", &MissingFieldError{Field: "budget"}
		}
		return fmt.Sprintf(
			"<b>Новый запрос!!!</b> \n\n"+
				"Имя: <b>%s</b> \n"+
				"Фамилия: <b>%s</b> \n"+
				"Почта: <b>%s</b> \n"+
				"Номер телефона: <b>%s</b> \n"+
				"Кол-во человек: <b>%d</b> \n"+
				"Бюджет на человека: $%s - $%s\n"+
				"%s",
			r.FirstName, r.LastName, r.Email, r.Phone, r.Size, min, max, r.Message,
		), nil
	}

	return fmt.Sprintf(
		"<b>Новая заявка на %s!!!</b> \n\n"+
			"Имя: <b>%s</b> \n"+
			"Фамилия: <b>%s</b> \n"+
			"Почта: <b>%s</b> \n"+
			"Номер телефона: <b>%s</b> \n"+
			"Кол-во человек: <b>%d</b> \n"+
			"%s",
		r.TourName, r.FirstName, r.LastName, r.Email, r.Phone, r.Size, r.Message,
	), nil
}

// FormatFeedback renders a call-back request. An empty comment yields the
// shorter variant without the comment line.
func FormatFeedback(f models.Feedback) (string, error) {
	if err := checkRequired([]field{
		{"name", f.Name},
		{"email", f.Email},
		{"phone", f.Phone},
	}); err != nil {
		return "", err
	}

	msg := fmt.Sprintf(
		"<b>Новый запрос на обратную связь!!!</b> \n\n"+
			"Имя: <b>%s</b> \n"+
			"Почта: <b>%s</b> \n"+
			"Телефон: <b>%s</b> \n",
		f.Name, f.Email, f.Phone,
	)
	if f.Comment != "" {
		msg += f.Comment
	}
	return msg, nil
}

// FormatSiteReview renders a fresh site review, always tagged as unmoderated.
func FormatSiteReview(rv models.SiteReview) (string, error) {
	if err := checkRequired([]field{
		{"firstname", rv.FirstName},
		{"lastname", rv.LastName},
		{"text", rv.Text},
	}); err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"<b>Новый отзыв на сайте!!!</b> \n\n"+
			"ФИО: <b>%s %s</b> \n"+
			"Оценка: <b>%s из 5</b> \n"+
			"Статус: <b>Не проверено</b> \n"+
			"%s",
		rv.FirstName, rv.LastName, formatMark(rv.Mark), rv.Text,
	), nil
}

// FormatTourReview renders a review left on a specific tour.
func FormatTourReview(rv models.TourReview, tourTitle string) (string, error) {
	if err := checkRequired([]field{
		{"tour_title", tourTitle},
		{"name", rv.Name},
		{"email", rv.Email},
	}); err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"<b>Новый отзыв на тур %s!!!</b> \n\n"+
			"Имя: <b>%s</b> \n"+
			"Почта: <b>%s</b> \n"+
			"Оценка: <b>%s из 5</b> \n"+
			"%s",
		tourTitle, rv.Name, rv.Email, formatMark(rv.Rating), rv.Comment,
	), nil
}

// FormatCustomTour renders a configurator submission. The guide line is a
// tri-state: an explicit answer renders "Да"/"Нет", a nil GuideNeeded means
// the form never asked, and the line is omitted entirely.
func FormatCustomTour(ct models.CustomTourRequest) (string, error) {
	if err := checkRequired([]field{
		{"full_name", ct.FullName},
		{"email", ct.Email},
		{"phone", ct.Phone},
		{"categories", ct.Categories},
		{"accommodation", ct.Accommodation},
		{"transport", ct.Transport},
		{"meal", ct.Meal},
	}); err != nil {
		return "", err
	}
	if ct.People <= 0 {
		return "", &MissingFieldError{Field: "people"}
	}
	if ct.DateFrom.IsZero() {
		return "", &MissingFieldError{Field: "datefrom"}
	}
	if ct.DateTo.IsZero() {
		return "", &MissingFieldError{Field: "dateto"}
	}

	guideLine := ""
	if ct.GuideNeeded != nil {
		answer := "Нет"
		if *ct.GuideNeeded {
			answer = "Да"
		}
		guideLine = fmt.Sprintf("Нужен ли ГИД: <b>%s</b> \n", answer)
	}

	return fmt.Sprintf(
		"Конструктор поездок\n"+
			"ФИО: <b>%s</b> \n"+
			"Email: <b>%s</b> \n"+
			"phone: <b>%s</b> \n"+
			"Категории: <b>%s</b> \n"+
			"Жилье: <b>%s</b> \n"+
			"Транспорт: <b>%s</b> \n"+
			"Питание: <b>%s</b> \n"+
			"Кол-во людей: <b>%d</b> \n"+
			"Дата начала: <b>%s</b> \n"+
			"Дата окончания: <b>%s</b> \n"+
			"%s"+
			"Комментарии и дополнительная информация: <b>%s</b> \n",
		ct.FullName, ct.Email, ct.Phone, ct.Categories, ct.Accommodation,
		ct.Transport, ct.Meal, ct.People,
		ct.DateFrom.Format("02 January 2006 г."),
		ct.DateTo.Format("02 January 2006 г."),
		guideLine, ct.Comment,
	), nil
}

// FormatCarRental renders a vehicle-rental inquiry.
func FormatCarRental(cr models.CarRentalRequest) (string, error) {
	if err := checkRequired([]field{
		{"model", cr.CarModel},
		{"datefrom", cr.DateFrom},
		{"dateto", cr.DateTo},
		{"first_name", cr.FirstName},
		{"last_name", cr.LastName},
		{"email", cr.Email},
		{"phone", cr.Phone},
	}); err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Заявка на авто: <b>%s</b> \n"+
			"Дата начала: <b>%s</b> \n"+
			"Дата окончания: <b>%s</b> \n"+
			"ФИО: <b>%s %s</b> \n"+
			"Электронная почта: <b>%s</b> \n"+
			"Номер телефона: <b>%s</b> \n"+
			"Комментарии и дополнительная информация: <b>%s</b> \n",
		cr.CarModel, cr.DateFrom, cr.DateTo, cr.FirstName, cr.LastName,
		cr.Email, cr.Phone, cr.Comment,
	), nil
}

// FormatTourRequest renders an inquiry for a specific tour. When the record
// references a departure with a start date, the message carries the date and
// the price; otherwise it falls back to the shorter variant.
func FormatTourRequest(tr models.TourRequest, tourTitle string, price *models.Price) (string, error) {
	if err := checkRequired([]field{
		{"tour_title", tourTitle},
		{"first_name", tr.FirstName},
		{"last_name", tr.LastName},
		{"email", tr.Email},
		{"phone", tr.Phone},
	}); err != nil {
		return "", err
	}

	if price != nil && price.Start != nil {
		return fmt.Sprintf(
			"<b>Новый запрос на тур %s!!!</b> \n\n"+
				"Имя: <b>%s</b> \n"+
				"Фамилия: <b>%s</b> \n"+
				"Адрес электронной: <b>%s</b> \n"+
				"Телефон: <b>%s</b> \n"+
				"Старт: <b>%s</b> \n"+
				"Цена: <b>%d %s</b> \n"+
				"Комментарий и дополнительная информация: <b>%s</b> \n",
			tourTitle, tr.FirstName, tr.LastName, tr.Email, tr.Phone,
			price.Start.Format("Jan 02, Mon"), price.Price, price.Currency, tr.Comment,
		), nil
	}

	return fmt.Sprintf(
		"<b>Новый запрос на тур %s!!!</b> \n\n"+
			"Имя: <b>%s</b> \n"+
			"Фамилия: <b>%s</b> \n"+
			"Адрес электронной: <b>%s</b> \n"+
			"Телефон: <b>%s</b> \n"+
			"Комментарий и дополнительная информация: <b>%s</b> \n",
		tourTitle, tr.FirstName, tr.LastName, tr.Email, tr.Phone, tr.Comment,
	), nil
}

// FormatLead renders a purchase intent, appending one numbered block per
// co-traveler in submission order.
func FormatLead(l models.Lead) (string, error) {
	if err := checkRequired([]field{
		{"tour_name", l.TourName},
		{"first_name", l.FirstName},
		{"last_name", l.LastName},
		{"email", l.Email},
		{"phone", l.Phone},
	}); err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"<b>Новая покупка!!!</b> \n"+
			"Желаемый тур: <b>%s</b> \n"+
			"Желаемый старт: <b>%s</b> \n"+
			"Желаемая цена: <b>%d %s</b> \n\n"+
			"Имя: <b>%s</b> \n"+
			"Фамилия: <b>%s</b> \n"+
			"Адрес электронной: <b>%s</b> \n"+
			"Телефон: <b>%s</b> \n"+
			"Дата рождения: <b>%s</b> \n"+
			"Пол: <b>%s</b> \n"+
			"Национальность: <b>%s</b> \n",
		l.TourName, l.Start, l.Price, l.Currency,
		l.FirstName, l.LastName, l.Email, l.Phone,
		l.DateOfBirth, l.Gender, l.Nationality,
	)

	for i, t := range l.Travelers {
		fmt.Fprintf(&sb,
			"<b>Traveler: %d</b> \n"+
				"Имя: <b>%s</b> \n"+
				"Фамилия: <b>%s</b> \n"+
				"Дата рождения: <b>%s</b> \n"+
				"Пол: <b>%s</b> \n"+
				"Национальность: <b>%s</b> \n\n",
			i+1, t.FirstName, t.LastName, t.DateOfBirth, t.Gender, t.Nationality,
		)
	}

	return sb.String(), nil
}
