package event

import (
	"github.com/intek-hris/attendance-backend-go/internal/pkg/validator"
)

// CreateEventRequest is the payload for a new company event.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Type        string  `json:"type"`
}

func (r CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Type, []string{TypeMeeting, TypeTraining, TypeHoliday, TypeGathering}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown event type"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EventResponse is the JSON projection of a company event.
type EventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Type        string  `json:"type"`
}

func ToResponse(e CompanyEvent) EventResponse {
	return EventResponse(e)
}

func ToResponses(events []CompanyEvent) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, ToResponse(e))
	}
	return responses
}
