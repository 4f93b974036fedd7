package http

import (
	"encoding/json"
	"net/http"

	"github.com/intek-hris/attendance-backend-go/internal/domain/event"
	"github.com/intek-hris/attendance-backend-go/internal/handler/http/response"
)

// EventHandler defines the company events handler interface
type EventHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type EventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &EventHandlerImpl{eventService: eventService}
}

// List implements EventHandler.
func (h *EventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, events)
}

// Upcoming implements EventHandler.
func (h *EventHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	limit := getIntQueryParam(r, "limit", 5)
	events, err := h.eventService.Upcoming(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, events)
}

// Create implements EventHandler.
func (h *EventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req event.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.eventService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Company event created", created)
}
