package notification

import "time"

// NotificationResponse is the JSON projection of a notification.
type NotificationResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	IsRead     bool   `json:"is_read"`
	CreatedAt  string `json:"created_at"`
}

// UnreadCountResponse wraps the unread counter for the badge endpoint.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

func ToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		EmployeeID: n.EmployeeID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       string(n.Type),
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(notifications []Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, ToResponse(n))
	}
	return responses
}
