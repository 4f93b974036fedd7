package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/intek-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/intek-hris/attendance-backend-go/internal/handler/http/response"
)

// AttendanceHandler defines the attendance handler interface
type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), employeeID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checked in", record)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckOut(r.Context(), employeeID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checked out", record)
}

// Today implements AttendanceHandler. Data is null when there is no record
// for the current day yet.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.GetToday(r.Context(), employeeID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if record == nil {
		response.Success(w, nil)
		return
	}
	response.Success(w, record)
}

// History implements AttendanceHandler.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := getIntQueryParam(r, "limit", 10)
	records, err := h.attendanceService.GetHistory(r.Context(), employeeID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// MonthlyStats implements AttendanceHandler. Defaults to the current month.
func (h *AttendanceHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now().UTC()
	year := getIntQueryParam(r, "year", now.Year())
	month := getIntQueryParam(r, "month", int(now.Month()))
	if month < 1 || month > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	stats, err := h.attendanceService.GetMonthlyStats(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}
