package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysRequested(t *testing.T) {
	tests := []struct {
		name    string
		request LeaveRequest
		want    int
	}{
		{
			"single day",
			LeaveRequest{StartDate: "2024-03-04", EndDate: "2024-03-04", Duration: "full"},
			1,
		},
		{
			"inclusive of both endpoints",
			LeaveRequest{StartDate: "2024-03-04", EndDate: "2024-03-08", Duration: "full"},
			5,
		},
		{
			"spans a month boundary",
			LeaveRequest{StartDate: "2024-01-30", EndDate: "2024-02-02", Duration: "full"},
			4,
		},
		{
			"half day debits one day",
			LeaveRequest{StartDate: "2024-03-04", EndDate: "2024-03-08", Duration: "half"},
			1,
		},
		{
			"hourly debits one day",
			LeaveRequest{StartDate: "2024-03-04", EndDate: "2024-03-04", Duration: "hours"},
			1,
		},
		{
			"unparseable dates",
			LeaveRequest{StartDate: "bogus", EndDate: "2024-03-04", Duration: "full"},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.request.DaysRequested())
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestSubmitRequestValidate(t *testing.T) {
	valid := SubmitRequest{
		EmployeeID: 1,
		Type:       "annual",
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-05",
		Duration:   "full",
		Reason:     "family vacation trip",
	}
	assert.NoError(t, valid.Validate())

	t.Run("reason below minimum length", func(t *testing.T) {
		req := valid
		req.Reason = "too short"
		assert.Error(t, req.Validate())
	})

	t.Run("reason of only whitespace", func(t *testing.T) {
		req := valid
		req.Reason = "               "
		assert.Error(t, req.Validate())
	})

	t.Run("unknown type", func(t *testing.T) {
		req := valid
		req.Type = "sabbatical"
		assert.Error(t, req.Validate())
	})

	t.Run("end before start", func(t *testing.T) {
		req := valid
		req.StartDate = "2024-03-10"
		req.EndDate = "2024-03-05"
		assert.Error(t, req.Validate())
	})

	t.Run("malformed date", func(t *testing.T) {
		req := valid
		req.StartDate = "04-03-2024"
		assert.Error(t, req.Validate())
	})
}

func TestReviewRequestValidate(t *testing.T) {
	assert.NoError(t, ReviewRequest{Status: "approved"}.Validate())
	assert.NoError(t, ReviewRequest{Status: "rejected"}.Validate())
	assert.NoError(t, ReviewRequest{Status: "cancelled"}.Validate())
	assert.ErrorIs(t, ReviewRequest{Status: "pending"}.Validate(), ErrInvalidStatus)
	assert.ErrorIs(t, ReviewRequest{Status: "done"}.Validate(), ErrInvalidStatus)
}
