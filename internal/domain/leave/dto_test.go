package leave

import (
	"testing"

	"github.com/attendsys/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaveRequestRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateLeaveRequestRequest{
		LeaveTypeID: "lt-1",
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-04",
		Reason:      "trip",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		mod   func(r *CreateLeaveRequestRequest)
		field string
	}{
		{"missing type", func(r *CreateLeaveRequestRequest) { r.LeaveTypeID = "" }, "leave_type_id"},
		{"bad start date", func(r *CreateLeaveRequestRequest) { r.StartDate = "June 2" }, "start_date"},
		{"bad end date", func(r *CreateLeaveRequestRequest) { r.EndDate = "" }, "end_date"},
		{"end before start", func(r *CreateLeaveRequestRequest) { r.EndDate = "2025-06-01" }, "end_date"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := valid
			tt.mod(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}

func TestReviewLeaveRequestRequest_Validate(t *testing.T) {
	t.Parallel()

	approve := ReviewLeaveRequestRequest{Status: "Approved"}
	assert.NoError(t, approve.Validate())

	reject := ReviewLeaveRequestRequest{Status: "Rejected"}
	assert.NoError(t, reject.Validate())

	for _, status := range []string{"", "Pending", "approved", "Cancelled"} {
		bad := ReviewLeaveRequestRequest{Status: status}
		assert.Error(t, bad.Validate(), "status %q should be rejected", status)
	}
}
