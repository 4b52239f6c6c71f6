package employee_test

import (
	"testing"

	"ems-console/internal/employee"

	"github.com/stretchr/testify/assert"
)

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		UserName:      "Ann Smith",
		MobileNumber:  "0812345678",
		Email:         "ann@example.com",
		Department:    "Engineering",
		Role:          "Backend Developer",
		Salary:        5000,
		PasswordHash:  "s3cret!",
		DateOfJoining: "2026-01-01",
		Status:        "active",
	}
}

func TestCreateRequest_Validate(t *testing.T) {
	t.Run("valid candidate has no errors", func(t *testing.T) {
		errs := validCreateRequest().Validate()
		assert.Empty(t, errs)
	})

	t.Run("one message per violated field", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*employee.CreateEmployeeRequest)
			field   string
			message string
		}{
			{
				name:    "blank name",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.UserName = "   " },
				field:   "user_name",
				message: "Name is required",
			},
			{
				name:    "bad email shape",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.Email = "ann@example" },
				field:   "email",
				message: "Valid email is required",
			},
			{
				name:    "email with spaces",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.Email = "a nn@example.com" },
				field:   "email",
				message: "Valid email is required",
			},
			{
				name:    "short phone",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.MobileNumber = "12345" },
				field:   "mobile_number",
				message: "10-digit phone number is required",
			},
			{
				name:    "phone with letters",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.MobileNumber = "08123x5678" },
				field:   "mobile_number",
				message: "10-digit phone number is required",
			},
			{
				name:    "blank department",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.Department = "" },
				field:   "department",
				message: "Department is required",
			},
			{
				name:    "blank role",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.Role = "" },
				field:   "role",
				message: "Role is required",
			},
			{
				name:    "zero salary",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.Salary = 0 },
				field:   "salary",
				message: "Valid salary is required",
			},
			{
				name:    "negative salary",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.Salary = -5 },
				field:   "salary",
				message: "Valid salary is required",
			},
			{
				name:    "missing joining date",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.DateOfJoining = "" },
				field:   "date_of_joining",
				message: "Joining date is required",
			},
			{
				name:    "missing password on create",
				mutate:  func(r *employee.CreateEmployeeRequest) { r.PasswordHash = "" },
				field:   "password_hash",
				message: "Password is required for new employees",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validCreateRequest()
				tc.mutate(&req)

				errs := req.Validate()
				assert.Len(t, errs, 1)
				assert.Equal(t, tc.message, errs[tc.field])
			})
		}
	})

	t.Run("violations accumulate across fields", func(t *testing.T) {
		errs := employee.CreateEmployeeRequest{}.Validate()

		assert.Len(t, errs, 8)
		assert.Equal(t, "Name is required", errs["user_name"])
		assert.Equal(t, "Valid email is required", errs["email"])
		assert.Equal(t, "10-digit phone number is required", errs["mobile_number"])
		assert.Equal(t, "Department is required", errs["department"])
		assert.Equal(t, "Role is required", errs["role"])
		assert.Equal(t, "Valid salary is required", errs["salary"])
		assert.Equal(t, "Joining date is required", errs["date_of_joining"])
		assert.Equal(t, "Password is required for new employees", errs["password_hash"])
	})
}

func TestUpdateRequest_Validate(t *testing.T) {
	t.Run("no password needed when editing", func(t *testing.T) {
		req := employee.UpdateEmployeeRequest{
			UserName:      "Ann Smith",
			MobileNumber:  "0812345678",
			Email:         "ann@example.com",
			Department:    "Engineering",
			Role:          "Backend Developer",
			Salary:        5000,
			DateOfJoining: "2026-01-01",
		}

		errs := req.Validate()
		assert.Empty(t, errs)
		assert.NotContains(t, errs, "password_hash")
	})

	t.Run("shared rules still apply", func(t *testing.T) {
		errs := employee.UpdateEmployeeRequest{}.Validate()

		assert.Len(t, errs, 7)
		assert.NotContains(t, errs, "password_hash")
	})
}
