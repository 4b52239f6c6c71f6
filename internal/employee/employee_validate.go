package employee

import (
	"regexp"
	"strings"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^\d{10}$`)
)

// Validate checks an add-employee candidate and returns a field -> message
// map, keyed by wire field name so the browser can attach each message to
// its input. An empty map means the form may be submitted; a non-empty map
// blocks submission entirely. At most one message per field.
func (r CreateEmployeeRequest) Validate() map[string]string {
	errs := validateRecordFields(
		r.UserName, r.Email, r.MobileNumber,
		r.Department, r.Role, r.Salary, r.DateOfJoining,
	)

	if strings.TrimSpace(r.PasswordHash) == "" {
		errs["password_hash"] = "Password is required for new employees"
	}

	return errs
}

// Validate checks an edit candidate. Identical to the create rules except
// that no password is required for an existing employee.
func (r UpdateEmployeeRequest) Validate() map[string]string {
	return validateRecordFields(
		r.UserName, r.Email, r.MobileNumber,
		r.Department, r.Role, r.Salary, r.DateOfJoining,
	)
}

func validateRecordFields(
	userName, email, mobileNumber, department, role string,
	salary float64,
	dateOfJoining string,
) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(userName) == "" {
		errs["user_name"] = "Name is required"
	}
	if !emailPattern.MatchString(email) {
		errs["email"] = "Valid email is required"
	}
	if !mobilePattern.MatchString(mobileNumber) {
		errs["mobile_number"] = "10-digit phone number is required"
	}
	if strings.TrimSpace(department) == "" {
		errs["department"] = "Department is required"
	}
	if strings.TrimSpace(role) == "" {
		errs["role"] = "Role is required"
	}
	if salary <= 0 {
		errs["salary"] = "Valid salary is required"
	}
	if strings.TrimSpace(dateOfJoining) == "" {
		errs["date_of_joining"] = "Joining date is required"
	}

	return errs
}
