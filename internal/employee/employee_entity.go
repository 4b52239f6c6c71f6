package employee

import (
	"strings"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on-leave"
)

// Record is the canonical employee shape the console works with after the
// upstream field-name variants have been reconciled. The id is always
// present; statuses from the known set are lower-case.
type Record struct {
	ID            string  `json:"id"`
	UserName      string  `json:"user_name"`
	MobileNumber  string  `json:"mobile_number"`
	Email         string  `json:"email"`
	Department    string  `json:"department"`
	Role          string  `json:"role"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Status        string  `json:"status"`
}

// RawRecord mirrors what the employee API actually returns. The primary key
// arrives as either employee_id or id, numeric or string, and
// date_of_joining may carry a full timestamp.
type RawRecord struct {
	EmployeeID    flexID  `json:"employee_id"`
	ID            flexID  `json:"id"`
	UserName      string  `json:"user_name"`
	MobileNumber  string  `json:"mobile_number"`
	Email         string  `json:"email"`
	Department    string  `json:"department"`
	Role          string  `json:"role"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Status        string  `json:"status"`
}

// flexID tolerates numeric and string primary keys.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*f = flexID(s)
	return nil
}

// Normalize reconciles a raw upstream record into the canonical shape:
// employee_id wins over id, the joining date is truncated to its date
// component, and the status is folded to the canonical lower-case value.
func (r RawRecord) Normalize() Record {
	id := string(r.EmployeeID)
	if id == "" {
		id = string(r.ID)
	}

	doj := r.DateOfJoining
	if i := strings.IndexByte(doj, 'T'); i >= 0 {
		doj = doj[:i]
	}

	return Record{
		ID:            id,
		UserName:      r.UserName,
		MobileNumber:  r.MobileNumber,
		Email:         r.Email,
		Department:    r.Department,
		Role:          r.Role,
		Salary:        r.Salary,
		DateOfJoining: doj,
		Status:        NormalizeStatus(r.Status),
	}
}

// NormalizeAll maps a raw listing into canonical records, keeping order.
func NormalizeAll(raws []RawRecord) []Record {
	records := make([]Record, len(raws))
	for i, raw := range raws {
		records[i] = raw.Normalize()
	}
	return records
}

// NormalizeStatus folds case variants of the known statuses once, at the
// data boundary, so downstream comparisons need no case handling. An absent
// status defaults to active; unknown values are preserved verbatim and
// render as a neutral category.
func NormalizeStatus(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return StatusActive
	}

	switch strings.ToLower(trimmed) {
	case StatusActive:
		return StatusActive
	case StatusInactive:
		return StatusInactive
	case StatusOnLeave:
		return StatusOnLeave
	}

	return raw
}
