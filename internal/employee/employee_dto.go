package employee

// CreateEmployeeRequest carries the add-employee form. Field names match the
// wire shape of the upstream create endpoint; password_hash holds the
// submitted secret and is bcrypt-hashed by the service before transmission.
type CreateEmployeeRequest struct {
	UserName      string  `json:"user_name"`
	MobileNumber  string  `json:"mobile_number"`
	Email         string  `json:"email"`
	Department    string  `json:"department"`
	Role          string  `json:"role"`
	Salary        float64 `json:"salary"`
	PasswordHash  string  `json:"password_hash"`
	DateOfJoining string  `json:"date_of_joining"`
	Status        string  `json:"status"`
}

// UpdateEmployeeRequest is the same subset without the password; editing an
// existing employee never requires one.
type UpdateEmployeeRequest struct {
	UserName      string  `json:"user_name"`
	MobileNumber  string  `json:"mobile_number"`
	Email         string  `json:"email"`
	Department    string  `json:"department"`
	Role          string  `json:"role"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Status        string  `json:"status"`
}

// BrowseQuery collects the table controls: upstream listing scope, free-text
// search term, client-side status filter and the 0-based page window.
type BrowseQuery struct {
	Scope  string
	Term   string
	Status string
	Page   int
	Size   int
}

// WorkingSetStats are the header-card counters over the unfiltered working
// set of the last successful fetch.
type WorkingSetStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// BrowseData is the data portion of the browse response; pagination lives in
// the envelope meta.
type BrowseData struct {
	Employees []Record        `json:"employees"`
	Stats     WorkingSetStats `json:"stats"`
}
