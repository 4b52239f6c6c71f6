package events

import "time"

const AdminActivityTopic = "ems.admin.activity.v1"

const (
	ActionEmployeeCreated = "employee_created"
	ActionEmployeeUpdated = "employee_updated"
	ActionEmployeeDeleted = "employee_deleted"
)

// AdminActionEvent is published for every successful mutation performed
// through the console, so the activity trail survives outside request logs.
type AdminActionEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	SessionID  string    `json:"session_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
