package models

// UserEvent is published to Kafka after a successful user mutation.
type UserEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"` // user.created, user.updated, user.blocked, user.unblocked, user.deleted
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// ImportCompletedEvent is published once per finished import or
// resolution batch.
type ImportCompletedEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"` // user.import.completed, user.import.resolved
	Strategy  string `json:"strategy,omitempty"`
	Total     int    `json:"total"`
	Imported  int    `json:"imported"`
	Updated   int    `json:"updated"`
	Skipped   int    `json:"skipped"`
	Timestamp int64  `json:"timestamp"`
}
