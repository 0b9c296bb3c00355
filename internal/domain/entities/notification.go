package entities

import "time"

// Notification is an in-app notice produced by the database channel.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id, created_at
//
// Data keeps the serialized recipient exactly as rendered at dispatch time.

type Notification struct {
	ID        string         `json:"id"`
	UserID    uint           `json:"user_id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func (n Notification) Read() bool {
	return n.ReadAt != nil
}
