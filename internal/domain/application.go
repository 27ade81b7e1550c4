package domain

import "time"

// Application is the immutable snapshot of a confirmed booking draft.
// Append-only: never mutated after creation.
type Application struct {
	ID               string    `json:"id"`
	UserID           int64     `json:"user_id"`
	EventID          string    `json:"event_id"`
	EventName        string    `json:"event_name"`
	PointKind        PointKind `json:"point_kind"`
	PointName        string    `json:"point_name"`
	SelectedDate     string    `json:"selected_date"`
	SelectedTime     string    `json:"selected_time"`
	PreRepair        bool      `json:"pre_repair"`
	PreRepairComment string    `json:"pre_repair_comment,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
