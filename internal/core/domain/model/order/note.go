package order

import "time"

// Note is an admin remark recorded with a status change.
type Note struct {
	Status Status
	Text   string
	At     time.Time
}
