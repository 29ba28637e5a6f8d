package todo

import (
	"fmt"
	"time"
)

// Item is one row of the todo_item table. ID is assigned by the server,
// Done only ever moves from false to true.
type Item struct {
	ID        int32     `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	DateAdded time.Time `json:"date_added" db:"date_added"`
	Done      bool      `json:"done" db:"done"`
}

const DoneMarker = "(✓)"

// RecentLimit is the size of the window shown by the list command.
const RecentLimit = 10

func (i Item) Marker() string {
	if i.Done {
		return DoneMarker
	}
	return ""
}

// Line renders the item as printed by list. The space before the marker is
// kept even when the marker is empty.
func (i Item) Line() string {
	return fmt.Sprintf("%d. %s %s", i.ID, i.Text, i.Marker())
}
