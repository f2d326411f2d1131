package venue

import "errors"

// ErrInUse means the venue still has shows booked; the foreign key on
// shows.venue_id rejects the delete.
var ErrInUse = errors.New("venue still referenced by shows")
