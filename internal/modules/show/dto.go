package show

import "strings"

const startTimeDisplay = "2006-01-02 15:04:05"

// Form carries a new-show submission. Ids arrive as free text and are
// trimmed before parsing.
type Form struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`
}

func (f *Form) Trim() {
	f.ArtistID = strings.TrimSpace(f.ArtistID)
	f.VenueID = strings.TrimSpace(f.VenueID)
	f.StartTime = strings.TrimSpace(f.StartTime)
}

// Summary is one row of the flat show listing: the show resolved to its
// artist (with image) and venue. No grouping, no pagination.
type Summary struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	StartTime       string `json:"start_time"`
}
