package artist

import "strings"

// NotFoundMarker fills the ID field of the sentinel record assembled for
// an id that matches no artist.
const NotFoundMarker = "ID Error: Not Found!"

const startTimeDisplay = "2006-01-02 15:04:05"

// Form carries a create/edit submission. Artists have no address field.
type Form struct {
	Name         string   `form:"name"`
	City         string   `form:"city"`
	State        string   `form:"state"`
	Phone        string   `form:"phone"`
	FacebookLink string   `form:"facebook_link"`
	Genres       []string `form:"genres"`
}

func (f *Form) Trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Phone = strings.TrimSpace(f.Phone)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
}

type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SearchResults struct {
	Count int   `json:"count"`
	Data  []Ref `json:"data"`
}

// PageShow is one show entry on an artist page, resolved to the hosting
// venue.
type PageShow struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// Page is the artist detail view model; ID is a string so the sentinel
// record fits the same shape.
type Page struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Genres             []string   `json:"genres"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	Phone              string     `json:"phone"`
	Website            string     `json:"website"`
	FacebookLink       string     `json:"facebook_link"`
	SeekingVenue       bool       `json:"seeking_venue"`
	SeekingDescription string     `json:"seeking_description"`
	ImageLink          string     `json:"image_link"`
	PastShows          []PageShow `json:"past_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShows      []PageShow `json:"upcoming_shows"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

type EditForm struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}
