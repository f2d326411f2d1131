package venue

import "strings"

// NotFoundMarker is the literal placed in the ID field of a detail page
// assembled for an id that matches no venue. The rest of the record stays
// blank; detail pages render a sentinel instead of failing.
const NotFoundMarker = "ID Error: Not Found!"

const startTimeDisplay = "2006-01-02 15:04:05"

// Form carries a create/edit submission. Only the fields present in the
// HTML forms appear here.
type Form struct {
	Name         string   `form:"name"`
	City         string   `form:"city"`
	State        string   `form:"state"`
	Address      string   `form:"address"`
	Phone        string   `form:"phone"`
	FacebookLink string   `form:"facebook_link"`
	Genres       []string `form:"genres"`
}

// Trim strips surrounding whitespace from every free-text field. No other
// normalization happens anywhere.
func (f *Form) Trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
}

// Ref is the id/name pair used by listings and search results.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Area groups the venues of one (city, state) pair.
type Area struct {
	City   string `json:"city"`
	State  string `json:"state"`
	Venues []Ref  `json:"venues"`
}

type SearchResults struct {
	Count int   `json:"count"`
	Data  []Ref `json:"data"`
}

// PageShow is one show entry on a venue page, resolved to the performing
// artist.
type PageShow struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Page is the venue detail view model. ID is a string so the sentinel
// record can carry the not-found marker in the same shape.
type Page struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Genres             []string   `json:"genres"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	Address            string     `json:"address"`
	Phone              string     `json:"phone"`
	Website            string     `json:"website"`
	FacebookLink       string     `json:"facebook_link"`
	SeekingTalent      bool       `json:"seeking_talent"`
	SeekingDescription string     `json:"seeking_description"`
	ImageLink          string     `json:"image_link"`
	PastShows          []PageShow `json:"past_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShows      []PageShow `json:"upcoming_shows"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// EditForm prefills the edit page for an existing venue.
type EditForm struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}
