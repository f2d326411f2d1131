package domain

import "time"

// Show is one booking joining an artist and a venue. Upcoming is decided
// once at creation time (submitted start time vs. now) and is never
// recomputed afterwards; listings partition on the stored value.
type Show struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	ArtistID  int64     `gorm:"column:artist_id;not null" json:"artist_id"`
	VenueID   int64     `gorm:"column:venue_id;not null" json:"venue_id"`
	Upcoming  bool      `gorm:"column:upcoming;not null" json:"upcoming"`
	StartTime time.Time `gorm:"column:start_time" json:"start_time"`

	Artist Artist `gorm:"foreignKey:ArtistID" json:"-"`
	Venue  Venue  `gorm:"foreignKey:VenueID" json:"-"`
}

func (Show) TableName() string { return "shows" }
