package domain

type Artist struct {
	ID           int64  `gorm:"column:id;primaryKey" json:"id"`
	DetailsID    int64  `gorm:"column:details_id;not null" json:"details_id"`
	Name         string `gorm:"column:name" json:"name"`
	SeekingVenue bool   `gorm:"column:seeking_venue;not null;default:false" json:"seeking_venue"`
	SeekingText  string `gorm:"column:seeking_text" json:"seeking_text"`

	Details Details `gorm:"foreignKey:DetailsID" json:"details,omitempty"`
	Shows   []Show  `gorm:"foreignKey:ArtistID" json:"shows,omitempty"`
	Genres  []Genre `gorm:"many2many:artist_genres" json:"genres,omitempty"`
}

func (Artist) TableName() string { return "artists" }
