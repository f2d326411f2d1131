package domain

type Venue struct {
	ID            int64  `gorm:"column:id;primaryKey" json:"id"`
	DetailsID     int64  `gorm:"column:details_id;not null" json:"details_id"`
	Name          string `gorm:"column:name" json:"name"`
	SeekingTalent bool   `gorm:"column:seeking_talent;not null;default:false" json:"seeking_talent"`
	SeekingText   string `gorm:"column:seeking_text" json:"seeking_text"`

	Details Details `gorm:"foreignKey:DetailsID" json:"details,omitempty"`
	Shows   []Show  `gorm:"foreignKey:VenueID" json:"shows,omitempty"`
	Genres  []Genre `gorm:"many2many:venue_genres" json:"genres,omitempty"`
}

func (Venue) TableName() string { return "venues" }
