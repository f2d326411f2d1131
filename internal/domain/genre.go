package domain

// Genre is pre-seeded reference data. The app never creates or deletes
// genres; create/edit flows only look them up by name.
type Genre struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;uniqueIndex" json:"name"`
}

func (Genre) TableName() string { return "genres" }
