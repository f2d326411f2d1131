package domain

// Details is the shared contact/location record. Exactly one venue or
// artist references each row.
type Details struct {
	ID           int64  `gorm:"column:id;primaryKey" json:"id"`
	City         string `gorm:"column:city;size:120" json:"city"`
	State        string `gorm:"column:state;size:120" json:"state"`
	Address      string `gorm:"column:address" json:"address"`
	Phone        string `gorm:"column:phone;size:120" json:"phone"`
	Website      string `gorm:"column:website" json:"website"`
	ImageLink    string `gorm:"column:image_link;size:500" json:"image_link"`
	FacebookLink string `gorm:"column:facebook_link;size:120" json:"facebook_link"`
}

func (Details) TableName() string { return "details" }
