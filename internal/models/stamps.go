package models

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Stamps holds the split audit columns every business record carries.
// create_date/create_time are assigned once at creation and never change;
// modify_date/modify_time stay null until the first update.
type Stamps struct {
	CreateDate string  `gorm:"size:10;not null;index" json:"create_date"`
	CreateTime string  `gorm:"size:8;not null" json:"create_time"`
	ModifyDate *string `gorm:"size:10" json:"modify_date"`
	ModifyTime *string `gorm:"size:8" json:"modify_time"`
}

// Stamp sets the creation columns from now.
func (s *Stamps) Stamp(now time.Time) {
	s.CreateDate = now.Format(DateLayout)
	s.CreateTime = now.Format(TimeLayout)
}

// Restamp sets the modification columns from now.
func (s *Stamps) Restamp(now time.Time) {
	d := now.Format(DateLayout)
	t := now.Format(TimeLayout)
	s.ModifyDate = &d
	s.ModifyTime = &t
}
