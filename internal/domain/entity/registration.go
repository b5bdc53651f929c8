package entity

import (
	"time"
)

// Registration is one persisted registration submission. Rows are immutable:
// the service only ever inserts and reads, never updates or deletes.
type Registration struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Fullname      string    `gorm:"type:varchar(255);not null" json:"Fullname"`
	EmailID       string    `gorm:"type:varchar(255);not null" json:"EmailID"`
	ContactNumber string    `gorm:"type:varchar(20);not null" json:"ContactNumber"`
	Gender        string    `gorm:"type:varchar(10);not null" json:"Gender"`
	DateOfBirth   string    `gorm:"type:varchar(20);not null" json:"DateOfBirth"`
	City          string    `gorm:"type:varchar(100);not null" json:"City"`
	Area          string    `gorm:"type:varchar(100);not null" json:"Area"`
	Password      string    `gorm:"type:text;not null" json:"-"`
	ProfilePhoto  string    `gorm:"type:text;not null" json:"ProfilePhoto"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Registration) TableName() string {
	return "registrations"
}
