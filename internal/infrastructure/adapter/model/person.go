package model

import (
	"time"
)

// Person represents the database model for people records
type Person struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null"`
	Surname   string    `gorm:"not null"`
	Birth     string    `gorm:"not null"`
	Points    int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Person
func (Person) TableName() string {
	return "people"
}
