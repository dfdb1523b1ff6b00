package models

import "time"

const BookTable = "books"

// Book lifecycle states.
const (
	BookAvailable   = "available"
	BookBorrowed    = "borrowed"
	BookReserved    = "reserved"
	BookMaintenance = "maintenance"
)

type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ISBN            string    `gorm:"size:20;uniqueIndex;not null" json:"isbn"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Author          string    `gorm:"size:255;not null" json:"author"`
	Category        string    `gorm:"size:100" json:"category,omitempty"`
	Status          string    `gorm:"size:20;not null;default:'available';index" json:"status"`
	TotalCopies     int       `gorm:"not null;default:1" json:"total_copies"`
	AvailableCopies int       `gorm:"not null;default:1" json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Book) TableName() string { return BookTable }
