package models

import "time"

const FineTable = "fines"

// Fine is created at return time when a loan comes back past its due date.
// Immutable afterwards except for PaidAt.
type Fine struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	MemberID      uint       `gorm:"index;not null" json:"member_id"`
	TransactionID uint       `gorm:"index;not null" json:"transaction_id"`
	Amount        float64    `gorm:"not null" json:"amount"`
	PaidAt        *time.Time `gorm:"index" json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`

	Member      *Member      `gorm:"constraint:OnDelete:CASCADE" json:"member,omitempty"`
	Transaction *Transaction `gorm:"constraint:OnDelete:CASCADE" json:"transaction,omitempty"`
}

func (Fine) TableName() string { return FineTable }
