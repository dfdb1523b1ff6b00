package models

import "time"

const TransactionTable = "transactions"

// Loan record states. "overdue" is a materialized label for open loans past
// their due date, applied by the overdue sweep; "returned" is terminal.
const (
	TransactionActive   = "active"
	TransactionReturned = "returned"
	TransactionOverdue  = "overdue"
)

type Transaction struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	BookID     uint       `gorm:"index;not null" json:"book_id"`
	MemberID   uint       `gorm:"index;not null" json:"member_id"`
	BorrowedAt time.Time  `gorm:"not null" json:"borrowed_at"`
	DueDate    time.Time  `gorm:"not null" json:"due_date"`
	ReturnedAt *time.Time `gorm:"index" json:"returned_at,omitempty"`
	Status     string     `gorm:"size:20;not null;default:'active';index" json:"status"`

	Book   *Book   `gorm:"constraint:OnDelete:CASCADE" json:"book,omitempty"`
	Member *Member `gorm:"constraint:OnDelete:CASCADE" json:"member,omitempty"`
}

func (Transaction) TableName() string { return TransactionTable }
