package models

import "time"

const MemberTable = "members"

// Member states. Status is owned by the eligibility rules in services;
// the generic update path never touches it.
const (
	MemberActive    = "active"
	MemberSuspended = "suspended"
)

type Member struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Email            string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	MembershipNumber string    `gorm:"size:64;uniqueIndex;not null" json:"membership_number"`
	Status           string    `gorm:"size:20;not null;default:'active';index" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Member) TableName() string { return MemberTable }
