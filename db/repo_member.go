package db

import (
	"context"
	"time"

	"library_management_api/models"
)

func (r *Repo) CreateMember(ctx context.Context, m *models.Member) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *Repo) FindMemberByID(ctx context.Context, id uint) (*models.Member, error) {
	var m models.Member
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) ListMembers(ctx context.Context) ([]models.Member, error) {
	var ms []models.Member
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&ms).Error
	return ms, err
}

func (r *Repo) UpdateMember(ctx context.Context, id uint, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&models.Member{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *Repo) SetMemberStatus(ctx context.Context, id uint, status string) error {
	return r.DB.WithContext(ctx).Model(&models.Member{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *Repo) DeleteMember(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Member{}, id).Error
}

// Eligibility counters.

func (r *Repo) CountUnpaidFines(ctx context.Context, memberID uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Fine{}).
		Where("member_id = ? AND paid_at IS NULL", memberID).
		Count(&n).Error
	return n, err
}

func (r *Repo) CountOpenLoans(ctx context.Context, memberID uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Transaction{}).
		Where("member_id = ? AND returned_at IS NULL", memberID).
		Count(&n).Error
	return n, err
}

func (r *Repo) CountOverdueLoans(ctx context.Context, memberID uint, asOf time.Time) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Transaction{}).
		Where("member_id = ? AND returned_at IS NULL AND due_date < ?", memberID, asOf).
		Count(&n).Error
	return n, err
}

// BorrowedBook is one row of a member's open loans joined with book info.
type BorrowedBook struct {
	TransactionID uint      `json:"transaction_id"`
	BorrowedAt    time.Time `json:"borrowed_at"`
	DueDate       time.Time `json:"due_date"`
	Status        string    `json:"status"`
	BookID        uint      `json:"book_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
}

func (r *Repo) ListBorrowedBooks(ctx context.Context, memberID uint) ([]BorrowedBook, error) {
	var rows []BorrowedBook
	err := r.DB.WithContext(ctx).Model(&models.Transaction{}).
		Select(`transactions.id AS transaction_id, transactions.borrowed_at, transactions.due_date,
			transactions.status, books.id AS book_id, books.title, books.author, books.isbn`).
		Joins("JOIN books ON books.id = transactions.book_id").
		Where("transactions.member_id = ? AND transactions.returned_at IS NULL", memberID).
		Scan(&rows).Error
	return rows, err
}
