package db

import (
	"context"
	"time"

	"library_management_api/models"
)

func (r *Repo) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *Repo) FindTransactionByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := r.DB.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindTransactionByIDForUpdate locks the loan row so a double return cannot
// slip past the already-returned check.
func (r *Repo) FindTransactionByIDForUpdate(ctx context.Context, id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := r.forUpdate(r.DB.WithContext(ctx)).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repo) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var ts []models.Transaction
	err := r.DB.WithContext(ctx).Order("borrowed_at DESC").Find(&ts).Error
	return ts, err
}

func (r *Repo) MarkTransactionReturned(ctx context.Context, id uint, returnedAt time.Time) error {
	return r.DB.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"returned_at": returnedAt,
			"status":      models.TransactionReturned,
		}).Error
}

// MarkOverdueTransactions relabels every open active loan past its due date.
// Re-running it is a no-op for rows already labeled.
func (r *Repo) MarkOverdueTransactions(ctx context.Context, asOf time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&models.Transaction{}).
		Where("returned_at IS NULL AND status = ? AND due_date < ?", models.TransactionActive, asOf).
		Update("status", models.TransactionOverdue)
	return res.RowsAffected, res.Error
}

func (r *Repo) ListOverdueTransactions(ctx context.Context) ([]models.Transaction, error) {
	var ts []models.Transaction
	err := r.DB.WithContext(ctx).
		Where("status = ?", models.TransactionOverdue).
		Order("due_date ASC").
		Find(&ts).Error
	return ts, err
}
