package db

import (
	"context"

	"library_management_api/models"
)

func (r *Repo) CreateBook(ctx context.Context, b *models.Book) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *Repo) FindBookByID(ctx context.Context, id uint) (*models.Book, error) {
	var b models.Book
	if err := r.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// FindBookByIDForUpdate locks the book row for the rest of the enclosing
// transaction, so two concurrent borrows cannot both see the last copy.
func (r *Repo) FindBookByIDForUpdate(ctx context.Context, id uint) (*models.Book, error) {
	var b models.Book
	if err := r.forUpdate(r.DB.WithContext(ctx)).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&books).Error
	return books, err
}

func (r *Repo) ListAvailableBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := r.DB.WithContext(ctx).
		Where("available_copies > 0 AND status = ?", models.BookAvailable).
		Order("created_at DESC").
		Find(&books).Error
	return books, err
}

func (r *Repo) UpdateBook(ctx context.Context, id uint, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&models.Book{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *Repo) SetBookStatus(ctx context.Context, id uint, status string) error {
	return r.DB.WithContext(ctx).Model(&models.Book{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *Repo) SetBookAvailableCopies(ctx context.Context, id uint, n int) error {
	return r.DB.WithContext(ctx).Model(&models.Book{}).
		Where("id = ?", id).
		Update("available_copies", n).Error
}

func (r *Repo) DeleteBook(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Book{}, id).Error
}
