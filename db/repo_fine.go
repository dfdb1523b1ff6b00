package db

import (
	"context"
	"time"

	"library_management_api/models"
)

func (r *Repo) CreateFine(ctx context.Context, f *models.Fine) error {
	return r.DB.WithContext(ctx).Create(f).Error
}

func (r *Repo) FindFineByID(ctx context.Context, id uint) (*models.Fine, error) {
	var f models.Fine
	if err := r.DB.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repo) ListFines(ctx context.Context) ([]models.Fine, error) {
	var fs []models.Fine
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&fs).Error
	return fs, err
}

func (r *Repo) ListFinesByMember(ctx context.Context, memberID uint) ([]models.Fine, error) {
	var fs []models.Fine
	err := r.DB.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&fs).Error
	return fs, err
}

func (r *Repo) MarkFinePaid(ctx context.Context, id uint, paidAt time.Time) error {
	return r.DB.WithContext(ctx).Model(&models.Fine{}).
		Where("id = ?", id).
		Update("paid_at", paidAt).Error
}
