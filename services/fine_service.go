package services

import (
	"context"
	"errors"
	"time"

	"library_management_api/apperr"
	"library_management_api/db"
	"library_management_api/models"

	"gorm.io/gorm"
)

// FinePerDay is the flat overdue charge per full 24-hour period late.
const FinePerDay = 0.50

// CalculateFine computes the charge for a loan returned at returnedAt against
// its due date. Fractional days round down; on-time or early returns owe nothing.
func CalculateFine(dueDate, returnedAt time.Time) float64 {
	daysLate := int(returnedAt.Sub(dueDate).Hours() / 24)
	if daysLate <= 0 {
		return 0
	}
	return float64(daysLate) * FinePerDay
}

type FineService struct {
	repo *db.Repo
}

func NewFineService(repo *db.Repo) *FineService { return &FineService{repo: repo} }

func (s *FineService) withRepo(r *db.Repo) *FineService { return &FineService{repo: r} }

func (s *FineService) List(ctx context.Context) ([]models.Fine, error) {
	return s.repo.ListFines(ctx)
}

func (s *FineService) Get(ctx context.Context, id uint) (*models.Fine, error) {
	f, err := s.repo.FindFineByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("fine not found")
	}
	return f, err
}

func (s *FineService) ListByMember(ctx context.Context, memberID uint) ([]models.Fine, error) {
	return s.repo.ListFinesByMember(ctx, memberID)
}

// Pay settles a fine exactly once. A second attempt is an error, not a no-op.
func (s *FineService) Pay(ctx context.Context, id uint) (*models.Fine, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.PaidAt != nil {
		return nil, apperr.BusinessRule("fine has already been paid")
	}
	now := time.Now().UTC()
	if err := s.repo.MarkFinePaid(ctx, id, now); err != nil {
		return nil, err
	}
	f.PaidAt = &now
	return f, nil
}
