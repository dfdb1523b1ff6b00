package services

import (
	"context"
	"errors"
	"time"

	"library_management_api/apperr"
	"library_management_api/db"
	"library_management_api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Eligibility thresholds.
const (
	MaxOpenLoans        = 3
	SuspendOverdueCount = 3
)

type MemberService struct {
	repo *db.Repo
}

func NewMemberService(repo *db.Repo) *MemberService { return &MemberService{repo: repo} }

func (s *MemberService) withRepo(r *db.Repo) *MemberService { return &MemberService{repo: r} }

func (s *MemberService) List(ctx context.Context) ([]models.Member, error) {
	return s.repo.ListMembers(ctx)
}

func (s *MemberService) Get(ctx context.Context, id uint) (*models.Member, error) {
	m, err := s.repo.FindMemberByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("member not found")
	}
	return m, err
}

type MemberInput struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	MembershipNumber string `json:"membership_number"`
}

func (s *MemberService) Create(ctx context.Context, in MemberInput) (*models.Member, error) {
	number := in.MembershipNumber
	if number == "" {
		number = uuid.NewString()
	}
	m := &models.Member{
		Name:             in.Name,
		Email:            in.Email,
		MembershipNumber: number,
		Status:           models.MemberActive,
	}
	if err := s.repo.CreateMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// MemberUpdate deliberately has no status field: suspension and reactivation
// go through the eligibility operations only.
type MemberUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (s *MemberService) Update(ctx context.Context, id uint, in MemberUpdate) (*models.Member, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateMember(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *MemberService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteMember(ctx, id)
}

func (s *MemberService) BorrowedBooks(ctx context.Context, id uint) ([]db.BorrowedBook, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListBorrowedBooks(ctx, id)
}

// CanBorrow checks every eligibility gate. No side effects.
func (s *MemberService) CanBorrow(ctx context.Context, id uint) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if m.Status == models.MemberSuspended {
		return apperr.BusinessRule("member is suspended and cannot borrow books")
	}
	unpaid, err := s.repo.CountUnpaidFines(ctx, id)
	if err != nil {
		return err
	}
	if unpaid > 0 {
		return apperr.BusinessRule("cannot borrow books with unpaid fines, please clear all fines first")
	}
	open, err := s.repo.CountOpenLoans(ctx, id)
	if err != nil {
		return err
	}
	if open >= MaxOpenLoans {
		return apperr.BusinessRule("borrowing limit exceeded, maximum 3 books can be borrowed at once")
	}
	return nil
}

// CheckAndSuspendForOverdue suspends the member when they hold 3 or more open
// loans past their due dates. Reports whether a suspension happened.
func (s *MemberService) CheckAndSuspendForOverdue(ctx context.Context, id uint) (bool, error) {
	overdue, err := s.repo.CountOverdueLoans(ctx, id, time.Now().UTC())
	if err != nil {
		return false, err
	}
	if overdue >= SuspendOverdueCount {
		if err := s.repo.SetMemberStatus(ctx, id, models.MemberSuspended); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Reactivate lifts a suspension once the member is back under every gate.
func (s *MemberService) Reactivate(ctx context.Context, id uint) (*models.Member, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != models.MemberSuspended {
		return nil, apperr.BusinessRule("member is not suspended")
	}
	unpaid, err := s.repo.CountUnpaidFines(ctx, id)
	if err != nil {
		return nil, err
	}
	if unpaid > 0 {
		return nil, apperr.BusinessRule("cannot reactivate member with unpaid fines")
	}
	overdue, err := s.repo.CountOverdueLoans(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if overdue >= SuspendOverdueCount {
		return nil, apperr.BusinessRule("cannot reactivate member with 3 or more overdue books")
	}
	if err := s.repo.SetMemberStatus(ctx, id, models.MemberActive); err != nil {
		return nil, err
	}
	m.Status = models.MemberActive
	return m, nil
}
