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

// LoanPeriod is the fixed borrow window.
const LoanPeriod = 14 * 24 * time.Hour

// TransactionService orchestrates borrow and return as single units of work
// across books, members and fines.
type TransactionService struct {
	repo    *db.Repo
	books   *BookService
	members *MemberService
	fines   *FineService
}

func NewTransactionService(repo *db.Repo, books *BookService, members *MemberService, fines *FineService) *TransactionService {
	return &TransactionService{repo: repo, books: books, members: members, fines: fines}
}

func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *TransactionService) Get(ctx context.Context, id uint) (*models.Transaction, error) {
	t, err := s.repo.FindTransactionByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("transaction not found")
	}
	return t, err
}

// Borrow lends a book to a member. Eligibility, availability, the loan row
// and the copy decrement all commit or roll back together; the book row stays
// locked for the duration so the last copy cannot be lent twice.
func (s *TransactionService) Borrow(ctx context.Context, memberID, bookID uint) (*models.Transaction, error) {
	var created *models.Transaction
	err := s.repo.InTx(ctx, func(r *db.Repo) error {
		if err := s.members.withRepo(r).CanBorrow(ctx, memberID); err != nil {
			return err
		}

		book, err := r.FindBookByIDForUpdate(ctx, bookID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("book not found")
		}
		if err != nil {
			return err
		}
		if book.AvailableCopies <= 0 || book.Status != models.BookAvailable {
			return apperr.BusinessRule("book is not available for borrowing")
		}

		now := time.Now().UTC()
		t := &models.Transaction{
			BookID:     bookID,
			MemberID:   memberID,
			BorrowedAt: now,
			DueDate:    now.Add(LoanPeriod),
			Status:     models.TransactionActive,
		}
		if err := r.CreateTransaction(ctx, t); err != nil {
			return err
		}

		if _, err := s.books.withRepo(r).DecrementAvailableCopies(ctx, bookID); err != nil {
			return err
		}

		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ReturnResult is what a completed return hands back to the caller.
type ReturnResult struct {
	Transaction     *models.Transaction `json:"transaction"`
	Fine            *models.Fine        `json:"fine,omitempty"`
	MemberSuspended bool                `json:"member_suspended"`
}

// Return closes a loan. Fine accrual, the returned mark, the copy increment
// and the suspension check are one unit of work.
func (s *TransactionService) Return(ctx context.Context, transactionID uint) (*ReturnResult, error) {
	var result *ReturnResult
	err := s.repo.InTx(ctx, func(r *db.Repo) error {
		t, err := r.FindTransactionByIDForUpdate(ctx, transactionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("transaction not found")
		}
		if err != nil {
			return err
		}
		if t.ReturnedAt != nil {
			return apperr.BusinessRule("book has already been returned")
		}

		now := time.Now().UTC()

		var fine *models.Fine
		if amount := CalculateFine(t.DueDate, now); amount > 0 {
			fine = &models.Fine{
				MemberID:      t.MemberID,
				TransactionID: t.ID,
				Amount:        amount,
			}
			if err := r.CreateFine(ctx, fine); err != nil {
				return err
			}
		}

		if err := r.MarkTransactionReturned(ctx, t.ID, now); err != nil {
			return err
		}
		t.ReturnedAt = &now
		t.Status = models.TransactionReturned

		if _, err := s.books.withRepo(r).IncrementAvailableCopies(ctx, t.BookID); err != nil {
			return err
		}

		suspended, err := s.members.withRepo(r).CheckAndSuspendForOverdue(ctx, t.MemberID)
		if err != nil {
			return err
		}

		result = &ReturnResult{Transaction: t, Fine: fine, MemberSuspended: suspended}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListOverdue materializes the overdue label on every open loan past its due
// date, then returns the labeled set. Calling it again without new activity
// returns the same set.
func (s *TransactionService) ListOverdue(ctx context.Context) ([]models.Transaction, error) {
	if _, err := s.repo.MarkOverdueTransactions(ctx, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.repo.ListOverdueTransactions(ctx)
}
