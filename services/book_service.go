package services

import (
	"context"
	"errors"
	"fmt"

	"library_management_api/apperr"
	"library_management_api/db"
	"library_management_api/models"

	"gorm.io/gorm"
)

// allowedTransitions is the book status state machine. Everything outside it
// is rejected; status never changes through the generic update path.
var allowedTransitions = map[string][]string{
	models.BookAvailable:   {models.BookBorrowed, models.BookReserved, models.BookMaintenance},
	models.BookBorrowed:    {models.BookAvailable, models.BookMaintenance},
	models.BookReserved:    {models.BookAvailable, models.BookBorrowed, models.BookMaintenance},
	models.BookMaintenance: {models.BookAvailable},
}

type BookService struct {
	repo *db.Repo
}

func NewBookService(repo *db.Repo) *BookService { return &BookService{repo: repo} }

// withRepo binds the service to a transaction-scoped repo.
func (s *BookService) withRepo(r *db.Repo) *BookService { return &BookService{repo: r} }

func (s *BookService) List(ctx context.Context) ([]models.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *BookService) ListAvailable(ctx context.Context) ([]models.Book, error) {
	return s.repo.ListAvailableBooks(ctx)
}

func (s *BookService) Get(ctx context.Context, id uint) (*models.Book, error) {
	b, err := s.repo.FindBookByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("book not found")
	}
	return b, err
}

// BookInput is the payload for creating a book. Available copies default to
// the total when the caller leaves them unset.
type BookInput struct {
	ISBN            string `json:"isbn" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Author          string `json:"author" binding:"required"`
	Category        string `json:"category"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies *int   `json:"available_copies"`
}

func (s *BookService) Create(ctx context.Context, in BookInput) (*models.Book, error) {
	if in.TotalCopies <= 0 {
		in.TotalCopies = 1
	}
	available := in.TotalCopies
	if in.AvailableCopies != nil {
		available = *in.AvailableCopies
	}
	if available < 0 || available > in.TotalCopies {
		return nil, apperr.Validation("available_copies must be between 0 and total_copies")
	}
	b := &models.Book{
		ISBN:            in.ISBN,
		Title:           in.Title,
		Author:          in.Author,
		Category:        in.Category,
		Status:          models.BookAvailable,
		TotalCopies:     in.TotalCopies,
		AvailableCopies: available,
	}
	if err := s.repo.CreateBook(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// BookUpdate carries the generic update fields. Status is bound so a caller
// sending it gets an explicit rejection instead of a silent drop.
type BookUpdate struct {
	ISBN        *string `json:"isbn"`
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Category    *string `json:"category"`
	TotalCopies *int    `json:"total_copies"`
	Status      *string `json:"status"`
}

func (s *BookService) Update(ctx context.Context, id uint, in BookUpdate) (*models.Book, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if in.Status != nil {
		return nil, apperr.BusinessRule("cannot directly update book status: status is managed through borrowing and returning operations")
	}

	updates := map[string]any{}
	if in.ISBN != nil {
		updates["isbn"] = *in.ISBN
	}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Author != nil {
		updates["author"] = *in.Author
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.TotalCopies != nil {
		if *in.TotalCopies < 1 {
			return nil, apperr.Validation("total_copies must be at least 1")
		}
		updates["total_copies"] = *in.TotalCopies
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateBook(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteBook(ctx, id)
}

// TransitionStatus moves a book through the state machine, rejecting any edge
// the table does not allow.
func (s *BookService) TransitionStatus(ctx context.Context, id uint, next string) (*models.Book, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, st := range allowedTransitions[b.Status] {
		if st == next {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperr.BusinessRule(fmt.Sprintf("cannot transition book from '%s' to '%s'", b.Status, next))
	}
	if err := s.repo.SetBookStatus(ctx, id, next); err != nil {
		return nil, err
	}
	b.Status = next
	return b, nil
}

// DecrementAvailableCopies takes one copy out of circulation. Flips the book
// to borrowed when the last copy goes out. Must run inside the borrow
// transaction; the caller holds the row lock.
func (s *BookService) DecrementAvailableCopies(ctx context.Context, id uint) (*models.Book, error) {
	b, err := s.repo.FindBookByIDForUpdate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("book not found")
	}
	if err != nil {
		return nil, err
	}
	if b.AvailableCopies <= 0 {
		return nil, apperr.BusinessRule("no available copies of this book")
	}
	if err := s.repo.SetBookAvailableCopies(ctx, id, b.AvailableCopies-1); err != nil {
		return nil, err
	}
	if b.AvailableCopies == 1 {
		if err := s.repo.SetBookStatus(ctx, id, models.BookBorrowed); err != nil {
			return nil, err
		}
		b.Status = models.BookBorrowed
	}
	b.AvailableCopies--
	return b, nil
}

// IncrementAvailableCopies puts a copy back. Clamped at total_copies so a
// stray double return cannot drift the count past the owned stock.
func (s *BookService) IncrementAvailableCopies(ctx context.Context, id uint) (*models.Book, error) {
	b, err := s.repo.FindBookByIDForUpdate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("book not found")
	}
	if err != nil {
		return nil, err
	}
	n := b.AvailableCopies + 1
	if n > b.TotalCopies {
		n = b.TotalCopies
	}
	if err := s.repo.SetBookAvailableCopies(ctx, id, n); err != nil {
		return nil, err
	}
	if b.Status == models.BookBorrowed {
		if err := s.repo.SetBookStatus(ctx, id, models.BookAvailable); err != nil {
			return nil, err
		}
		b.Status = models.BookAvailable
	}
	b.AvailableCopies = n
	return b, nil
}
