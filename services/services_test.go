package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"library_management_api/db"
	"library_management_api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepo opens a private in-memory SQLite database with the production
// schema. One connection only, so every query sees the same database.
func newTestRepo(t *testing.T) *db.Repo {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	return db.NewRepo(gdb)
}

func newTestServices(t *testing.T) (*db.Repo, *BookService, *MemberService, *FineService, *TransactionService) {
	t.Helper()
	repo := newTestRepo(t)
	books := NewBookService(repo)
	members := NewMemberService(repo)
	fines := NewFineService(repo)
	return repo, books, members, fines, NewTransactionService(repo, books, members, fines)
}

var seedSeq int

func seedBook(t *testing.T, r *db.Repo, copies int) *models.Book {
	t.Helper()
	seedSeq++
	b := &models.Book{
		ISBN:            fmt.Sprintf("978-%06d", seedSeq),
		Title:           "The Go Programming Language",
		Author:          "Donovan & Kernighan",
		Status:          models.BookAvailable,
		TotalCopies:     copies,
		AvailableCopies: copies,
	}
	require.NoError(t, r.CreateBook(context.Background(), b))
	return b
}

func seedMember(t *testing.T, r *db.Repo) *models.Member {
	t.Helper()
	seedSeq++
	m := &models.Member{
		Name:             "Ada Lovelace",
		Email:            fmt.Sprintf("member%d@example.com", seedSeq),
		MembershipNumber: fmt.Sprintf("M-%06d", seedSeq),
		Status:           models.MemberActive,
	}
	require.NoError(t, r.CreateMember(context.Background(), m))
	return m
}

// seedLoan inserts a loan row directly, bypassing Borrow, so tests can place
// due dates wherever they need them.
func seedLoan(t *testing.T, r *db.Repo, bookID, memberID uint, borrowedAt, dueDate time.Time) *models.Transaction {
	t.Helper()
	tx := &models.Transaction{
		BookID:     bookID,
		MemberID:   memberID,
		BorrowedAt: borrowedAt,
		DueDate:    dueDate,
		Status:     models.TransactionActive,
	}
	require.NoError(t, r.CreateTransaction(context.Background(), tx))
	return tx
}
