package services

import (
	"context"
	"testing"
	"time"

	"library_management_api/apperr"
	"library_management_api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFine(t *testing.T) {
	due := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		returnedAt time.Time
		want       float64
	}{
		{"five days late", due.Add(5 * 24 * time.Hour), 2.50},
		{"fractional day rounds down", due.Add(5*24*time.Hour + 23*time.Hour), 2.50},
		{"six days late", due.Add(6 * 24 * time.Hour), 3.00},
		{"under one day late", due.Add(20 * time.Hour), 0},
		{"exactly on time", due, 0},
		{"early return", due.Add(-3 * 24 * time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateFine(due, tt.returnedAt))
		})
	}
}

func TestPayFine(t *testing.T) {
	repo := newTestRepo(t)
	fines := NewFineService(repo)
	m := seedMember(t, repo)
	b := seedBook(t, repo, 1)
	loan := seedLoan(t, repo, b.ID, m.ID, time.Now().Add(-20*24*time.Hour), time.Now().Add(-6*24*time.Hour))

	f := &models.Fine{MemberID: m.ID, TransactionID: loan.ID, Amount: 3.00}
	require.NoError(t, repo.CreateFine(context.Background(), f))

	paid, err := fines.Pay(context.Background(), f.ID)
	require.NoError(t, err)
	require.NotNil(t, paid.PaidAt)

	// a second attempt is an error, not a no-op
	_, err = fines.Pay(context.Background(), f.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsBusinessRule(err))

	got, err := fines.Get(context.Background(), f.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PaidAt)
	assert.WithinDuration(t, *paid.PaidAt, *got.PaidAt, time.Second)
}

func TestPayFineNotFound(t *testing.T) {
	repo := newTestRepo(t)
	fines := NewFineService(repo)

	_, err := fines.Pay(context.Background(), 4242)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListFinesByMember(t *testing.T) {
	repo := newTestRepo(t)
	fines := NewFineService(repo)
	m := seedMember(t, repo)
	other := seedMember(t, repo)
	b := seedBook(t, repo, 2)
	loan := seedLoan(t, repo, b.ID, m.ID, time.Now().Add(-20*24*time.Hour), time.Now().Add(-6*24*time.Hour))
	otherLoan := seedLoan(t, repo, b.ID, other.ID, time.Now().Add(-20*24*time.Hour), time.Now().Add(-6*24*time.Hour))

	require.NoError(t, repo.CreateFine(context.Background(), &models.Fine{MemberID: m.ID, TransactionID: loan.ID, Amount: 3.00}))
	require.NoError(t, repo.CreateFine(context.Background(), &models.Fine{MemberID: other.ID, TransactionID: otherLoan.ID, Amount: 0.50}))

	got, err := fines.ListByMember(context.Background(), m.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3.00, got[0].Amount)
}
