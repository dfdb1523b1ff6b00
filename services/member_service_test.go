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

func TestCreateMemberGeneratesMembershipNumber(t *testing.T) {
	repo := newTestRepo(t)
	members := NewMemberService(repo)

	m, err := members.Create(context.Background(), MemberInput{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, m.MembershipNumber)
	assert.Equal(t, models.MemberActive, m.Status)

	m2, err := members.Create(context.Background(), MemberInput{Name: "Barbara", Email: "barbara@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, m.MembershipNumber, m2.MembershipNumber)
}

func TestCanBorrowSuspendedMember(t *testing.T) {
	repo := newTestRepo(t)
	members := NewMemberService(repo)
	m := seedMember(t, repo)
	require.NoError(t, repo.SetMemberStatus(context.Background(), m.ID, models.MemberSuspended))

	err := members.CanBorrow(context.Background(), m.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsBusinessRule(err))
}

func TestCanBorrowWithUnpaidFine(t *testing.T) {
	repo := newTestRepo(t)
	members := NewMemberService(repo)
	m := seedMember(t, repo)
	b := seedBook(t, repo, 1)
	loan := seedLoan(t, repo, b.ID, m.ID, time.Now().Add(-48*time.Hour), time.Now().Add(-24*time.Hour))
	require.NoError(t, repo.CreateFine(context.Background(), &models.Fine{MemberID: m.ID, TransactionID: loan.ID, Amount: 0.50}))

	// an unpaid fine blocks borrowing even with loan capacity to spare
	err := members.CanBorrow(context.Background(), m.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsBusinessRule(err))
}

func TestCanBorrowLoanLimit(t *testing.T) {
	repo := newTestRepo(t)
	members := NewMemberService(repo)
	m := seedMember(t, repo)
	b := seedBook(t, repo, 5)

	due := time.Now().Add(7 * 24 * time.Hour)
	seedLoan(t, repo, b.ID, m.ID, time.Now(), due)
	seedLoan(t, repo, b.ID, m.ID, time.Now(), due)
	require.NoError(t, members.CanBorrow(context.Background(), m.ID), "two open loans leave room for a third")

	seedLoan(t, repo, b.ID, m.ID, time.Now(), due)
	err := members.CanBorrow(context.Background(), m.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsBusinessRule(err))
}

func TestCheckAndSuspendForOverdue(t *testing.T) {
	repo := newTestRepo(t)
	members := NewMemberService(repo)
	m := seedMember(t, repo)
	b := seedBook(t, repo, 5)

	past := time.Now().Add(-24 * time.Hour)
	seedLoan(t, repo, b.ID, m.ID, past.Add(-14*24*time.Hour), past)
	seedLoan(t, repo, b.ID, m.ID, past.Add(-14*24*time.Hour), past)

	suspended, err := members.CheckAndSuspendForOverdue(context.Background(), m.ID)
	require.NoError(t, err)
	assert.False(t, suspended)

	seedLoan(t, repo, b.ID, m.ID, past.Add(-14*24*time.Hour), past)
	suspended, err = members.CheckAndSuspendForOverdue(context.Background(), m.ID)
	require.NoError(t, err)
	assert.True(t, suspended)

	got, err := members.Get(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MemberSuspended, got.Status)
}

func TestReactivate(t *testing.T) {
	repo := newTestRepo(t)
	members := NewMemberService(repo)
	m := seedMember(t, repo)

	_, err := members.Reactivate(context.Background(), m.ID)
	require.Error(t, err, "active member cannot be reactivated")
	assert.True(t, apperr.IsBusinessRule(err))

	require.NoError(t, repo.SetMemberStatus(context.Background(), m.ID, models.MemberSuspended))

	got, err := members.Reactivate(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MemberActive, got.Status)
}

func TestReactivateBlockedByUnpaidFine(t *testing.T) {
	repo := newTestRepo(t)
	members := NewMemberService(repo)
	m := seedMember(t, repo)
	b := seedBook(t, repo, 1)
	loan := seedLoan(t, repo, b.ID, m.ID, time.Now().Add(-48*time.Hour), time.Now().Add(-24*time.Hour))
	require.NoError(t, repo.CreateFine(context.Background(), &models.Fine{MemberID: m.ID, TransactionID: loan.ID, Amount: 1.00}))
	require.NoError(t, repo.SetMemberStatus(context.Background(), m.ID, models.MemberSuspended))

	_, err := members.Reactivate(context.Background(), m.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsBusinessRule(err))
}

func TestReactivateBlockedByOverdueLoans(t *testing.T) {
	repo := newTestRepo(t)
	members := NewMemberService(repo)
	m := seedMember(t, repo)
	b := seedBook(t, repo, 5)

	past := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 3; i++ {
		seedLoan(t, repo, b.ID, m.ID, past.Add(-14*24*time.Hour), past)
	}
	require.NoError(t, repo.SetMemberStatus(context.Background(), m.ID, models.MemberSuspended))

	_, err := members.Reactivate(context.Background(), m.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsBusinessRule(err))
}

func TestBorrowedBooks(t *testing.T) {
	repo := newTestRepo(t)
	members := NewMemberService(repo)
	m := seedMember(t, repo)
	b := seedBook(t, repo, 2)

	open := seedLoan(t, repo, b.ID, m.ID, time.Now(), time.Now().Add(14*24*time.Hour))
	closed := seedLoan(t, repo, b.ID, m.ID, time.Now().Add(-30*24*time.Hour), time.Now().Add(-16*24*time.Hour))
	require.NoError(t, repo.MarkTransactionReturned(context.Background(), closed.ID, time.Now()))

	rows, err := members.BorrowedBooks(context.Background(), m.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, open.ID, rows[0].TransactionID)
	assert.Equal(t, b.Title, rows[0].Title)
}
