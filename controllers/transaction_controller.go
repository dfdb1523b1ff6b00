package controllers

import (
	"fmt"
	"net/http"

	"library_management_api/app"

	"github.com/gin-gonic/gin"
)

type TransactionController struct{ *Srv }

func NewTransactionController(s *Srv) *TransactionController {
	return &TransactionController{Srv: s}
}

func (tc *TransactionController) ListTransactions(c *gin.Context) {
	ts, err := tc.Transactions.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, ts)
}

func (tc *TransactionController) GetTransaction(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	t, err := tc.Transactions.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, t)
}

// ListOverdue relabels open past-due loans before reading them, so the cached
// report is only reused within its TTL.
func (tc *TransactionController) ListOverdue(c *gin.Context) {
	ctx := c.Request.Context()
	if ts, err := tc.Cache.OverdueTransactions(ctx); err == nil {
		ok(c, http.StatusOK, ts)
		return
	}
	ts, err := tc.Transactions.ListOverdue(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	_ = tc.Cache.SaveOverdueTransactions(ctx, ts)
	ok(c, http.StatusOK, ts)
}

func (tc *TransactionController) Borrow(c *gin.Context) {
	var in struct {
		MemberID uint `json:"member_id" binding:"required"`
		BookID   uint `json:"book_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "error": err.Error()})
		return
	}
	t, err := tc.Transactions.Borrow(c.Request.Context(), in.MemberID, in.BookID)
	if err != nil {
		fail(c, err)
		return
	}
	_ = tc.Cache.InvalidateLoans(c.Request.Context())
	c.JSON(http.StatusCreated, app.H{
		"success": true,
		"message": "book borrowed successfully",
		"data":    t,
	})
}

func (tc *TransactionController) Return(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	result, err := tc.Transactions.Return(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	_ = tc.Cache.InvalidateLoans(c.Request.Context())

	resp := app.H{
		"success": true,
		"message": "book returned successfully",
		"data":    result.Transaction,
	}
	if result.Fine != nil {
		resp["fine"] = result.Fine
		resp["message"] = fmt.Sprintf("book returned successfully, a fine of $%.2f has been applied", result.Fine.Amount)
	}
	if result.MemberSuspended {
		resp["warning"] = "member has been suspended due to 3 or more overdue books"
	}
	c.JSON(http.StatusOK, resp)
}
