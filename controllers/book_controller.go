package controllers

import (
	"net/http"

	"library_management_api/app"
	"library_management_api/services"

	"github.com/gin-gonic/gin"
)

type BookController struct{ *Srv }

func NewBookController(s *Srv) *BookController { return &BookController{Srv: s} }

func (bc *BookController) ListBooks(c *gin.Context) {
	ctx := c.Request.Context()
	if books, err := bc.Cache.Books(ctx); err == nil {
		ok(c, http.StatusOK, books)
		return
	}
	books, err := bc.Books.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	_ = bc.Cache.SaveBooks(ctx, books)
	ok(c, http.StatusOK, books)
}

func (bc *BookController) ListAvailableBooks(c *gin.Context) {
	ctx := c.Request.Context()
	if books, err := bc.Cache.AvailableBooks(ctx); err == nil {
		ok(c, http.StatusOK, books)
		return
	}
	books, err := bc.Books.ListAvailable(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	_ = bc.Cache.SaveAvailableBooks(ctx, books)
	ok(c, http.StatusOK, books)
}

func (bc *BookController) GetBook(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	book, err := bc.Books.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, book)
}

func (bc *BookController) CreateBook(c *gin.Context) {
	var in services.BookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "error": err.Error()})
		return
	}
	book, err := bc.Books.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	_ = bc.Cache.InvalidateBooks(c.Request.Context())
	ok(c, http.StatusCreated, book)
}

func (bc *BookController) UpdateBook(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var in services.BookUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "error": err.Error()})
		return
	}
	book, err := bc.Books.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	_ = bc.Cache.InvalidateBooks(c.Request.Context())
	ok(c, http.StatusOK, book)
}

func (bc *BookController) DeleteBook(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	if err := bc.Books.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	// Deleting a book cascades to its loans, so the overdue report moves too.
	_ = bc.Cache.InvalidateLoans(c.Request.Context())
	c.JSON(http.StatusOK, app.H{"success": true, "message": "book deleted"})
}
