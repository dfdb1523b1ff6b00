package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"library_management_api/app"
	"library_management_api/apperr"
	"library_management_api/cache"
	"library_management_api/db"
	"library_management_api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Srv bundles the services the controllers call.
type Srv struct {
	Repo         *db.Repo
	Books        *services.BookService
	Members      *services.MemberService
	Fines        *services.FineService
	Transactions *services.TransactionService
	Cache        *cache.ReportCache
}

func GetSrv(a *app.App) *Srv {
	repo := db.NewRepo(a.DB)
	books := services.NewBookService(repo)
	members := services.NewMemberService(repo)
	fines := services.NewFineService(repo)
	return &Srv{
		Repo:         repo,
		Books:        books,
		Members:      members,
		Fines:        fines,
		Transactions: services.NewTransactionService(repo, books, members, fines),
		Cache:        cache.New(a.RDB, a.Config.CacheTTL),
	}
}

// --- helpers ---

func ok(c *gin.Context, code int, data any) {
	c.JSON(code, app.H{"success": true, "data": data})
}

// fail maps the error taxonomy onto status codes. Business-rule and
// not-found failures are expected outcomes; only the fallthrough is logged.
func fail(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, app.H{"success": false, "error": err.Error()})
	case apperr.IsValidation(err), apperr.IsBusinessRule(err):
		c.JSON(http.StatusBadRequest, app.H{"success": false, "error": err.Error()})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, app.H{"success": false, "error": "a record with this value already exists"})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusConflict, app.H{"success": false, "error": "invalid reference to related resource"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"success": false, "error": "internal server error"})
	}
}

// paramID parses a positive integer path parameter, answering 400 itself on
// bad input.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "error": "path parameter '" + name + "' must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
