package routes

import (
	"library_management_api/app"
	"library_management_api/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	bookCtl := controllers.NewBookController(s)
	memberCtl := controllers.NewMemberController(s)
	txCtl := controllers.NewTransactionController(s)
	fineCtl := controllers.NewFineController(s)

	books := r.Group("/books")
	{
		books.GET("", bookCtl.ListBooks)
		books.GET("/available", bookCtl.ListAvailableBooks)
		books.GET("/:id", bookCtl.GetBook)
		books.POST("", bookCtl.CreateBook)
		books.PUT("/:id", bookCtl.UpdateBook)
		books.DELETE("/:id", bookCtl.DeleteBook)
	}

	members := r.Group("/members")
	{
		members.GET("", memberCtl.ListMembers)
		members.GET("/:id", memberCtl.GetMember)
		members.GET("/:id/borrowed-books", memberCtl.GetBorrowedBooks)
		members.POST("", memberCtl.CreateMember)
		members.POST("/:id/reactivate", memberCtl.ReactivateMember)
		members.PUT("/:id", memberCtl.UpdateMember)
		members.DELETE("/:id", memberCtl.DeleteMember)
	}

	transactions := r.Group("/transactions")
	{
		transactions.GET("", txCtl.ListTransactions)
		transactions.GET("/overdue", txCtl.ListOverdue)
		transactions.GET("/:id", txCtl.GetTransaction)
		transactions.POST("/borrow", txCtl.Borrow)
		transactions.PATCH("/:id/return", txCtl.Return)
	}

	fines := r.Group("/fines")
	{
		fines.GET("", fineCtl.ListFines)
		fines.GET("/member/:memberId", fineCtl.ListMemberFines)
		fines.GET("/:id", fineCtl.GetFine)
		fines.PATCH("/:id/pay", fineCtl.PayFine)
	}
}
