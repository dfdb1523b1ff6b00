package controllers

import (
	"net/http"

	"library_management_api/app"
	"library_management_api/services"

	"github.com/gin-gonic/gin"
)

type MemberController struct{ *Srv }

func NewMemberController(s *Srv) *MemberController { return &MemberController{Srv: s} }

func (mc *MemberController) ListMembers(c *gin.Context) {
	members, err := mc.Members.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, members)
}

func (mc *MemberController) GetMember(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	member, err := mc.Members.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, member)
}

func (mc *MemberController) GetBorrowedBooks(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	rows, err := mc.Members.BorrowedBooks(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

func (mc *MemberController) CreateMember(c *gin.Context) {
	var in services.MemberInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "error": err.Error()})
		return
	}
	member, err := mc.Members.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, member)
}

func (mc *MemberController) UpdateMember(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var in services.MemberUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"success": false, "error": err.Error()})
		return
	}
	member, err := mc.Members.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, member)
}

func (mc *MemberController) DeleteMember(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	if err := mc.Members.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	// Cascades to the member's loans and fines.
	_ = mc.Cache.InvalidateLoans(c.Request.Context())
	c.JSON(http.StatusOK, app.H{"success": true, "message": "member deleted"})
}

func (mc *MemberController) ReactivateMember(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	member, err := mc.Members.Reactivate(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, member)
}
