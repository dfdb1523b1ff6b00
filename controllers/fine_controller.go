package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FineController struct{ *Srv }

func NewFineController(s *Srv) *FineController { return &FineController{Srv: s} }

func (fc *FineController) ListFines(c *gin.Context) {
	fines, err := fc.Fines.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, fines)
}

func (fc *FineController) GetFine(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	fine, err := fc.Fines.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, fine)
}

func (fc *FineController) ListMemberFines(c *gin.Context) {
	memberID, valid := paramID(c, "memberId")
	if !valid {
		return
	}
	fines, err := fc.Fines.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, fines)
}

func (fc *FineController) PayFine(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	fine, err := fc.Fines.Pay(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, fine)
}
