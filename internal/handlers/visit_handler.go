package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/identity"
	ucVisit "github.com/foodiesbnb/foodiesbnb-api/internal/usecase/visit"
)

type VisitHandler struct {
	identity   *identity.Service
	scheduleUC *ucVisit.ScheduleVisit
	cancelUC   *ucVisit.CancelVisit
	respondUC  *ucVisit.RespondVisit
	listUC     *ucVisit.ListVisits
}

func NewVisitHandler(
	svc *identity.Service,
	scheduleUC *ucVisit.ScheduleVisit,
	cancelUC *ucVisit.CancelVisit,
	respondUC *ucVisit.RespondVisit,
	listUC *ucVisit.ListVisits,
) *VisitHandler {
	return &VisitHandler{
		identity:   svc,
		scheduleUC: scheduleUC,
		cancelUC:   cancelUC,
		respondUC:  respondUC,
		listUC:     listUC,
	}
}

type ScheduleVisitRequest struct {
	RestaurantID    string `json:"restaurantId" binding:"required"`
	VisitDate       string `json:"visitDate"`
	VisitTime       string `json:"visitTime"`
	PartySize       int    `json:"partySize"`
	SpecialRequests string `json:"specialRequests"`
}

func (h *VisitHandler) Schedule(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req ScheduleVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	customer, err := h.identity.UserByID(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	v, err := h.scheduleUC.Execute(c.Request.Context(), customer, ucVisit.ScheduleInput{
		RestaurantID:    req.RestaurantID,
		VisitDate:       req.VisitDate,
		VisitTime:       req.VisitTime,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"visit": v})
}

func (h *VisitHandler) ListMine(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	visits, err := h.listUC.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"visits": visits})
}

func (h *VisitHandler) Cancel(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	v, err := h.cancelUC.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"visit": v})
}

func (h *VisitHandler) ListForRestaurant(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	visits, err := h.listUC.ForRestaurantOwner(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"visits": visits})
}

func (h *VisitHandler) Confirm(c *gin.Context) {
	h.respond(c, true)
}

func (h *VisitHandler) Reject(c *gin.Context) {
	h.respond(c, false)
}

func (h *VisitHandler) respond(c *gin.Context, confirm bool) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	actor, err := h.identity.UserByID(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	var v interface{}
	if confirm {
		v, err = h.respondUC.Confirm(c.Request.Context(), actor, c.Param("id"))
	} else {
		v, err = h.respondUC.Reject(c.Request.Context(), actor, c.Param("id"))
	}
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"visit": v})
}
