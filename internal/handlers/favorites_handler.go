package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodiesbnb/foodiesbnb-api/internal/favorites"
	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
)

type FavoritesHandler struct {
	ledger *favorites.Ledger
}

func NewFavoritesHandler(ledger *favorites.Ledger) *FavoritesHandler {
	return &FavoritesHandler{ledger: ledger}
}

func (h *FavoritesHandler) List(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	ids, err := h.ledger.List(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"favorites": ids})
}

func (h *FavoritesHandler) Add(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.ledger.Add(c.Request.Context(), userID, c.Param("restaurantId")); err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "favorited"})
}

func (h *FavoritesHandler) Remove(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if err := h.ledger.Remove(c.Request.Context(), userID, c.Param("restaurantId")); err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
