package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/identity"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
	"github.com/foodiesbnb/foodiesbnb-api/internal/store"
)

// DevHandler backs the developer panel: inspect registered users and wipe
// every collection.
type DevHandler struct {
	identity *identity.Service
	store    store.Store
}

func NewDevHandler(svc *identity.Service, s store.Store) *DevHandler {
	return &DevHandler{identity: svc, store: s}
}

func (h *DevHandler) ListUsers(c *gin.Context) {
	users, err := h.identity.RegisteredUsers(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Reset bulk-erases every known collection, including owner drafts.
func (h *DevHandler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	owned := make(map[string]models.Restaurant)
	_ = h.store.Read(ctx, store.KeyRestaurants, &owned)
	for ownerID := range owned {
		if err := h.store.Delete(ctx, store.DraftKey(ownerID)); err != nil {
			httperr.WriteError(c, err)
			return
		}
	}

	for _, key := range []string{
		store.KeyUsers,
		store.KeyCurrentSession,
		store.KeyRestaurants,
		store.KeyVisits,
		store.KeyFavorites,
	} {
		if err := h.store.Delete(ctx, key); err != nil {
			httperr.WriteError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
