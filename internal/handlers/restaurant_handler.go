package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodiesbnb/foodiesbnb-api/internal/directory"
	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/identity"
	"github.com/foodiesbnb/foodiesbnb-api/internal/middleware"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
)

type RestaurantHandler struct {
	directory *directory.Directory
	identity  *identity.Service
}

func NewRestaurantHandler(dir *directory.Directory, svc *identity.Service) *RestaurantHandler {
	return &RestaurantHandler{directory: dir, identity: svc}
}

// ListPublic serves the merged directory; query params text, zone and
// cuisine filter it.
func (h *RestaurantHandler) ListPublic(c *gin.Context) {
	q := directory.Query{
		Text:    c.Query("text"),
		Zone:    c.Query("zone"),
		Cuisine: c.Query("cuisine"),
	}

	var (
		restaurants []models.Restaurant
		err         error
	)
	if q.Text == "" && q.Zone == "" && q.Cuisine == "" {
		restaurants, err = h.directory.GetAll(c.Request.Context())
	} else {
		restaurants, err = h.directory.Filter(c.Request.Context(), q)
	}
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// GetMine returns the owner's profile draft (or published record).
func (h *RestaurantHandler) GetMine(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	draft, err := h.directory.Draft(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	if draft == nil {
		httperr.WriteError(c, httperr.ErrNotFound("restaurant_not_found", "no restaurant profile yet"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": draft})
}

// UpsertMine publishes the acting restaurant user's profile.
func (h *RestaurantHandler) UpsertMine(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	if ut, _ := c.Get(middleware.ContextUserType); ut != string(models.UserTypeRestaurant) {
		httperr.WriteError(c, httperr.ErrAuth("not_restaurant_user", "only restaurant accounts can publish a profile"))
		return
	}

	var data models.Restaurant
	if err := c.ShouldBindJSON(&data); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	owner, err := h.identity.UserByID(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	restaurant, err := h.directory.Upsert(c.Request.Context(), data, owner.ID, owner.Email)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}
