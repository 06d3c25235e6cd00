package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DiscoveryController struct {
	Discovery *services.DiscoveryService
}

func NewDiscoveryController(discovery *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{Discovery: discovery}
}

func parsePriceQuery(c *gin.Context, name string) *float64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// amenities arrive either as repeated params (?amenities=a&amenities=b) or a
// single comma-separated value.
func parseAmenitiesQuery(c *gin.Context) []string {
	var out []string
	for _, raw := range c.QueryArray("amenities") {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ListProperties is the public discovery endpoint.
// GET /api/properties
func (d *DiscoveryController) ListProperties(c *gin.Context) {
	filter := services.DiscoveryFilter{
		City:      c.Query("city"),
		Gender:    c.Query("gender"),
		Search:    c.Query("search"),
		MinPrice:  parsePriceQuery(c, "minPrice"),
		MaxPrice:  parsePriceQuery(c, "maxPrice"),
		Amenities: parseAmenitiesQuery(c),
	}

	cards, err := d.Discovery.Search(filter)
	if err != nil {
		// Degraded state: the discovery page shows a "connection issue"
		// message instead of an unhandled error.
		utils.JSONError(c, http.StatusServiceUnavailable,
			"we are having a connection issue, please try again later")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cards)
}

// GetProperty returns one published property by slug.
// GET /api/properties/:slug
func (d *DiscoveryController) GetProperty(c *gin.Context) {
	slug := c.Param("slug")
	card, err := d.Discovery.GetPublished(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable,
			"we are having a connection issue, please try again later")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, card)
}
