package services

import (
	"sort"
	"strings"

	"pgstay-backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Default price band applied when the caller does not bound the search.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 999999
)

// DiscoveryFilter narrows the set of published properties.
type DiscoveryFilter struct {
	City      string
	Gender    string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	Amenities []string
}

// PropertyCard is a listing entry: the property plus its derived occupancy
// figures.
type PropertyCard struct {
	models.Property
	OccupancySummary
}

type DiscoveryService struct {
	DB *gorm.DB
}

func NewDiscoveryService(db *gorm.DB) *DiscoveryService {
	return &DiscoveryService{DB: db}
}

// Search returns published properties matching the filter, sorted ascending
// by name. Filtering is a pure function of the loaded data and the filter
// params, so repeated calls with the same inputs return the same set.
func (s *DiscoveryService) Search(filter DiscoveryFilter) ([]PropertyCard, error) {
	var properties []models.Property
	err := s.DB.
		Where("is_published = ?", true).
		Preload("Rooms.Beds").
		Find(&properties).Error
	if err != nil {
		logrus.WithError(err).Error("discovery: property fetch failed")
		return nil, err
	}

	cards := make([]PropertyCard, 0, len(properties))
	for i := range properties {
		p := &properties[i]
		occ := ComputeOccupancy(p.Rooms)
		if !matchesFilter(p, occ, filter) {
			continue
		}
		cards = append(cards, PropertyCard{Property: *p, OccupancySummary: occ})
	}

	sort.Slice(cards, func(i, j int) bool {
		return strings.ToLower(cards[i].Name) < strings.ToLower(cards[j].Name)
	})
	return cards, nil
}

// GetPublished returns a single published property by slug with its rooms,
// beds and occupancy summary. Unpublished properties are not found.
func (s *DiscoveryService) GetPublished(slug string) (*PropertyCard, error) {
	var property models.Property
	err := s.DB.
		Where("slug = ? AND is_published = ?", slug, true).
		Preload("Rooms.Beds").
		First(&property).Error
	if err != nil {
		return nil, err
	}
	return &PropertyCard{
		Property:         property,
		OccupancySummary: ComputeOccupancy(property.Rooms),
	}, nil
}

func matchesFilter(p *models.Property, occ OccupancySummary, f DiscoveryFilter) bool {
	if f.City != "" && !strings.EqualFold(strings.TrimSpace(f.City), strings.TrimSpace(p.City)) {
		return false
	}
	if f.Gender != "" && !strings.EqualFold(strings.TrimSpace(f.Gender), p.GenderPolicy) {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		haystack := strings.ToLower(p.Name + " " + p.Locality + " " + p.City + " " + p.Address)
		if !strings.Contains(haystack, q) {
			return false
		}
	}

	minPrice := float64(DefaultMinPrice)
	if f.MinPrice != nil {
		minPrice = *f.MinPrice
	}
	maxPrice := float64(DefaultMaxPrice)
	if f.MaxPrice != nil {
		maxPrice = *f.MaxPrice
	}
	if occ.StartingPrice < minPrice || occ.StartingPrice > maxPrice {
		return false
	}

	// Every requested amenity must match some property amenity. Matching is
	// a case-insensitive substring check, intentionally fuzzy: "wifi"
	// satisfies "High-speed WiFi".
	if len(f.Amenities) > 0 {
		have := p.AmenityList()
		for _, want := range f.Amenities {
			want = strings.ToLower(strings.TrimSpace(want))
			if want == "" {
				continue
			}
			found := false
			for _, a := range have {
				if strings.Contains(strings.ToLower(a), want) || strings.Contains(want, strings.ToLower(a)) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	return true
}
