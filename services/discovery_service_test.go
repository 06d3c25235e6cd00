package services

import (
	"testing"

	"pgstay-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedDiscoveryData(t *testing.T, db *gorm.DB) {
	t.Helper()

	properties := []models.Property{
		{
			Name: "Sunrise PG", Slug: "sunrise-pg", City: "Bengaluru", Locality: "Koramangala",
			Address: "80 Feet Road", GenderPolicy: models.GenderUnisex, IsPublished: true,
			Amenities: datatypes.JSON([]byte(`["WiFi","Air Conditioning","Laundry"]`)),
			Rooms: []models.Room{
				{RoomNumber: "101", Type: models.RoomSingle, BasePrice: 8000, Capacity: 1,
					Beds: []models.Bed{{BedNumber: "A"}}},
				{RoomNumber: "102", Type: models.RoomDouble, BasePrice: 12000, Capacity: 2,
					Beds: []models.Bed{{BedNumber: "A", IsOccupied: true}, {BedNumber: "B"}}},
			},
		},
		{
			Name: "Moonlight Residency", Slug: "moonlight-residency", City: "Pune",
			Locality: "Hinjewadi", Address: "Phase 2", GenderPolicy: models.GenderFemale,
			IsPublished: true,
			Amenities:   datatypes.JSON([]byte(`["WiFi","Parking"]`)),
			Rooms: []models.Room{
				{RoomNumber: "201", Type: models.RoomTriple, BasePrice: 6500, Capacity: 3,
					Beds: []models.Bed{{BedNumber: "A"}, {BedNumber: "B"}, {BedNumber: "C", IsOccupied: true}}},
			},
		},
		{
			Name: "Hidden Nest", Slug: "hidden-nest", City: "Bengaluru", Locality: "HSR Layout",
			GenderPolicy: models.GenderMale, IsPublished: false,
			Rooms: []models.Room{
				{RoomNumber: "1", Type: models.RoomSingle, BasePrice: 5000, Capacity: 1,
					Beds: []models.Bed{{BedNumber: "A"}}},
			},
		},
	}
	for i := range properties {
		require.NoError(t, db.Create(&properties[i]).Error)
	}
}

func cardNames(cards []PropertyCard) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return names
}

func TestSearch_OnlyPublishedSortedByName(t *testing.T) {
	db := setupTestDB(t)
	seedDiscoveryData(t, db)
	svc := NewDiscoveryService(db)

	cards, err := svc.Search(DiscoveryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Moonlight Residency", "Sunrise PG"}, cardNames(cards))
}

func TestSearch_UnpublishedNeverAppears(t *testing.T) {
	db := setupTestDB(t)
	seedDiscoveryData(t, db)
	svc := NewDiscoveryService(db)

	// Even a perfectly matching filter must not surface an unpublished
	// property.
	cards, err := svc.Search(DiscoveryFilter{City: "Bengaluru", Gender: models.GenderMale})
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestSearch_CityFilterCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedDiscoveryData(t, db)
	svc := NewDiscoveryService(db)

	cards, err := svc.Search(DiscoveryFilter{City: "bengaluru"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunrise PG"}, cardNames(cards))
}

func TestSearch_FreeTextMatchesLocality(t *testing.T) {
	db := setupTestDB(t)
	seedDiscoveryData(t, db)
	svc := NewDiscoveryService(db)

	cards, err := svc.Search(DiscoveryFilter{Search: "hinjewadi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Moonlight Residency"}, cardNames(cards))
}

func TestSearch_PriceBandUsesStartingPrice(t *testing.T) {
	db := setupTestDB(t)
	seedDiscoveryData(t, db)
	svc := NewDiscoveryService(db)

	// Sunrise starts at 8000, Moonlight at 6500.
	min := 7000.0
	cards, err := svc.Search(DiscoveryFilter{MinPrice: &min})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunrise PG"}, cardNames(cards))

	max := 7000.0
	cards, err = svc.Search(DiscoveryFilter{MaxPrice: &max})
	require.NoError(t, err)
	assert.Equal(t, []string{"Moonlight Residency"}, cardNames(cards))
}

func TestSearch_AmenityFuzzyMatch(t *testing.T) {
	db := setupTestDB(t)
	seedDiscoveryData(t, db)
	svc := NewDiscoveryService(db)

	// "wifi" matches "WiFi" case-insensitively on both properties.
	cards, err := svc.Search(DiscoveryFilter{Amenities: []string{"wifi"}})
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	// Only Moonlight lists Parking; ALL requested amenities must match.
	cards, err = svc.Search(DiscoveryFilter{Amenities: []string{"wifi", "parking"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Moonlight Residency"}, cardNames(cards))

	cards, err = svc.Search(DiscoveryFilter{Amenities: []string{"Swimming Pool"}})
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestSearch_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	seedDiscoveryData(t, db)
	svc := NewDiscoveryService(db)

	filter := DiscoveryFilter{City: "Bengaluru", Amenities: []string{"wifi"}}
	first, err := svc.Search(filter)
	require.NoError(t, err)
	second, err := svc.Search(filter)
	require.NoError(t, err)
	assert.Equal(t, cardNames(first), cardNames(second))
}

func TestSearch_OccupancyAttached(t *testing.T) {
	db := setupTestDB(t)
	seedDiscoveryData(t, db)
	svc := NewDiscoveryService(db)

	cards, err := svc.Search(DiscoveryFilter{City: "Bengaluru"})
	require.NoError(t, err)
	require.Len(t, cards, 1)

	sunrise := cards[0]
	assert.Equal(t, 3, sunrise.TotalBeds)
	assert.Equal(t, 2, sunrise.AvailableBeds)
	assert.Equal(t, 8000.0, sunrise.StartingPrice)
}

func TestGetPublished(t *testing.T) {
	db := setupTestDB(t)
	seedDiscoveryData(t, db)
	svc := NewDiscoveryService(db)

	card, err := svc.GetPublished("sunrise-pg")
	require.NoError(t, err)
	assert.Equal(t, "Sunrise PG", card.Name)
	assert.Equal(t, 3, card.TotalBeds)

	_, err = svc.GetPublished("hidden-nest")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
