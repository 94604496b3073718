package services

import (
	"testing"
	"time"

	"github.com/harvestshare/harvestshare/internal/database"
	"github.com/harvestshare/harvestshare/internal/models"
	"github.com/harvestshare/harvestshare/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPropertyTestDB(t *testing.T) (*repository.UserRepository, *repository.PropertyRepository, *PropertyService) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	propertyService := NewPropertyService(propertyRepo, userRepo)

	return userRepo, propertyRepo, propertyService
}

func createTestUser(t *testing.T, userRepo *repository.UserRepository, username, userType string) *models.User {
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		UserType: userType,
		FullName: "Test " + username,
	}
	require.NoError(t, userRepo.Create(user))
	return user
}

func propertyInput(fruitType string) PropertyInput {
	return PropertyInput{
		Title:            fruitType + " grove",
		Description:      "A small grove",
		FruitType:        fruitType,
		Address:          "1 Orchard Road, Valencia",
		Latitude:         39.47,
		Longitude:        -0.38,
		HarvestStartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		HarvestEndDate:   time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC),
		OwnerShare:       40,
		HarvesterShare:   60,
		EstimatedYield:   500,
		YieldUnit:        "kg",
	}
}

func TestPropertyService_CreateProperty(t *testing.T) {
	userRepo, _, propertyService := setupPropertyTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)

	property, err := propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)
	assert.Equal(t, owner.ID, property.OwnerID)
	assert.Equal(t, models.PropertyStatusActive, property.Status)
	assert.Equal(t, 40, property.OwnerShare)
	assert.Equal(t, 60, property.HarvesterShare)
}

func TestPropertyService_CreatePropertyHarvesterForbidden(t *testing.T) {
	userRepo, _, propertyService := setupPropertyTestDB(t)

	harvester := createTestUser(t, userRepo, "bob", models.UserTypeHarvester)

	_, err := propertyService.CreateProperty(harvester.ID, propertyInput("orange"))
	assert.Equal(t, ErrNotLandowner, err)
}

func TestPropertyService_CreatePropertyInvalidShares(t *testing.T) {
	userRepo, _, propertyService := setupPropertyTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)

	input := propertyInput("orange")
	input.OwnerShare = 50
	input.HarvesterShare = 60

	_, err := propertyService.CreateProperty(owner.ID, input)
	assert.Equal(t, ErrInvalidShareSplit, err)
}

func TestPropertyService_CreatePropertyInvalidDates(t *testing.T) {
	userRepo, _, propertyService := setupPropertyTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)

	input := propertyInput("orange")
	input.HarvestStartDate = time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	_, err := propertyService.CreateProperty(owner.ID, input)
	assert.Equal(t, ErrInvalidDateRange, err)
}

func TestPropertyService_UpdateProperty(t *testing.T) {
	userRepo, _, propertyService := setupPropertyTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)
	other := createTestUser(t, userRepo, "mallory", models.UserTypeLandowner)

	property, err := propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	newTitle := "Renamed grove"
	updated, err := propertyService.UpdateProperty(property.ID, owner.ID, PropertyUpdateInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed grove", updated.Title)

	t.Run("non-owner cannot update", func(t *testing.T) {
		_, err := propertyService.UpdateProperty(property.ID, other.ID, PropertyUpdateInput{Title: &newTitle})
		assert.Equal(t, ErrNotPropertyOwner, err)
	})

	t.Run("merged shares must still sum to 100", func(t *testing.T) {
		badShare := 70
		_, err := propertyService.UpdateProperty(property.ID, owner.ID, PropertyUpdateInput{OwnerShare: &badShare})
		assert.Equal(t, ErrInvalidShareSplit, err)
	})

	t.Run("status can only move between active and inactive", func(t *testing.T) {
		completed := models.PropertyStatusCompleted
		_, err := propertyService.UpdateProperty(property.ID, owner.ID, PropertyUpdateInput{Status: &completed})
		assert.Equal(t, ErrInvalidStatus, err)

		inactive := models.PropertyStatusInactive
		updated, err := propertyService.UpdateProperty(property.ID, owner.ID, PropertyUpdateInput{Status: &inactive})
		require.NoError(t, err)
		assert.Equal(t, models.PropertyStatusInactive, updated.Status)
	})
}

func TestPropertyService_SearchOnlyActive(t *testing.T) {
	userRepo, propertyRepo, propertyService := setupPropertyTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)

	active, err := propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	inactive, err := propertyService.CreateProperty(owner.ID, propertyInput("lemon"))
	require.NoError(t, err)
	inactive.Status = models.PropertyStatusInactive
	require.NoError(t, propertyRepo.Update(inactive))

	results, err := propertyService.SearchProperties(PropertySearchFilters{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, active.ID, results[0].ID)
}

func TestPropertyService_SearchFruitTypeCaseInsensitive(t *testing.T) {
	userRepo, _, propertyService := setupPropertyTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)

	_, err := propertyService.CreateProperty(owner.ID, propertyInput("Orange"))
	require.NoError(t, err)
	_, err = propertyService.CreateProperty(owner.ID, propertyInput("lemon"))
	require.NoError(t, err)

	results, err := propertyService.SearchProperties(PropertySearchFilters{FruitType: "ORANGE"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Orange", results[0].FruitType)

	t.Run("all matches everything", func(t *testing.T) {
		results, err := propertyService.SearchProperties(PropertySearchFilters{FruitType: "all"})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestPropertyService_SearchRadius(t *testing.T) {
	userRepo, _, propertyService := setupPropertyTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)

	near := propertyInput("orange")
	near.Latitude = 39.47
	near.Longitude = -0.38
	_, err := propertyService.CreateProperty(owner.ID, near)
	require.NoError(t, err)

	// Madrid, roughly 300 km from Valencia.
	far := propertyInput("orange")
	far.Title = "Madrid grove"
	far.Latitude = 40.42
	far.Longitude = -3.70
	_, err = propertyService.CreateProperty(owner.ID, far)
	require.NoError(t, err)

	lat, lon, radius := 39.46, -0.37, 50.0
	results, err := propertyService.SearchProperties(PropertySearchFilters{
		Latitude:  &lat,
		Longitude: &lon,
		RadiusKm:  &radius,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotEqual(t, "Madrid grove", results[0].Title)

	t.Run("radius alone does not filter", func(t *testing.T) {
		results, err := propertyService.SearchProperties(PropertySearchFilters{RadiusKm: &radius})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestPropertyService_SearchDateOverlap(t *testing.T) {
	userRepo, _, propertyService := setupPropertyTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)

	october := propertyInput("orange")
	_, err := propertyService.CreateProperty(owner.ID, october)
	require.NoError(t, err)

	spring := propertyInput("cherry")
	spring.HarvestStartDate = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	spring.HarvestEndDate = time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	_, err = propertyService.CreateProperty(owner.ID, spring)
	require.NoError(t, err)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	results, err := propertyService.SearchProperties(PropertySearchFilters{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "orange", results[0].FruitType)

	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	results, err = propertyService.SearchProperties(PropertySearchFilters{EndDate: &end})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "cherry", results[0].FruitType)
}

func TestHaversineKm(t *testing.T) {
	// Valencia to Madrid is just over 300 km as the crow flies.
	d := haversineKm(39.47, -0.38, 40.42, -3.70)
	assert.InDelta(t, 300, d, 20)

	assert.Equal(t, 0.0, haversineKm(39.47, -0.38, 39.47, -0.38))
}
