package services

import (
	"testing"

	"github.com/harvestshare/harvestshare/internal/database"
	"github.com/harvestshare/harvestshare/internal/models"
	"github.com/harvestshare/harvestshare/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApplicationTestDB(t *testing.T) (*repository.UserRepository, *PropertyService, *ApplicationService) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	propertyService := NewPropertyService(propertyRepo, userRepo)
	applicationService := NewApplicationService(applicationRepo, propertyRepo, userRepo)

	return userRepo, propertyService, applicationService
}

func TestApplicationService_CreateApplication(t *testing.T) {
	userRepo, propertyService, applicationService := setupApplicationTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)
	harvester := createTestUser(t, userRepo, "bob", models.UserTypeHarvester)

	property, err := propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	application, err := applicationService.CreateApplication(harvester.ID, ApplicationInput{
		PropertyID:    property.ID,
		Message:       "Five seasons of citrus experience",
		HasExperience: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.Equal(t, harvester.ID, application.HarvesterID)
	assert.Equal(t, property.ID, application.PropertyID)
}

func TestApplicationService_LandownerCannotApply(t *testing.T) {
	userRepo, propertyService, applicationService := setupApplicationTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)
	otherOwner := createTestUser(t, userRepo, "carol", models.UserTypeLandowner)

	property, err := propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	_, err = applicationService.CreateApplication(otherOwner.ID, ApplicationInput{
		PropertyID: property.ID,
		Message:    "Let me in",
	})
	assert.Equal(t, ErrNotHarvester, err)
}

func TestApplicationService_InactivePropertyRejected(t *testing.T) {
	userRepo, propertyService, applicationService := setupApplicationTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)
	harvester := createTestUser(t, userRepo, "bob", models.UserTypeHarvester)

	property, err := propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	inactive := models.PropertyStatusInactive
	_, err = propertyService.UpdateProperty(property.ID, owner.ID, PropertyUpdateInput{Status: &inactive})
	require.NoError(t, err)

	_, err = applicationService.CreateApplication(harvester.ID, ApplicationInput{
		PropertyID: property.ID,
		Message:    "Too late",
	})
	assert.Equal(t, ErrPropertyNotActive, err)
}

func TestApplicationService_DuplicatePendingRejected(t *testing.T) {
	userRepo, propertyService, applicationService := setupApplicationTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)
	harvester := createTestUser(t, userRepo, "bob", models.UserTypeHarvester)

	property, err := propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	input := ApplicationInput{PropertyID: property.ID, Message: "First"}
	_, err = applicationService.CreateApplication(harvester.ID, input)
	require.NoError(t, err)

	_, err = applicationService.CreateApplication(harvester.ID, input)
	assert.Equal(t, ErrDuplicateApplication, err)
}

func TestApplicationService_ReapplyAfterRejection(t *testing.T) {
	userRepo, propertyService, applicationService := setupApplicationTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)
	harvester := createTestUser(t, userRepo, "bob", models.UserTypeHarvester)

	property, err := propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	first, err := applicationService.CreateApplication(harvester.ID, ApplicationInput{
		PropertyID: property.ID,
		Message:    "First try",
	})
	require.NoError(t, err)

	rejected, err := applicationService.RejectApplication(first.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, rejected.Status)

	// A rejected application no longer blocks a new one.
	_, err = applicationService.CreateApplication(harvester.ID, ApplicationInput{
		PropertyID: property.ID,
		Message:    "Second try",
	})
	assert.NoError(t, err)
}

func TestApplicationService_RejectOnlyByOwner(t *testing.T) {
	userRepo, propertyService, applicationService := setupApplicationTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)
	harvester := createTestUser(t, userRepo, "bob", models.UserTypeHarvester)

	property, err := propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	application, err := applicationService.CreateApplication(harvester.ID, ApplicationInput{
		PropertyID: property.ID,
		Message:    "Hopeful",
	})
	require.NoError(t, err)

	_, err = applicationService.RejectApplication(application.ID, harvester.ID)
	assert.Equal(t, ErrNotPropertyOwner, err)
}

func TestApplicationService_ListByProperty(t *testing.T) {
	userRepo, propertyService, applicationService := setupApplicationTestDB(t)

	owner := createTestUser(t, userRepo, "alice", models.UserTypeLandowner)
	harvester := createTestUser(t, userRepo, "bob", models.UserTypeHarvester)
	outsider := createTestUser(t, userRepo, "mallory", models.UserTypeHarvester)

	property, err := propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	_, err = applicationService.CreateApplication(harvester.ID, ApplicationInput{
		PropertyID: property.ID,
		Message:    "Hi",
	})
	require.NoError(t, err)

	applications, err := applicationService.GetApplicationsByProperty(property.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, applications, 1)

	_, err = applicationService.GetApplicationsByProperty(property.ID, outsider.ID)
	assert.Equal(t, ErrNotPropertyOwner, err)
}
