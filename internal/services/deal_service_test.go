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

type dealTestEnv struct {
	userRepo           *repository.UserRepository
	applicationRepo    *repository.ApplicationRepository
	propertyService    *PropertyService
	applicationService *ApplicationService
	dealService        *DealService
}

func setupDealTestDB(t *testing.T) *dealTestEnv {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	dealRepo := repository.NewDealRepository(db)

	return &dealTestEnv{
		userRepo:           userRepo,
		applicationRepo:    applicationRepo,
		propertyService:    NewPropertyService(propertyRepo, userRepo),
		applicationService: NewApplicationService(applicationRepo, propertyRepo, userRepo),
		dealService:        NewDealService(dealRepo, applicationRepo, propertyRepo, userRepo, db),
	}
}

/// createAcceptedDeal walks the happy path up to an active deal: landowner
// lists, harvester applies, landowner accepts.
func createAcceptedDeal(t *testing.T, env *dealTestEnv) (*models.User, *models.User, *models.Deal) {
	owner := createTestUser(t, env.userRepo, "alice", models.UserTypeLandowner)
	harvester := createTestUser(t, env.userRepo, "bob", models.UserTypeHarvester)

	property, err := env.propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	application, err := env.applicationService.CreateApplication(harvester.ID, ApplicationInput{
		PropertyID: property.ID,
		Message:    "Ready in October",
	})
	require.NoError(t, err)

	deal, err := env.dealService.AcceptApplication(
		owner.ID,
		application.ID,
		time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	return owner, harvester, deal
}

func TestDealService_AcceptApplication(t *testing.T) {
	env := setupDealTestDB(t)

	owner, harvester, deal := createAcceptedDeal(t, env)

	assert.Equal(t, models.DealStatusActive, deal.Status)
	assert.Equal(t, owner.ID, deal.OwnerID)
	assert.Equal(t, harvester.ID, deal.HarvesterID)
	assert.Equal(t, 40, deal.OwnerShare)
	assert.Equal(t, 60, deal.HarvesterShare)

	application, err := env.applicationRepo.FindByID(deal.ApplicationID)
	require.NoError(t, err)
	require.NotNil(t, application)
	assert.Equal(t, models.ApplicationStatusAccepted, application.Status, "acceptance and deal creation happen together")
}

func TestDealService_AcceptOnlyByOwner(t *testing.T) {
	env := setupDealTestDB(t)

	owner := createTestUser(t, env.userRepo, "alice", models.UserTypeLandowner)
	harvester := createTestUser(t, env.userRepo, "bob", models.UserTypeHarvester)

	property, err := env.propertyService.CreateProperty(owner.ID, propertyInput("orange"))
	require.NoError(t, err)

	application, err := env.applicationService.CreateApplication(harvester.ID, ApplicationInput{
		PropertyID: property.ID,
		Message:    "Hi",
	})
	require.NoError(t, err)

	start := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	_, err = env.dealService.AcceptApplication(harvester.ID, application.ID, start, end)
	assert.Equal(t, ErrNotPropertyOwner, err)

	// The failed attempt must not have touched the application.
	stored, err := env.applicationRepo.FindByID(application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, stored.Status)
}

func TestDealService_AcceptTwiceFails(t *testing.T) {
	env := setupDealTestDB(t)

	_, _, deal := createAcceptedDeal(t, env)

	_, err := env.dealService.AcceptApplication(
		deal.OwnerID,
		deal.ApplicationID,
		deal.StartDate,
		deal.EndDate,
	)
	assert.Equal(t, ErrApplicationNotPending, err)
}

func TestDealService_AcceptGuardsBackedApplication(t *testing.T) {
	env := setupDealTestDB(t)

	_, _, deal := createAcceptedDeal(t, env)

	// Even with the application forced back to pending, the existing deal
	// blocks a second acceptance.
	application, err := env.applicationRepo.FindByID(deal.ApplicationID)
	require.NoError(t, err)
	require.NotNil(t, application)
	application.Status = models.ApplicationStatusPending
	require.NoError(t, env.applicationRepo.Update(application))

	_, err = env.dealService.AcceptApplication(
		deal.OwnerID,
		deal.ApplicationID,
		deal.StartDate,
		deal.EndDate,
	)
	assert.Equal(t, ErrApplicationNotPending, err)
}

func TestDealService_AcceptInvalidDates(t *testing.T) {
	env := setupDealTestDB(t)

	owner := createTestUser(t, env.userRepo, "alice", models.UserTypeLandowner)

	_, err := env.dealService.AcceptApplication(
		owner.ID,
		1,
		time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, ErrInvalidDateRange, err)
}

func TestDealService_PartyVisibility(t *testing.T) {
	env := setupDealTestDB(t)

	owner, harvester, deal := createAcceptedDeal(t, env)
	outsider := createTestUser(t, env.userRepo, "mallory", models.UserTypeHarvester)

	_, err := env.dealService.GetDeal(deal.ID, owner.ID)
	assert.NoError(t, err)

	_, err = env.dealService.GetDeal(deal.ID, harvester.ID)
	assert.NoError(t, err)

	_, err = env.dealService.GetDeal(deal.ID, outsider.ID)
	assert.Equal(t, ErrNotDealParty, err)
}

func TestDealService_CompleteDeal(t *testing.T) {
	env := setupDealTestDB(t)

	_, harvester, deal := createAcceptedDeal(t, env)

	yield := 430.0
	completed, err := env.dealService.CompleteDeal(harvester.ID, deal.ID, &yield)
	require.NoError(t, err)

	assert.Equal(t, models.DealStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	require.NotNil(t, completed.ActualYield)
	assert.Equal(t, 430.0, *completed.ActualYield)

	property, err := env.propertyService.GetProperty(completed.PropertyID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusCompleted, property.Status)

	t.Run("completing again fails", func(t *testing.T) {
		_, err := env.dealService.CompleteDeal(harvester.ID, deal.ID, nil)
		assert.Equal(t, ErrDealNotActive, err)
	})
}

func TestDealService_CancelDealReturnsProperty(t *testing.T) {
	env := setupDealTestDB(t)

	owner, _, deal := createAcceptedDeal(t, env)

	cancelled, err := env.dealService.CancelDeal(owner.ID, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DealStatusCancelled, cancelled.Status)

	property, err := env.propertyService.GetProperty(cancelled.PropertyID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusActive, property.Status, "cancelled deal should put the property back on the market")
}

func TestDealService_RatingFlow(t *testing.T) {
	env := setupDealTestDB(t)

	owner, harvester, deal := createAcceptedDeal(t, env)

	t.Run("cannot rate an active deal", func(t *testing.T) {
		_, err := env.dealService.SubmitRating(owner.ID, deal.ID, 5, "great")
		assert.Equal(t, ErrDealNotCompleted, err)
	})

	_, err := env.dealService.CompleteDeal(owner.ID, deal.ID, nil)
	require.NoError(t, err)

	rated, err := env.dealService.SubmitRating(owner.ID, deal.ID, 5, "Spotless work")
	require.NoError(t, err)
	require.NotNil(t, rated.OwnerRating)
	assert.Equal(t, 5, *rated.OwnerRating)
	assert.Equal(t, "Spotless work", rated.OwnerReview)
	assert.Nil(t, rated.HarvesterRating)

	harvesterAfter, err := env.userRepo.FindByID(harvester.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, harvesterAfter.Rating)
	assert.Equal(t, 1, harvesterAfter.TotalRatings)

	t.Run("second rating from the same side is rejected", func(t *testing.T) {
		_, err := env.dealService.SubmitRating(owner.ID, deal.ID, 1, "changed my mind")
		assert.Equal(t, ErrAlreadyRated, err)

		harvesterAfter, err := env.userRepo.FindByID(harvester.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, harvesterAfter.TotalRatings, "rejected rating must not touch the average")
	})

	t.Run("counterparty rates independently", func(t *testing.T) {
		rated, err := env.dealService.SubmitRating(harvester.ID, deal.ID, 4, "Good access")
		require.NoError(t, err)
		require.NotNil(t, rated.HarvesterRating)
		assert.Equal(t, 4, *rated.HarvesterRating)

		ownerAfter, err := env.userRepo.FindByID(owner.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.0, ownerAfter.Rating)
		assert.Equal(t, 1, ownerAfter.TotalRatings)
	})
}

func TestDealService_RatingAverageAcrossDeals(t *testing.T) {
	env := setupDealTestDB(t)

	owner := createTestUser(t, env.userRepo, "alice", models.UserTypeLandowner)
	harvester := createTestUser(t, env.userRepo, "bob", models.UserTypeHarvester)

	for i, rating := range []int{5, 2} {
		input := propertyInput("orange")
		input.Title = input.Title + string(rune('A'+i))
		property, err := env.propertyService.CreateProperty(owner.ID, input)
		require.NoError(t, err)

		application, err := env.applicationService.CreateApplication(harvester.ID, ApplicationInput{
			PropertyID: property.ID,
			Message:    "Season work",
		})
		require.NoError(t, err)

		deal, err := env.dealService.AcceptApplication(
			owner.ID,
			application.ID,
			time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		_, err = env.dealService.CompleteDeal(owner.ID, deal.ID, nil)
		require.NoError(t, err)

		_, err = env.dealService.SubmitRating(owner.ID, deal.ID, rating, "")
		require.NoError(t, err)
	}

	harvesterAfter, err := env.userRepo.FindByID(harvester.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, harvesterAfter.TotalRatings)
	assert.InDelta(t, 3.5, harvesterAfter.Rating, 0.001)
}

func TestDealService_RatingBounds(t *testing.T) {
	env := setupDealTestDB(t)

	owner, _, deal := createAcceptedDeal(t, env)

	_, err := env.dealService.CompleteDeal(owner.ID, deal.ID, nil)
	require.NoError(t, err)

	_, err = env.dealService.SubmitRating(owner.ID, deal.ID, 0, "")
	assert.Equal(t, ErrInvalidRating, err)

	_, err = env.dealService.SubmitRating(owner.ID, deal.ID, 6, "")
	assert.Equal(t, ErrInvalidRating, err)
}
