package services

import (
	"errors"
	"time"

	"github.com/harvestshare/harvestshare/internal/models"
	"github.com/harvestshare/harvestshare/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDealNotFound     = errors.New("deal not found")
	ErrNotDealParty     = errors.New("not a party to this deal")
	ErrDealNotActive    = errors.New("deal is not active")
	ErrDealNotCompleted = errors.New("deal is not completed")
	ErrAlreadyRated     = errors.New("rating already submitted for this deal")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

type DealService struct {
	dealRepo        *repository.DealRepository
	applicationRepo *repository.ApplicationRepository
	propertyRepo    *repository.PropertyRepository
	userRepo        *repository.UserRepository
	db              *gorm.DB
}

func NewDealService(
	dealRepo *repository.DealRepository,
	applicationRepo *repository.ApplicationRepository,
	propertyRepo *repository.PropertyRepository,
	userRepo *repository.UserRepository,
	db *gorm.DB,
) *DealService {
	return &DealService{
		dealRepo:        dealRepo,
		applicationRepo: applicationRepo,
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
		db:              db,
	}
}

// AcceptApplication promotes a pending application into a deal. The
// application flips to accepted and the deal is created in the same
// transaction, with shares and parties derived from the property rather than
// taken from the request.
func (s *DealService) AcceptApplication(callerID, applicationID uint, startDate, endDate time.Time) (*models.Deal, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	var deal *models.Deal

	err := s.db.Transaction(func(tx *gorm.DB) error {
		application, err := s.applicationRepo.FindByIDForUpdate(tx, applicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}

		if application.Status != models.ApplicationStatusPending {
			return ErrApplicationNotPending
		}

		property, err := s.propertyRepo.FindByIDForUpdate(tx, application.PropertyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPropertyNotFound
			}
			return err
		}

		if property.OwnerID != callerID {
			return ErrNotPropertyOwner
		}

		// An application can only ever back one deal, even if its status
		// was reset out of band.
		existing, err := s.dealRepo.FindByApplication(tx, application.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrApplicationNotPending
		}

		deal = &models.Deal{
			PropertyID:     property.ID,
			OwnerID:        property.OwnerID,
			HarvesterID:    application.HarvesterID,
			ApplicationID:  application.ID,
			StartDate:      startDate,
			EndDate:        endDate,
			OwnerShare:     property.OwnerShare,
			HarvesterShare: property.HarvesterShare,
			Status:         models.DealStatusActive,
		}

		if err := s.dealRepo.Create(tx, deal); err != nil {
			return err
		}

		application.Status = models.ApplicationStatusAccepted
		return s.applicationRepo.UpdateInTx(tx, application)
	})

	if err != nil {
		return nil, err
	}

	return deal, nil
}

func (s *DealService) GetDeal(id, callerID uint) (*models.Deal, error) {
	deal, err := s.dealRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}
	if !deal.IsParty(callerID) {
		return nil, ErrNotDealParty
	}
	return deal, nil
}

func (s *DealService) GetDealsByUser(userID uint) ([]models.Deal, error) {
	return s.dealRepo.FindByUser(userID)
}

func (s *DealService) ListDeals() ([]models.Deal, error) {
	return s.dealRepo.FindAll()
}

// CompleteDeal moves an active deal to completed and marks its property
// completed in the same transaction. The completion timestamp is always set
// server-side.
func (s *DealService) CompleteDeal(callerID, dealID uint, actualYield *float64) (*models.Deal, error) {
	var deal *models.Deal

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		deal, err = s.dealRepo.FindByIDForUpdate(tx, dealID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDealNotFound
			}
			return err
		}

		if !deal.IsParty(callerID) {
			return ErrNotDealParty
		}
		if deal.Status != models.DealStatusActive {
			return ErrDealNotActive
		}

		now := time.Now()
		deal.Status = models.DealStatusCompleted
		deal.CompletedAt = &now
		if actualYield != nil {
			deal.ActualYield = actualYield
		}

		if err := s.dealRepo.UpdateInTx(tx, deal); err != nil {
			return err
		}

		property, err := s.propertyRepo.FindByIDForUpdate(tx, deal.PropertyID)
		if err != nil {
			return err
		}
		property.Status = models.PropertyStatusCompleted
		return s.propertyRepo.UpdateInTx(tx, property)
	})

	if err != nil {
		return nil, err
	}

	return deal, nil
}

// CancelDeal moves an active deal to cancelled and returns the property to
// the active pool so it can be re-listed.
func (s *DealService) CancelDeal(callerID, dealID uint) (*models.Deal, error) {
	var deal *models.Deal

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		deal, err = s.dealRepo.FindByIDForUpdate(tx, dealID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDealNotFound
			}
			return err
		}

		if !deal.IsParty(callerID) {
			return ErrNotDealParty
		}
		if deal.Status != models.DealStatusActive {
			return ErrDealNotActive
		}

		deal.Status = models.DealStatusCancelled

		if err := s.dealRepo.UpdateInTx(tx, deal); err != nil {
			return err
		}

		property, err := s.propertyRepo.FindByIDForUpdate(tx, deal.PropertyID)
		if err != nil {
			return err
		}
		property.Status = models.PropertyStatusActive
		return s.propertyRepo.UpdateInTx(tx, property)
	})

	if err != nil {
		return nil, err
	}

	return deal, nil
}

// SubmitRating attaches the caller's rating of the counterparty to a
// completed deal. The role is derived from the caller's side of the deal,
// repeat submissions are rejected, and the counterparty's running average is
// updated in the same transaction.
func (s *DealService) SubmitRating(callerID, dealID uint, rating int, review string) (*models.Deal, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	var deal *models.Deal

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		deal, err = s.dealRepo.FindByIDForUpdate(tx, dealID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDealNotFound
			}
			return err
		}

		if !deal.IsParty(callerID) {
			return ErrNotDealParty
		}
		if deal.Status != models.DealStatusCompleted {
			return ErrDealNotCompleted
		}

		var ratedUserID uint
		if callerID == deal.OwnerID {
			if deal.OwnerRating != nil {
				return ErrAlreadyRated
			}
			deal.OwnerRating = &rating
			deal.OwnerReview = review
			ratedUserID = deal.HarvesterID
		} else {
			if deal.HarvesterRating != nil {
				return ErrAlreadyRated
			}
			deal.HarvesterRating = &rating
			deal.HarvesterReview = review
			ratedUserID = deal.OwnerID
		}

		if err := s.dealRepo.UpdateInTx(tx, deal); err != nil {
			return err
		}

		rated, err := s.userRepo.FindByIDForUpdate(tx, ratedUserID)
		if err != nil {
			return err
		}

		rated.Rating = (rated.Rating*float64(rated.TotalRatings) + float64(rating)) / float64(rated.TotalRatings+1)
		rated.TotalRatings++

		return s.userRepo.UpdateInTx(tx, rated)
	})

	if err != nil {
		return nil, err
	}

	return deal, nil
}
