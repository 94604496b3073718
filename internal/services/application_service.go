package services

import (
	"errors"

	"github.com/harvestshare/harvestshare/internal/models"
	"github.com/harvestshare/harvestshare/internal/repository"
)

var (
	ErrApplicationNotFound   = errors.New("application not found")
	ErrNotHarvester          = errors.New("only harvesters can apply to properties")
	ErrPropertyNotActive     = errors.New("property is not accepting applications")
	ErrDuplicateApplication  = errors.New("a pending application for this property already exists")
	ErrApplicationNotPending = errors.New("application is no longer pending")
	ErrOwnProperty           = errors.New("cannot apply to your own property")
)

type ApplicationInput struct {
	PropertyID     uint
	Message        string
	PreferredDates []string
	HasExperience  bool
	HasEquipment   bool
	IsFlexible     bool
}

type ApplicationService struct {
	applicationRepo *repository.ApplicationRepository
	propertyRepo    *repository.PropertyRepository
	userRepo        *repository.UserRepository
}

func NewApplicationService(
	applicationRepo *repository.ApplicationRepository,
	propertyRepo *repository.PropertyRepository,
	userRepo *repository.UserRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
	}
}

func (s *ApplicationService) CreateApplication(harvesterID uint, input ApplicationInput) (*models.Application, error) {
	harvester, err := s.userRepo.FindByID(harvesterID)
	if err != nil {
		return nil, err
	}
	if harvester == nil {
		return nil, ErrUserNotFound
	}
	if !harvester.IsHarvester() {
		return nil, ErrNotHarvester
	}

	property, err := s.propertyRepo.FindByID(input.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	if property.Status != models.PropertyStatusActive {
		return nil, ErrPropertyNotActive
	}
	if property.OwnerID == harvesterID {
		return nil, ErrOwnProperty
	}

	existing, err := s.applicationRepo.FindPendingByPropertyAndHarvester(input.PropertyID, harvesterID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateApplication
	}

	application := &models.Application{
		PropertyID:     input.PropertyID,
		HarvesterID:    harvesterID,
		Message:        input.Message,
		PreferredDates: input.PreferredDates,
		HasExperience:  input.HasExperience,
		HasEquipment:   input.HasEquipment,
		IsFlexible:     input.IsFlexible,
		Status:         models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		return nil, err
	}

	return application, nil
}

func (s *ApplicationService) GetApplication(id uint) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	return application, nil
}

// GetApplicationsByProperty is restricted to the property owner.
func (s *ApplicationService) GetApplicationsByProperty(propertyID, callerID uint) ([]models.Application, error) {
	property, err := s.propertyRepo.FindByID(propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	if property.OwnerID != callerID {
		return nil, ErrNotPropertyOwner
	}

	return s.applicationRepo.FindByProperty(propertyID)
}

func (s *ApplicationService) GetApplicationsByHarvester(harvesterID uint) ([]models.Application, error) {
	return s.applicationRepo.FindByHarvester(harvesterID)
}

// RejectApplication is the only status change exposed here; acceptance goes
// through deal creation so that the application and the deal cannot drift
// apart.
func (s *ApplicationService) RejectApplication(id, callerID uint) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}

	property, err := s.propertyRepo.FindByID(application.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	if property.OwnerID != callerID {
		return nil, ErrNotPropertyOwner
	}

	if application.Status != models.ApplicationStatusPending {
		return nil, ErrApplicationNotPending
	}

	application.Status = models.ApplicationStatusRejected
	if err := s.applicationRepo.Update(application); err != nil {
		return nil, err
	}

	return application, nil
}
