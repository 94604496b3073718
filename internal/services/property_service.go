package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/harvestshare/harvestshare/internal/models"
	"github.com/harvestshare/harvestshare/internal/repository"
)

var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrNotPropertyOwner  = errors.New("not the property owner")
	ErrNotLandowner      = errors.New("only landowners can list properties")
	ErrInvalidShareSplit = errors.New("owner and harvester shares must sum to 100")
	ErrInvalidDateRange  = errors.New("harvest start date must not be after end date")
	ErrInvalidStatus     = errors.New("invalid status")
)

type PropertyInput struct {
	Title               string
	Description         string
	FruitType           string
	Address             string
	Latitude            float64
	Longitude           float64
	AccessInstructions  string
	HarvestStartDate    time.Time
	HarvestEndDate      time.Time
	OwnerShare          int
	HarvesterShare      int
	EstimatedYield      float64
	YieldUnit           string
	Images              []string
	PreferredQualities  []string
	SpecialRequirements string
}

type PropertyUpdateInput struct {
	Title               *string
	Description         *string
	AccessInstructions  *string
	HarvestStartDate    *time.Time
	HarvestEndDate      *time.Time
	OwnerShare          *int
	HarvesterShare      *int
	EstimatedYield      *float64
	YieldUnit           *string
	Images              []string
	PreferredQualities  []string
	SpecialRequirements *string
	Status              *string
}

type PropertySearchFilters struct {
	FruitType string
	Location  string
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
	StartDate *time.Time
	EndDate   *time.Time
}

type PropertyService struct {
	propertyRepo *repository.PropertyRepository
	userRepo     *repository.UserRepository
}

func NewPropertyService(propertyRepo *repository.PropertyRepository, userRepo *repository.UserRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

func (s *PropertyService) CreateProperty(ownerID uint, input PropertyInput) (*models.Property, error) {
	owner, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}
	if !owner.IsLandowner() {
		return nil, ErrNotLandowner
	}

	if input.OwnerShare+input.HarvesterShare != 100 {
		return nil, ErrInvalidShareSplit
	}
	if input.HarvestStartDate.After(input.HarvestEndDate) {
		return nil, ErrInvalidDateRange
	}

	property := &models.Property{
		OwnerID:             ownerID,
		Title:               input.Title,
		Description:         input.Description,
		FruitType:           input.FruitType,
		Address:             input.Address,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		AccessInstructions:  input.AccessInstructions,
		HarvestStartDate:    input.HarvestStartDate,
		HarvestEndDate:      input.HarvestEndDate,
		OwnerShare:          input.OwnerShare,
		HarvesterShare:      input.HarvesterShare,
		EstimatedYield:      input.EstimatedYield,
		YieldUnit:           input.YieldUnit,
		Images:              input.Images,
		PreferredQualities:  input.PreferredQualities,
		SpecialRequirements: input.SpecialRequirements,
		Status:              models.PropertyStatusActive,
	}

	if err := s.propertyRepo.Create(property); err != nil {
		return nil, err
	}

	return property, nil
}

func (s *PropertyService) GetProperty(id uint) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

func (s *PropertyService) GetPropertiesByOwner(ownerID uint) ([]models.Property, error) {
	return s.propertyRepo.FindByOwner(ownerID)
}

func (s *PropertyService) UpdateProperty(id, callerID uint, input PropertyUpdateInput) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	if property.OwnerID != callerID {
		return nil, ErrNotPropertyOwner
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.AccessInstructions != nil {
		property.AccessInstructions = *input.AccessInstructions
	}
	if input.HarvestStartDate != nil {
		property.HarvestStartDate = *input.HarvestStartDate
	}
	if input.HarvestEndDate != nil {
		property.HarvestEndDate = *input.HarvestEndDate
	}
	if input.OwnerShare != nil {
		property.OwnerShare = *input.OwnerShare
	}
	if input.HarvesterShare != nil {
		property.HarvesterShare = *input.HarvesterShare
	}
	if input.EstimatedYield != nil {
		property.EstimatedYield = *input.EstimatedYield
	}
	if input.YieldUnit != nil {
		property.YieldUnit = *input.YieldUnit
	}
	if input.Images != nil {
		property.Images = input.Images
	}
	if input.PreferredQualities != nil {
		property.PreferredQualities = input.PreferredQualities
	}
	if input.SpecialRequirements != nil {
		property.SpecialRequirements = *input.SpecialRequirements
	}
	if input.Status != nil {
		switch *input.Status {
		case models.PropertyStatusActive, models.PropertyStatusInactive:
			property.Status = *input.Status
		default:
			return nil, ErrInvalidStatus
		}
	}

	// Invariants hold for the merged record, not just the supplied fields.
	if property.OwnerShare+property.HarvesterShare != 100 {
		return nil, ErrInvalidShareSplit
	}
	if property.HarvestStartDate.After(property.HarvestEndDate) {
		return nil, ErrInvalidDateRange
	}

	if err := s.propertyRepo.Update(property); err != nil {
		return nil, err
	}

	return property, nil
}

// SearchProperties lists active properties and applies the filters in memory.
// Text filters are case-insensitive substring matches; the radius filter is a
// great-circle distance cut and requires latitude, longitude and radius
// together; the date filter keeps properties whose harvest window overlaps
// the requested one.
func (s *PropertyService) SearchProperties(filters PropertySearchFilters) ([]models.Property, error) {
	properties, err := s.propertyRepo.FindActive()
	if err != nil {
		return nil, err
	}

	results := properties

	if filters.FruitType != "" && filters.FruitType != "all" {
		needle := strings.ToLower(filters.FruitType)
		results = filterProperties(results, func(p models.Property) bool {
			return strings.Contains(strings.ToLower(p.FruitType), needle)
		})
	}

	if filters.Location != "" {
		needle := strings.ToLower(filters.Location)
		results = filterProperties(results, func(p models.Property) bool {
			return strings.Contains(strings.ToLower(p.Address), needle)
		})
	}

	if filters.Latitude != nil && filters.Longitude != nil && filters.RadiusKm != nil {
		results = filterProperties(results, func(p models.Property) bool {
			return haversineKm(*filters.Latitude, *filters.Longitude, p.Latitude, p.Longitude) <= *filters.RadiusKm
		})
	}

	if filters.StartDate != nil {
		results = filterProperties(results, func(p models.Property) bool {
			return !p.HarvestEndDate.Before(*filters.StartDate)
		})
	}
	if filters.EndDate != nil {
		results = filterProperties(results, func(p models.Property) bool {
			return !p.HarvestStartDate.After(*filters.EndDate)
		})
	}

	return results, nil
}

func (s *PropertyService) GetActiveProperties() ([]models.Property, error) {
	return s.propertyRepo.FindActive()
}

func filterProperties(properties []models.Property, keep func(models.Property) bool) []models.Property {
	filtered := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
