package repository

import (
	"errors"

	"github.com/harvestshare/harvestshare/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepository) FindByID(id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*models.Application, error) {
	var application models.Application
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&application, id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepository) FindByProperty(propertyID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepository) FindByHarvester(harvesterID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("harvester_id = ?", harvesterID).
		Order("created_at ASC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepository) FindPendingByPropertyAndHarvester(propertyID, harvesterID uint) (*models.Application, error) {
	var application models.Application
	err := r.db.Where("property_id = ? AND harvester_id = ? AND status = ?",
		propertyID, harvesterID, models.ApplicationStatusPending).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepository) Update(application *models.Application) error {
	return r.db.Save(application).Error
}

func (r *ApplicationRepository) UpdateInTx(tx *gorm.DB, application *models.Application) error {
	return tx.Save(application).Error
}
