package repository

import (
	"errors"

	"github.com/harvestshare/harvestshare/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

func (r *PropertyRepository) FindByID(id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*models.Property, error) {
	var property models.Property
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) FindByOwner(ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&properties).Error
	return properties, err
}

func (r *PropertyRepository) FindActive() ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Where("status = ?", models.PropertyStatusActive).
		Order("created_at ASC").
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepository) Update(property *models.Property) error {
	return r.db.Save(property).Error
}

func (r *PropertyRepository) UpdateInTx(tx *gorm.DB, property *models.Property) error {
	return tx.Save(property).Error
}
