package repository

import (
	"errors"

	"github.com/harvestshare/harvestshare/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) Create(tx *gorm.DB, deal *models.Deal) error {
	return tx.Create(deal).Error
}

func (r *DealRepository) FindByID(id uint) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.First(&deal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*models.Deal, error) {
	var deal models.Deal
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&deal, id).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) FindByUser(userID uint) ([]models.Deal, error) {
	var deals []models.Deal
	err := r.db.Where("owner_id = ? OR harvester_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&deals).Error
	return deals, err
}

func (r *DealRepository) FindByApplication(tx *gorm.DB, applicationID uint) (*models.Deal, error) {
	var deal models.Deal
	err := tx.Where("application_id = ?", applicationID).First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) FindAll() ([]models.Deal, error) {
	var deals []models.Deal
	err := r.db.Order("created_at ASC").Find(&deals).Error
	return deals, err
}

func (r *DealRepository) Update(deal *models.Deal) error {
	return r.db.Save(deal).Error
}

func (r *DealRepository) UpdateInTx(tx *gorm.DB, deal *models.Deal) error {
	return tx.Save(deal).Error
}
