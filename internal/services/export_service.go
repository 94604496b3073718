package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/harvestshare/harvestshare/internal/repository"
)

var ErrInvalidReceipt = errors.New("invalid deal receipt")

// DealReceipt is a signed snapshot of a deal that either party can hand to
// the other (or a third party) as proof of the agreed terms and outcome.
type DealReceipt struct {
	DealID          uint       `json:"deal_id"`
	PropertyTitle   string     `json:"property_title"`
	FruitType       string     `json:"fruit_type"`
	OwnerUsername   string     `json:"owner_username"`
	HarvestUsername string     `json:"harvester_username"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	OwnerShare      int        `json:"owner_share"`
	HarvesterShare  int        `json:"harvester_share"`
	ActualYield     *float64   `json:"actual_yield,omitempty"`
	YieldUnit       string     `json:"yield_unit"`
	Status          string     `json:"status"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	ExportedAt      time.Time  `json:"exported_at"`
	Signature       string     `json:"signature"`
}

type ExportService struct {
	dealRepo     *repository.DealRepository
	propertyRepo *repository.PropertyRepository
	userRepo     *repository.UserRepository
	signingKey   string
}

func NewExportService(
	dealRepo *repository.DealRepository,
	propertyRepo *repository.PropertyRepository,
	userRepo *repository.UserRepository,
	signingKey string,
) *ExportService {
	return &ExportService{
		dealRepo:     dealRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		signingKey:   signingKey,
	}
}

func (s *ExportService) ExportDeal(dealID, callerID uint) (*DealReceipt, error) {
	deal, err := s.dealRepo.FindByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}
	if !deal.IsParty(callerID) {
		return nil, ErrNotDealParty
	}

	property, err := s.propertyRepo.FindByID(deal.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	owner, err := s.userRepo.FindByID(deal.OwnerID)
	if err != nil {
		return nil, err
	}
	harvester, err := s.userRepo.FindByID(deal.HarvesterID)
	if err != nil {
		return nil, err
	}
	if owner == nil || harvester == nil {
		return nil, ErrUserNotFound
	}

	receipt := &DealReceipt{
		DealID:          deal.ID,
		PropertyTitle:   property.Title,
		FruitType:       property.FruitType,
		OwnerUsername:   owner.Username,
		HarvestUsername: harvester.Username,
		StartDate:       deal.StartDate,
		EndDate:         deal.EndDate,
		OwnerShare:      deal.OwnerShare,
		HarvesterShare:  deal.HarvesterShare,
		ActualYield:     deal.ActualYield,
		YieldUnit:       property.YieldUnit,
		Status:          deal.Status,
		CompletedAt:     deal.CompletedAt,
		ExportedAt:      time.Now(),
	}

	signature, err := s.signReceipt(receipt)
	if err != nil {
		return nil, err
	}
	receipt.Signature = signature

	return receipt, nil
}

func (s *ExportService) VerifyReceipt(receipt *DealReceipt) (bool, error) {
	if receipt.Signature == "" {
		return false, ErrInvalidReceipt
	}

	providedSignature := receipt.Signature

	receiptCopy := *receipt
	receiptCopy.Signature = ""

	computedSignature, err := s.signReceipt(&receiptCopy)
	if err != nil {
		return false, err
	}

	return hmac.Equal([]byte(computedSignature), []byte(providedSignature)), nil
}

func (s *ExportService) signReceipt(receipt *DealReceipt) (string, error) {
	receiptCopy := *receipt
	receiptCopy.Signature = ""

	data, err := json.Marshal(receiptCopy)
	if err != nil {
		return "", err
	}

	h := hmac.New(sha256.New, []byte(s.signingKey))
	h.Write(data)
	signature := hex.EncodeToString(h.Sum(nil))

	return signature, nil
}
