package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/harvestshare/harvestshare/internal/config"
	"github.com/harvestshare/harvestshare/internal/database"
	"github.com/harvestshare/harvestshare/internal/repository"
	"github.com/harvestshare/harvestshare/internal/services"
	"github.com/spf13/cobra"
)

type UserSeed struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}

type PropertySeed struct {
	Owner              string   `json:"owner"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	FruitType          string   `json:"fruit_type"`
	Address            string   `json:"address"`
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	HarvestStartDate   string   `json:"harvest_start_date"`
	HarvestEndDate     string   `json:"harvest_end_date"`
	OwnerShare         int      `json:"owner_share"`
	HarvesterShare     int      `json:"harvester_share"`
	EstimatedYield     float64  `json:"estimated_yield"`
	YieldUnit          string   `json:"yield_unit"`
	PreferredQualities []string `json:"preferred_qualities"`
}

type SeedFile struct {
	Users      []UserSeed     `json:"users"`
	Properties []PropertySeed `json:"properties"`
}

var (
	seedFilePath  string
	seedStrict    bool
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load users and properties from a JSON file",
	Long: `Load demo or migration data from a JSON file.

Expected JSON format:
{
  "users": [
    {"username": "rosa", "email": "rosa@example.com", "password": "...",
     "user_type": "landowner", "full_name": "Rosa Marchetti"}
  ],
  "properties": [
    {"owner": "rosa", "title": "Hillside orchard", "fruit_type": "Apples",
     "address": "12 Orchard Ln", "latitude": 45.1, "longitude": 7.6,
     "harvest_start_date": "2026-09-01", "harvest_end_date": "2026-10-15",
     "owner_share": 40, "harvester_share": 60,
     "estimated_yield": 800, "yield_unit": "kg", "description": "..."}
  ]
}

By default invalid entries are skipped. Use --strict to fail on the first
validation error instead.`,
	Example: `  harvestshare seed -f seed.json
  harvestshare seed --file seed.json --strict`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSeed(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFilePath, "file", "f", "", "JSON file to load (required)")
	seedCmd.Flags().BoolVar(&seedStrict, "strict", false, "Fail on any validation error")
	seedCmd.MarkFlagRequired("file")
}

func runSeed() error {
	data, err := os.ReadFile(seedFilePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	authService := services.NewAuthService(userRepo, tokenRepo, cfg.JWT.Secret, time.Hour, cfg.BcryptCost)
	propertyService := services.NewPropertyService(propertyRepo, userRepo)

	log.Printf("Seeding %d users and %d properties from %s",
		len(seed.Users), len(seed.Properties), seedFilePath)

	imported := 0
	skipped := 0

	for _, u := range seed.Users {
		if err := seedUser(u, authService); err != nil {
			if seedStrict {
				return fmt.Errorf("seed failed for user %s: %w", u.Username, err)
			}
			log.Printf("Skipped user %s: %v", u.Username, err)
			skipped++
			continue
		}
		imported++
	}

	for _, p := range seed.Properties {
		if err := seedProperty(p, userRepo, propertyService); err != nil {
			if seedStrict {
				return fmt.Errorf("seed failed for property %q: %w", p.Title, err)
			}
			log.Printf("Skipped property %q: %v", p.Title, err)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("Seed complete: %d imported, %d skipped", imported, skipped)
	return nil
}

func seedUser(u UserSeed, authService *services.AuthService) error {
	if !usernameRegex.MatchString(u.Username) {
		return fmt.Errorf("invalid username format")
	}
	if len(u.Password) < 8 {
		return fmt.Errorf("password too short")
	}

	_, err := authService.Register(services.RegisterInput{
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		UserType: u.UserType,
		FullName: u.FullName,
		Phone:    u.Phone,
		Bio:      u.Bio,
	})
	return err
}

func seedProperty(p PropertySeed, userRepo *repository.UserRepository, propertyService *services.PropertyService) error {
	owner, err := userRepo.FindByUsername(p.Owner)
	if err != nil {
		return err
	}
	if owner == nil {
		return fmt.Errorf("owner %s not found", p.Owner)
	}

	startDate, err := time.Parse("2006-01-02", p.HarvestStartDate)
	if err != nil {
		return fmt.Errorf("invalid harvest_start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", p.HarvestEndDate)
	if err != nil {
		return fmt.Errorf("invalid harvest_end_date: %w", err)
	}

	_, err = propertyService.CreateProperty(owner.ID, services.PropertyInput{
		Title:              p.Title,
		Description:        p.Description,
		FruitType:          p.FruitType,
		Address:            p.Address,
		Latitude:           p.Latitude,
		Longitude:          p.Longitude,
		HarvestStartDate:   startDate,
		HarvestEndDate:     endDate,
		OwnerShare:         p.OwnerShare,
		HarvesterShare:     p.HarvesterShare,
		EstimatedYield:     p.EstimatedYield,
		YieldUnit:          p.YieldUnit,
		PreferredQualities: p.PreferredQualities,
	})
	return err
}
