package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-saas/internal/auth"
	"github.com/BruksfildServices01/gym-saas/internal/config"
	dbpkg "github.com/BruksfildServices01/gym-saas/internal/db"
	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/logger"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/timezone"
)

const (
	gymCount    = 5
	userCount   = 10
	memberCount = 10
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.Env, "gym-saas-seed")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	defer dbpkg.Close(db)

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password123"
	}

	hash, err := auth.NewPasswordHasher(cfg.BcryptCost).Hash(password)
	if err != nil {
		log.Fatal("hash seed password", zap.Error(err))
	}

	log.Info("seeding database")
	if err := seed(db, hash, timezone.NewClock(cfg.Timezone)); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
	log.Info("seeding completed")
}

func seed(db *gorm.DB, hash string, clock *timezone.Clock) error {
	var existing int64
	if err := db.Model(&models.Gym{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return fmt.Errorf("database already has %d gyms", existing)
	}

	return db.Transaction(func(tx *gorm.DB) error {

		// ---- Gyms ------------------------------------------------
		gyms := make([]models.Gym, 0, gymCount)
		for i := 1; i <= gymCount; i++ {
			gyms = append(gyms, models.Gym{
				Name:             fmt.Sprintf("Gym %d", i),
				Address:          fmt.Sprintf("Street %d, City", i),
				GoogleMapAddress: fmt.Sprintf("https://maps.google.com/?q=Gym+%d", i),
				Status:           models.GymActive,
				Plan:             plan.Default,
			})
		}
		if err := tx.Create(&gyms).Error; err != nil {
			return err
		}

		// ---- Platform account -----------------------------------
		if err := tx.Create(&models.User{
			Email:        "admin@example.com",
			Username:     "admin",
			Name:         "Platform Admin",
			PasswordHash: hash,
			Role:         access.RoleSuperUser,
		}).Error; err != nil {
			return err
		}

		// ---- Owners and staff -----------------------------------
		for i := 0; i < userCount; i++ {
			gymID := gyms[i%len(gyms)].ID
			role := access.RoleStaff
			if i%2 == 0 {
				role = access.RoleOwner
			}

			if err := tx.Create(&models.User{
				GymID:        &gymID,
				Email:        fmt.Sprintf("user%d@example.com", i+2),
				Username:     fmt.Sprintf("user%d", i+1),
				Name:         fmt.Sprintf("User %d", i+1),
				PasswordHash: hash,
				Role:         role,
			}).Error; err != nil {
				return err
			}
		}

		// ---- Members ----------------------------------------------
		today := clock.Today()
		for i := 0; i < memberCount; i++ {
			if err := tx.Create(&models.Member{
				GymID:    gyms[i%len(gyms)].ID,
				Name:     fmt.Sprintf("Member %d", i+1),
				Phone:    fmt.Sprintf("0300-00000%d", i),
				Email:    fmt.Sprintf("member%d@example.com", i+1),
				IsActive: true,
				JoinDate: datatypes.Date(today),
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
