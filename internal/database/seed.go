package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobconnect-app/jobconnect/internal/auth"
	"github.com/jobconnect-app/jobconnect/internal/logger"
	"github.com/jobconnect-app/jobconnect/internal/models"
)

// Seed creates the two well-known test logins the client has always been
// demoed with. Existing accounts are left alone, so re-running is safe.
func Seed(db *gorm.DB) error {
	seeds := []struct {
		account  models.Account
		password string
	}{
		{
			account: models.Account{
				FirstName: "Rita",
				LastName:  "Recruiter",
				Email:     "recruiter@test.com",
				Role:      models.RoleRecruiter,
			},
			password: "Recruiter123!",
		},
		{
			account: models.Account{
				FirstName: "Alex",
				LastName:  "Applicant",
				Email:     "applicant@test.com",
				Role:      models.RoleApplicant,
			},
			password: "Applicant123!",
		},
	}

	for _, seed := range seeds {
		var existing models.Account
		err := db.Where("email = ?", seed.account.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := auth.HashPassword(seed.password)
		if err != nil {
			return err
		}
		seed.account.ID = uuid.NewString()
		seed.account.PasswordHash = hash
		if err := db.Create(&seed.account).Error; err != nil {
			return err
		}
		logger.Info("seeded account", "email", seed.account.Email, "role", seed.account.Role)
	}
	return nil
}
