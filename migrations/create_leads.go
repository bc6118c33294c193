package migrations

import (
	"gorm.io/gorm"

	"github.com/YuvarajaDev/NoeonApi/models"
)

func MigrateLeads(db *gorm.DB) error {
	return db.AutoMigrate(&models.Lead{})
}
