package postgres

import (
	"logistics/internal/adapters/out/postgres/addressrepo"
	"logistics/internal/adapters/out/postgres/articlerepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/taskrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the logistics tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&addressrepo.AddressDTO{},
		&orderrepo.OrderDTO{},
		&articlerepo.ArticleDTO{},
		&driverrepo.DriverDTO{},
		&taskrepo.TaskDTO{},
	)
}
