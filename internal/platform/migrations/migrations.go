package migrations

import (
	"gorm.io/gorm"

	orderspostgres "github.com/chronolux/watchstore/internal/domains/orders/adapters/persistence/postgres"
)

// Run applies the order-service schema. Intended to replace adapter-level
// automigrate so schema ownership stays in one place.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&orderspostgres.OrderRecord{})
}
