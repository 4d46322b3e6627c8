package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"tripmarket/internal/domain/auth"
	"tripmarket/internal/domain/booking"
	"tripmarket/internal/domain/catalog"
	"tripmarket/internal/domain/guestbooking"
	"tripmarket/internal/domain/wallet"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate keeps the schema in sync with the domain entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&auth.User{},
		&catalog.Sightseeing{},
		&booking.Booking{},
		&booking.PaymentClaim{},
		&guestbooking.SightseeingBooking{},
		&guestbooking.AdditionalGuest{},
		&wallet.AgentWallet{},
		&wallet.WalletTransaction{},
	)
}
