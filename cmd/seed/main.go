package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tripmarket/internal/database"
	"tripmarket/internal/domain/auth"
	"tripmarket/internal/domain/booking"
	"tripmarket/internal/domain/catalog"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tripmarket.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM wallet_transactions")
	db.Exec("DELETE FROM agent_wallets")
	db.Exec("DELETE FROM payment_claims")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM sightseeing_booking_guests")
	db.Exec("DELETE FROM sightseeing_bookings")
	db.Exec("DELETE FROM sightseeings")
	db.Exec("DELETE FROM users")

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		return string(h)
	}

	users := []auth.User{
		{Email: "admin@tripmarket.local", PasswordHash: hash("admin12345"), Role: auth.RoleAdmin, Name: "Admin", IsActive: true},
		{Email: "ops@tripmarket.local", PasswordHash: hash("ops1234567"), Role: auth.RoleOperations, Name: "Operations", IsActive: true},
		{Email: "sales@tripmarket.local", PasswordHash: hash("sales12345"), Role: auth.RoleSales, Name: "Sales", IsActive: true},
		{Email: "agent@tripmarket.local", PasswordHash: hash("agent12345"), Role: auth.RoleAgent, Name: "Demo Agent", AgencyName: "Demo Travels", IsActive: true},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatal("seed users failed:", err)
	}

	offer := func(v float64) *float64 { return &v }
	items := []catalog.Sightseeing{
		{
			Name:        "Old Town Walking Tour",
			Description: "Guided walk through the historic center.",
			Location:    "Lisbon",
			Duration:    "3h",
			Price:       45,
			OfferPrice:  offer(39),
			Images:      []string{"https://cdn.tripmarket.local/old-town-1.jpg"},
			IsActive:    true,
			CreatedBy:   users[0].ID,
		},
		{
			Name:        "Sunset Harbour Cruise",
			Description: "Two-hour cruise with drinks included.",
			Location:    "Lisbon",
			Duration:    "2h",
			Price:       80,
			Images:      []string{"https://cdn.tripmarket.local/cruise-1.jpg", "https://cdn.tripmarket.local/cruise-2.jpg"},
			IsActive:    true,
			CreatedBy:   users[0].ID,
		},
	}
	if err := db.Create(&items).Error; err != nil {
		log.Fatal("seed sightseeings failed:", err)
	}

	b := booking.Booking{
		UserID:      users[3].ID,
		Description: "Group package deposit",
		TotalAmount: 500,
		Status:      booking.StatusPending,
	}
	if err := db.Create(&b).Error; err != nil {
		log.Fatal("seed booking failed:", err)
	}

	log.Printf("Seed complete at %s: %d users, %d sightseeings, booking %s",
		time.Now().Format(time.RFC3339), len(users), len(items), b.BookingReference)
}
