package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"tripmarket/internal/database"
	"tripmarket/internal/domain/booking"
)

// One-shot ledger repair: recomputes claimed amounts from the payment-claim
// ledger, synthesizes entries for pre-ledger bookings, and prints a JSON
// report to stdout.
func main() {
	_ = godotenv.Load()

	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "database DSN (defaults to DATABASE_URL)")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("no DSN: pass -dsn or set DATABASE_URL")
	}

	db, err := database.Connect(*dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	report, err := booking.RunRepair(context.Background(), db)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("repair_done scanned=%d synthesized=%d estimated=%d amounts=%d statuses=%d failures=%d",
		report.Scanned, report.ClaimsSynthesized, report.ClaimsEstimated,
		report.AmountsRepaired, report.StatusesRepaired, report.Failures)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatal(err)
	}
}
