package booking

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	ReferencePrefixBooking     = "BKG"
	ReferencePrefixSightseeing = "STB"
)

// maxReferenceAttempts bounds the regenerate-and-retry loop on a storage
// uniqueness conflict.
const maxReferenceAttempts = 3

// NewReference builds a human-readable booking reference:
// <PREFIX>-<epochMillis>-<4-digit-random>. Uniqueness is enforced by the
// storage layer; create paths retry with a fresh reference on conflict.
func NewReference(prefix string) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, time.Now().UnixMilli(), rand.Intn(10000))
}
