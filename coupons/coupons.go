package coupons

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// MaxPerUser caps how many distinct coupon codes a single user may consume
// across their whole order history.
const MaxPerUser = 2

var defaultTable = map[string]float64{
	"SAVE10":   0.10,
	"SAVE20":   0.20,
	"FREESHIP": 0,
}

var table = defaultTable

// Load initializes the code→discount-rate table. The COUPON_TABLE env var,
// when set, must hold a JSON object of upper-cased codes to rates and
// replaces the built-in defaults wholesale. The table is immutable after
// startup.
func Load() {
	raw := os.Getenv("COUPON_TABLE")
	if raw == "" {
		table = defaultTable
		return
	}
	parsed := make(map[string]float64)
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Warn().Err(err).Msg("invalid COUPON_TABLE, falling back to defaults")
		table = defaultTable
		return
	}
	normalized := make(map[string]float64, len(parsed))
	for code, rate := range parsed {
		normalized[Normalize(code)] = rate
	}
	table = normalized
}

// Normalize maps user input to the canonical code form used for lookups and
// for the used_coupons ledger.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Rate returns the discount rate for a code, normalizing it first.
func Rate(code string) (float64, bool) {
	rate, ok := table[Normalize(code)]
	return rate, ok
}
