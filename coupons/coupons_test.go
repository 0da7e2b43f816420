package coupons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRate_Defaults(t *testing.T) {
	Load()

	rate, ok := Rate("SAVE10")
	assert.True(t, ok)
	assert.Equal(t, 0.10, rate)

	rate, ok = Rate("SAVE20")
	assert.True(t, ok)
	assert.Equal(t, 0.20, rate)

	rate, ok = Rate("FREESHIP")
	assert.True(t, ok)
	assert.Equal(t, 0.0, rate)

	_, ok = Rate("NOPE")
	assert.False(t, ok)
}

func TestRate_NormalizesInput(t *testing.T) {
	Load()

	rate, ok := Rate("  save10 ")
	assert.True(t, ok)
	assert.Equal(t, 0.10, rate)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "SAVE20", Normalize(" save20\t"))
	assert.Equal(t, "", Normalize("  "))
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("COUPON_TABLE", `{"welcome5": 0.05}`)
	Load()
	t.Cleanup(func() {
		t.Setenv("COUPON_TABLE", "")
		Load()
	})

	rate, ok := Rate("WELCOME5")
	assert.True(t, ok)
	assert.Equal(t, 0.05, rate)

	// Env table replaces the defaults wholesale.
	_, ok = Rate("SAVE10")
	assert.False(t, ok)
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("COUPON_TABLE", `not json`)
	Load()
	t.Cleanup(func() {
		t.Setenv("COUPON_TABLE", "")
		Load()
	})

	rate, ok := Rate("SAVE10")
	assert.True(t, ok)
	assert.Equal(t, 0.10, rate)
}
