package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("tenant@example.com"))
	assert.True(t, ValidateEmail("first.last@sub.example.co.za"))

	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("user@$where.com"))
	assert.False(t, ValidateEmail("<script>alert(1)</script>@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Passw0rd!"))
	assert.True(t, ValidatePassword("MuchLongerPassword99&"))

	assert.False(t, ValidatePassword("short1!"))
	assert.False(t, ValidatePassword("nodigits!!"))
	assert.False(t, ValidatePassword("NoSpecial123"))
	assert.False(t, ValidatePassword("12345678!"))
	assert.False(t, ValidatePassword("javascript:alert1!"))
}

func TestNormalizeAmenities(t *testing.T) {
	t.Run("trims and drops empties", func(t *testing.T) {
		got := NormalizeAmenities([]string{" WiFi ", "", "  ", "Parking"})
		assert.Equal(t, []string{"WiFi", "Parking"}, got)
	})

	t.Run("de-duplicates preserving order", func(t *testing.T) {
		got := NormalizeAmenities([]string{"WiFi", "Parking", "WiFi", "Pool", "Parking"})
		assert.Equal(t, []string{"WiFi", "Parking", "Pool"}, got)
	})

	t.Run("splits comma-separated form values", func(t *testing.T) {
		got := NormalizeAmenities([]string{"WiFi, Parking,Pool"})
		assert.Equal(t, []string{"WiFi", "Parking", "Pool"}, got)
	})

	t.Run("nil input yields empty slice", func(t *testing.T) {
		got := NormalizeAmenities(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestNormalizeDocuments(t *testing.T) {
	got := NormalizeDocuments([]string{"https://example.com/doc1.pdf", " ", ""})
	assert.Equal(t, []string{"https://example.com/doc1.pdf"}, got)

	assert.NotNil(t, NormalizeDocuments(nil))
}
