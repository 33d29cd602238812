package validate_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/okwaroh/twende-logistics/pkg/validate"
)

func TestInternationalPhoneNumber(t *testing.T) {
	valid := []string{
		"+254712345678",
		"+14155552671",
		"+4915123456789",
	}
	for _, phone := range valid {
		assert.True(t, validate.InternationalPhoneNumber(phone), phone)
	}

	invalid := []string{
		"",
		"0712345678",        // no country code
		"+254 712 345 678",  // spaces
		"+254-712345678",    // separator
		"+2547123456789012", // too long
		"+12345",            // too short
		"+25471234567a",     // letters
	}
	for _, phone := range invalid {
		assert.False(t, validate.InternationalPhoneNumber(phone), phone)
	}
}

func TestPasswordStrength(t *testing.T) {
	assert.Empty(t, validate.PasswordStrength("s3cure-enough"))

	problems := validate.PasswordStrength("short")
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0], "too short")

	problems = validate.PasswordStrength(strings.Repeat("x", 125))
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0], "too long")

	problems = validate.PasswordStrength("12345678")
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0], "entirely numeric")

	// short and numeric stack
	problems = validate.PasswordStrength("1234")
	assert.Len(t, problems, 2)
}

func TestStartDateBeforeEndDate(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	assert.True(t, validate.StartDateBeforeEndDate(start, end))
	assert.False(t, validate.StartDateBeforeEndDate(end, start))
	assert.False(t, validate.StartDateBeforeEndDate(start, start), "equal dates do not count")
	assert.False(t, validate.StartDateBeforeEndDate(time.Time{}, end))
	assert.False(t, validate.StartDateBeforeEndDate(start, time.Time{}))
}
