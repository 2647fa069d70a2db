package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamato-estate/attendance/backend/internal/shiftreq"
)

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateRandomOTP()
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), otp)
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	assert.Len(t, GenerateRandomPassword(12), 12)
	assert.Len(t, GenerateRandomPassword(1), 1)
}

func TestGenerateUsernameFromName(t *testing.T) {
	username := GenerateUsernameFromName("田中 太郎")
	assert.NotEmpty(t, username)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]+$`), username)
}

func TestGenerateRandomAvailabilityEntriesValidate(t *testing.T) {
	for i := 1; i <= 7; i++ {
		entries := GenerateRandomAvailabilityEntries(i)
		require.Len(t, entries, i)
		assert.NoError(t, shiftreq.ValidateEntries(entries))
	}
}
