// server/internal/validation/validation_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit(t *testing.T) {
	cases := map[string]string{
		"11111111": "1",
		"12345678": "5",
		"11111112": "K",
		"7654321":  "6",
	}
	for number, dv := range cases {
		assert.Equal(t, dv, CheckDigit(number), "number %s", number)
	}
}

func TestValidateRUT(t *testing.T) {
	valid := []string{
		"12345678-5",
		"12.345.678-5",
		"11111112-K",
		"11111112-k", // lowercase check digit normalizes
	}
	for _, rut := range valid {
		normalized, err := ValidateRUT(rut)
		require.NoError(t, err, "rut %s", rut)
		assert.NotContains(t, normalized, ".")
		assert.NotContains(t, normalized, "-")
	}

	invalid := []string{
		"123455",     // too short
		"12345678-9", // wrong check digit
		"1234567K-5", // non-digit in number
		"",
		"abcdefgh-5",
	}
	for _, rut := range invalid {
		_, err := ValidateRUT(rut)
		assert.ErrorIs(t, err, ErrInvalidRUT, "rut %s", rut)
	}
}

func TestValidateRUTNormalizes(t *testing.T) {
	normalized, err := ValidateRUT("12.345.678-5")
	require.NoError(t, err)
	assert.Equal(t, "123456785", normalized)
}

func TestValidatePlate(t *testing.T) {
	valid := []string{"ABCD12", "abcd12", "AB1234", "ab 1234"}
	for _, plate := range valid {
		_, err := ValidatePlate(plate)
		assert.NoError(t, err, "plate %s", plate)
	}

	invalid := []string{"ABC123", "ABCDE1", "A12345", "1234AB", ""}
	for _, plate := range invalid {
		_, err := ValidatePlate(plate)
		assert.ErrorIs(t, err, ErrInvalidPlate, "plate %s", plate)
	}
}

func TestValidatePlateNormalizes(t *testing.T) {
	plate, err := ValidatePlate(" ab 1234 ")
	require.NoError(t, err)
	assert.Equal(t, "AB1234", plate)
}
