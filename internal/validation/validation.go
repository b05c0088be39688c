// server/internal/validation/validation.go
package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidRUT   = errors.New("invalid RUT")
	ErrInvalidPlate = errors.New("plate must use the old (ABCD12) or new (AB1234) format")
)

var (
	oldPlatePattern = regexp.MustCompile(`^[A-Z]{4}\d{2}$`)
	newPlatePattern = regexp.MustCompile(`^[A-Z]{2}\d{4}$`)
)

// NormalizeRUT strips dots and dashes and upper-cases the check digit, so
// "12.345.678-5" and "12345678-5" store identically.
func NormalizeRUT(rut string) string {
	r := strings.ReplaceAll(rut, ".", "")
	r = strings.ReplaceAll(r, "-", "")
	return strings.ToUpper(strings.TrimSpace(r))
}

// ValidateRUT checks a Chilean RUT: 7-8 digit number plus a mod-11 check
// digit (0-9 or K). Returns the normalized form used as the storage key.
func ValidateRUT(rut string) (string, error) {
	clean := NormalizeRUT(rut)
	if len(clean) < 8 || len(clean) > 9 {
		return "", ErrInvalidRUT
	}

	number := clean[:len(clean)-1]
	dv := clean[len(clean)-1:]

	for _, c := range number {
		if c < '0' || c > '9' {
			return "", ErrInvalidRUT
		}
	}
	if !strings.ContainsAny(dv, "0123456789K") {
		return "", ErrInvalidRUT
	}

	if CheckDigit(number) != dv {
		return "", ErrInvalidRUT
	}
	return clean, nil
}

// CheckDigit computes the mod-11 verification digit for a RUT number given
// as a decimal string. The seeder uses it to mint valid sample RUTs.
func CheckDigit(number string) string {
	multipliers := []int{2, 3, 4, 5, 6, 7, 2, 3}
	sum := 0
	idx := 0
	for i := len(number) - 1; i >= 0; i-- {
		sum += int(number[i]-'0') * multipliers[idx%8]
		idx++
	}
	switch dv := 11 - sum%11; dv {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + dv))
	}
}

// NormalizePlate removes spaces and upper-cases a license plate.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), " ", ""))
}

// ValidatePlate checks a Chilean plate against the old 4-letter and the
// new 2-letter formats. Returns the normalized form.
func ValidatePlate(plate string) (string, error) {
	p := NormalizePlate(plate)
	if oldPlatePattern.MatchString(p) || newPlatePattern.MatchString(p) {
		return p, nil
	}
	return "", ErrInvalidPlate
}
