package strkit

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DefaultOperatorPrefixes are the mobile operator prefixes accepted by IranianMobileNumber.
// Validators keep their own copy, changing this slice does not affect them.
var DefaultOperatorPrefixes = []string{"090", "091", "092", "093", "099"}

var (
	matchNumber  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	matchLetter  = regexp.MustCompile(`[a-zA-Z]`)
	matchDigit   = regexp.MustCompile(`[0-9]`)
	matchInteger = regexp.MustCompile(`^\d+$`)
)

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Luhn reports whether digits passes the Luhn (mod 10) check. digits must be
// a non-empty string of ASCII digits, separators are not stripped.
func Luhn(digits string) bool {
	if !isASCIIDigits(digits) {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}

		sum += d
		double = !double
	}

	return sum%10 == 0
}

// CreditCard validates a card number that may contain spaces, like "4111 1111 1111 1111".
func CreditCard(number string) bool {
	return Luhn(strings.ReplaceAll(number, " ", ""))
}

// IranianNationalCode validates the check digit of a 10 digit Iranian
// national identification code (code melli).
func IranianNationalCode(code string) bool {
	if len(code) != 10 || !isASCIIDigits(code) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(code[i]-'0') * (10 - i)
	}

	checksum := sum % 11
	check := int(code[9] - '0')
	if checksum < 2 {
		return check == checksum
	}

	return check == 11-checksum
}

// MobileValidator checks Iranian mobile numbers against a list of operator prefixes
type MobileValidator struct {
	Prefixes []string
}

// NewMobileValidator returns a validator for a copy of the given prefixes, or
// of DefaultOperatorPrefixes when none are given.
func NewMobileValidator(prefixes ...string) *MobileValidator {
	if len(prefixes) == 0 {
		prefixes = DefaultOperatorPrefixes
	}

	return &MobileValidator{Prefixes: append([]string(nil), prefixes...)}
}

// Valid reports whether number is 11 digits, starts with "09" and carries one
// of the configured operator prefixes.
func (v *MobileValidator) Valid(number string) bool {
	if len(number) != 11 || !isASCIIDigits(number) || !strings.HasPrefix(number, "09") {
		return false
	}

	for _, p := range v.Prefixes {
		if number[:3] == p {
			return true
		}
	}

	return false
}

var defaultMobileValidator = NewMobileValidator()

// IranianMobileNumber validates number against DefaultOperatorPrefixes.
func IranianMobileNumber(number string) bool {
	return defaultMobileValidator.Valid(number)
}

// IsNumber reports whether s is a plain decimal number such as "12", "-3" or "4.25".
func IsNumber(s string) bool {
	return matchNumber.MatchString(s)
}

// PositiveInteger reports whether s is made of ASCII digits only and is greater than zero.
func PositiveInteger(s string) bool {
	if !matchInteger.MatchString(s) {
		return false
	}

	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n > 0
}

// NumberInRange reports whether s is an integer between lo and hi, both inclusive.
func NumberInRange(s string, lo, hi int) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}

// Password requires a length within [minLen, maxLen] and at least one ASCII
// letter and one digit.
func Password(s string, minLen, maxLen int) bool {
	n := len([]rune(s))
	return n >= minLen && n <= maxLen && matchDigit.MatchString(s) && matchLetter.MatchString(s)
}

// ContainsChar reports whether s is non-empty and contains c.
func ContainsChar(s string, c rune) bool {
	return s != "" && strings.ContainsRune(s, c)
}

// HasNoSpaces reports whether s has no leading or trailing white space.
func HasNoSpaces(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == s
}

// Email accepts a bare address like "user@example.com"; display names are rejected.
func Email(s string) bool {
	if s == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && addr.Name == ""
}

// Date reports whether s can be parsed with the given time layout.
func Date(s, layout string) bool {
	if s == "" {
		return false
	}

	_, err := time.Parse(layout, s)
	return err == nil
}
