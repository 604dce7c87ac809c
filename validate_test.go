package strkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLuhn(t *testing.T) {
	tests := []struct {
		digits string
		want   bool
	}{
		{"4111111111111111", true},
		{"4111111111111112", false},
		{"79927398713", true},
		{"79927398710", false},
		{"4532015112830366", true},
		{"0", true},
		{"", false},
		{"4111 1111 1111 1111", false},
		{"4111-1111-1111-1111", false},
		{"۴۱۱۱۱۱۱۱۱۱۱۱۱۱۱۱", false},
	}
	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, Luhn(tt.digits))
		})
	}
}

func TestCreditCard(t *testing.T) {
	assert.True(t, CreditCard("4111 1111 1111 1111"))
	assert.False(t, CreditCard("4111 1111 1111 1112"))
	assert.False(t, CreditCard("   "))
}

func TestIranianNationalCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		// sum 266, 266 mod 11 = 2, check digit 11-2 = 9
		{"0499370899", true},
		{"0499370898", false},
		// sum 101, 101 mod 11 = 2, check digit 9
		{"0013542419", true},
		{"0013542418", false},
		// sum 54, 54 mod 11 = 10, check digit 1
		{"1111111111", true},
		// sum 210, 210 mod 11 = 1, check digit 1
		{"1234567890", false},
		{"1234567891", true},
		{"0000000000", true},
		{"049937089", false},
		{"04993708990", false},
		{"049937089a", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IranianNationalCode(tt.code))
		})
	}
}

func TestIranianMobileNumber(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"09123456789", true},
		{"09023456789", true},
		{"09923456789", true},
		{"09323456789", true},
		{"08123456789", false},
		{"09423456789", false},
		{"0912345678", false},
		{"091234567890", false},
		{"0912345678a", false},
		{"+9891234567", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, IranianMobileNumber(tt.number))
		})
	}
}

func TestMobileValidator(t *testing.T) {
	v := NewMobileValidator("094")
	assert.True(t, v.Valid("09423456789"))
	assert.False(t, v.Valid("09123456789"))

	v = NewMobileValidator()
	assert.Equal(t, DefaultOperatorPrefixes, v.Prefixes)
	assert.True(t, v.Valid("09123456789"))
}

func TestMobileValidator_CopiesPrefixes(t *testing.T) {
	prefixes := []string{"091"}
	v := NewMobileValidator(prefixes...)
	prefixes[0] = "098"
	assert.True(t, v.Valid("09123456789"))

	saved := DefaultOperatorPrefixes[0]
	t.Cleanup(func() { DefaultOperatorPrefixes[0] = saved })

	DefaultOperatorPrefixes[0] = "098"
	assert.True(t, IranianMobileNumber("09012345678"))
	assert.False(t, IranianMobileNumber("09812345678"))
}

func TestContainsChar(t *testing.T) {
	assert.True(t, ContainsChar("a@b", '@'))
	assert.True(t, ContainsChar("سلام", 'ل'))
	assert.False(t, ContainsChar("abc", '@'))
	assert.False(t, ContainsChar("", '@'))
}

func TestIsNumber(t *testing.T) {
	for _, s := range []string{"0", "12", "-3", "4.25", "-0.5"} {
		assert.True(t, IsNumber(s), s)
	}

	for _, s := range []string{"", "-", "1.", ".5", "1e5", "12a", "1.2.3"} {
		assert.False(t, IsNumber(s), s)
	}
}

func TestPositiveInteger(t *testing.T) {
	assert.True(t, PositiveInteger("1"))
	assert.True(t, PositiveInteger("007"))
	assert.False(t, PositiveInteger("0"))
	assert.False(t, PositiveInteger("-1"))
	assert.False(t, PositiveInteger("1.5"))
	assert.False(t, PositiveInteger(""))
}

func TestNumberInRange(t *testing.T) {
	assert.True(t, NumberInRange("5", 1, 10))
	assert.True(t, NumberInRange("1", 1, 10))
	assert.True(t, NumberInRange("10", 1, 10))
	assert.False(t, NumberInRange("11", 1, 10))
	assert.False(t, NumberInRange("abc", 1, 10))
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("secret1", 6, 20))
	assert.False(t, Password("secret", 6, 20))
	assert.False(t, Password("123456", 6, 20))
	assert.False(t, Password("a1", 6, 20))
	assert.False(t, Password("abcdefghij1234567890x", 6, 20))
}

func TestHasNoSpaces(t *testing.T) {
	assert.True(t, HasNoSpaces("a b"))
	assert.True(t, HasNoSpaces(""))
	assert.False(t, HasNoSpaces(" a"))
	assert.False(t, HasNoSpaces("a\n"))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("user@example.com"))
	assert.False(t, Email(""))
	assert.False(t, Email("user"))
	assert.False(t, Email("User <user@example.com>"))
}

func TestDate(t *testing.T) {
	assert.True(t, Date("2024-02-29", time.DateOnly))
	assert.False(t, Date("2023-02-29", time.DateOnly))
	assert.False(t, Date("29/02/2024", time.DateOnly))
	assert.False(t, Date("", time.DateOnly))
}
