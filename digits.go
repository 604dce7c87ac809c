package strkit

import (
	"strings"

	"github.com/pkg/errors"
)

// DigitAlphabet is one of the three supported sets of decimal digits
type DigitAlphabet int

const (
	Western     DigitAlphabet = iota // 0123456789
	Persian                          // ۰۱۲۳۴۵۶۷۸۹
	ArabicIndic                      // ٠١٢٣٤٥٦٧٨٩
)

var ErrUnknownDigitAlphabet = errors.New("unknown digit alphabet")

const arabicDecimalSeparator = '٫'

// digitTables holds the ten digits of each alphabet in value order, so the
// same index in two tables is the same digit.
var digitTables = [...][10]rune{
	Western:     {'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	Persian:     {'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'},
	ArabicIndic: {'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'},
}

type digitEntry struct {
	alphabet DigitAlphabet
	value    int
}

var digitIndex = func() map[rune]digitEntry {
	m := make(map[rune]digitEntry, 30)
	for a, table := range digitTables {
		for v, r := range table {
			m[r] = digitEntry{alphabet: DigitAlphabet(a), value: v}
		}
	}
	return m
}()

// arabicLetters maps Arabic letter variants to the Persian letters used in their place
var arabicLetters = map[rune]rune{
	'ك': 'ک',
	'ى': 'ی',
	'ي': 'ی',
	'ئ': 'ی',
	'ة': 'ه',
}

func (a DigitAlphabet) String() string {
	switch a {
	case Western:
		return "western"
	case Persian:
		return "persian"
	case ArabicIndic:
		return "arabic"
	}

	return "unknown"
}

func (a DigitAlphabet) valid() bool {
	return a >= Western && a <= ArabicIndic
}

// Digits returns the ten digits of the alphabet in value order.
func (a DigitAlphabet) Digits() string {
	if !a.valid() {
		return ""
	}

	return string(digitTables[a][:])
}

// ParseDigitAlphabet accepts the names printed by DigitAlphabet.String and
// the common aliases english, latin, farsi and arabic-indic.
func ParseDigitAlphabet(name string) (DigitAlphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "western", "english", "latin", "ascii":
		return Western, nil
	case "persian", "farsi":
		return Persian, nil
	case "arabic", "arabic-indic", "arabicindic":
		return ArabicIndic, nil
	}

	return 0, errors.Wrapf(ErrUnknownDigitAlphabet, "%q", name)
}

// Translate rewrites every digit of the other two alphabets into the target
// alphabet. Runes that are not digits are kept as they are.
//
// Decimal separators are normalized afterwards: for Persian and Arabic-Indic
// output both '.' and '٫' become '/', the separator used when displaying
// numbers in Persian text; for Western output '/' and '٫' become '.'.
func Translate(input string, to DigitAlphabet) string {
	if input == "" || !to.valid() {
		return ""
	}

	target := digitTables[to]

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if e, ok := digitIndex[r]; ok && e.alphabet != to {
			r = target[e.value]
		}

		switch to {
		case Western:
			if r == '/' || r == arabicDecimalSeparator {
				r = '.'
			}
		default:
			if r == '.' || r == arabicDecimalSeparator {
				r = '/'
			}
		}

		b.WriteRune(r)
	}

	return b.String()
}

func ToPersianDigits(s string) string { return Translate(s, Persian) }

func ToArabicDigits(s string) string { return Translate(s, ArabicIndic) }

func ToWesternDigits(s string) string { return Translate(s, Western) }

// ArabicToPersian replaces Arabic letter variants (kaf, yeh, alef maksura,
// teh marbuta) with their Persian counterparts.
func ArabicToPersian(s string) string {
	return strings.Map(func(r rune) rune {
		if p, ok := arabicLetters[r]; ok {
			return p
		}
		return r
	}, s)
}

// NormalizeDigits prepares user input for the validators: Arabic letter
// variants become Persian and every digit becomes a Western digit.
func NormalizeDigits(s string) string {
	return ToWesternDigits(ArabicToPersian(s))
}
