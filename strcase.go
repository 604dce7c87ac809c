package strkit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseStyle is an identifier naming convention
type CaseStyle int

const (
	Camel          CaseStyle = iota // camelCase
	Pascal                          // PascalCase
	Snake                           // snake_case
	Kebab                           // kebab-case
	ScreamingSnake                  // SCREAMING_SNAKE_CASE
)

var ErrUnknownCaseStyle = errors.New("unknown case style")

func (s CaseStyle) String() string {
	switch s {
	case Camel:
		return "camel"
	case Pascal:
		return "pascal"
	case Snake:
		return "snake"
	case Kebab:
		return "kebab"
	case ScreamingSnake:
		return "screaming-snake"
	}

	return "unknown"
}

// ParseCaseStyle parses the style names printed by CaseStyle.String, plus a few aliases.
func ParseCaseStyle(name string) (CaseStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "camel", "lower-camel", "camelcase":
		return Camel, nil
	case "pascal", "upper-camel", "pascalcase":
		return Pascal, nil
	case "snake", "snake_case":
		return Snake, nil
	case "kebab", "kebab-case":
		return Kebab, nil
	case "screaming-snake", "screaming_snake", "screaming", "constant":
		return ScreamingSnake, nil
	}

	return 0, errors.Wrapf(ErrUnknownCaseStyle, "%q", name)
}

// Tokenize splits input into lowercase word tokens according to the source style.
//
// For camel and pascal input a boundary is placed before every uppercase
// letter that follows a letter or a digit, so an acronym run yields one token
// per capital: "HTTPServer" becomes h, t, t, p, server.
func Tokenize(input string, from CaseStyle) []string {
	if input == "" {
		return nil
	}

	var tokens []string
	switch from {
	case Camel, Pascal:
		tokens = splitCamel(input)
	case Snake, ScreamingSnake:
		tokens = strings.Split(input, "_")
	case Kebab:
		tokens = strings.Split(input, "-")
	default:
		return nil
	}

	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func splitCamel(s string) []string {
	var tokens []string
	var b strings.Builder
	var prev rune

	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLetter(prev) || unicode.IsDigit(prev)) {
			tokens = append(tokens, b.String())
			b.Reset()
		}

		b.WriteRune(r)
		prev = r
	}

	return append(tokens, b.String())
}

// upperFirst upper-cases the first rune of a token and keeps the rest as is.
func upperFirst(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if size == 0 {
		return token
	}

	return cases.Upper(language.Und).String(string(r)) + token[size:]
}

// Render joins word tokens under the target style.
func Render(tokens []string, to CaseStyle) string {
	if len(tokens) == 0 {
		return ""
	}

	switch to {
	case Camel:
		var b strings.Builder
		b.WriteString(tokens[0])
		for _, t := range tokens[1:] {
			b.WriteString(upperFirst(t))
		}
		return b.String()

	case Pascal:
		var b strings.Builder
		for _, t := range tokens {
			b.WriteString(upperFirst(t))
		}
		return b.String()

	case Snake:
		return strings.ToLower(strings.Join(tokens, "_"))

	case ScreamingSnake:
		return strings.ToUpper(strings.Join(tokens, "_"))

	case Kebab:
		return strings.ToLower(strings.Join(tokens, "-"))
	}

	return ""
}

// ConvertCase converts input from one identifier style to another.
// snake and SCREAMING_SNAKE differ only by case, so they are folded directly
// without splitting into words.
func ConvertCase(input string, from, to CaseStyle) string {
	switch {
	case from == to:
		return input
	case from == Snake && to == ScreamingSnake:
		return strings.ToUpper(input)
	case from == ScreamingSnake && to == Snake:
		return strings.ToLower(input)
	}

	return Render(Tokenize(input, from), to)
}

func UpperCamelToSnakeCase(s string) string { return ConvertCase(s, Pascal, Snake) }

func LowerCamelToSnakeCase(s string) string { return ConvertCase(s, Camel, Snake) }

func SnakeToUpperCamelCase(s string) string { return ConvertCase(s, Snake, Pascal) }

func SnakeToLowerCamelCase(s string) string { return ConvertCase(s, Snake, Camel) }

func ToScreamingSnakeCase(s string) string { return ConvertCase(s, Snake, ScreamingSnake) }

func ScreamingSnakeToSnakeCase(s string) string { return ConvertCase(s, ScreamingSnake, Snake) }

func CamelToKebabCase(s string) string { return ConvertCase(s, Camel, Kebab) }

func KebabToLowerCamelCase(s string) string { return ConvertCase(s, Kebab, Camel) }

func KebabToUpperCamelCase(s string) string { return ConvertCase(s, Kebab, Pascal) }

func KebabToSnakeCase(s string) string { return ConvertCase(s, Kebab, Snake) }

func SnakeToKebabCase(s string) string { return ConvertCase(s, Snake, Kebab) }

type wordStateMachine int

const (
	idle          wordStateMachine = iota // 0 before the first word
	firstAlphaNum                         // 1 first rune of a word
	alphaNum                              // 2 inside a word
	delimiter                             // 3 first rune after a word
)

func (s wordStateMachine) next(r rune) wordStateMachine {
	switch s {
	case idle:
		if isAlphaNum(r) {
			return firstAlphaNum
		}
	case firstAlphaNum:
		if isAlphaNum(r) {
			return alphaNum
		}
		return delimiter
	case alphaNum:
		if !isAlphaNum(r) {
			return delimiter
		}
	case delimiter:
		if isAlphaNum(r) {
			return firstAlphaNum
		}
		return idle
	}
	return s
}

func isAlphaNum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// textWords splits free text into lowercase words made of letters and numbers.
func textWords(str string) []string {
	var words []string
	var b strings.Builder

	state := idle
	for i := 0; i < len(str); {
		r, size := utf8.DecodeRuneInString(str[i:])
		i += size

		state = state.next(r)
		switch state {
		case firstAlphaNum:
			if b.Len() > 0 {
				words = append(words, b.String())
				b.Reset()
			}
			b.WriteRune(unicode.ToLower(r))
		case alphaNum:
			b.WriteRune(unicode.ToLower(r))
		}
	}

	if b.Len() > 0 {
		words = append(words, b.String())
	}

	return words
}

// TextToCase turns free text into an identifier of the target style, dropping
// everything that is not a letter or a number:
//
//	TextToCase("This is some text, OK?!", Snake) // "this_is_some_text_ok"
func TextToCase(text string, to CaseStyle) string {
	return Render(textWords(text), to)
}
