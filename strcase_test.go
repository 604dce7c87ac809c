package strkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamedCaseConversions(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string) string
		input string
		want  string
	}{
		{"UpperCamelToSnakeCase", UpperCamelToSnakeCase, "ExampleVariableName", "example_variable_name"},
		{"LowerCamelToSnakeCase", LowerCamelToSnakeCase, "camelCaseExample", "camel_case_example"},
		{"SnakeToUpperCamelCase", SnakeToUpperCamelCase, "example_variable_name", "ExampleVariableName"},
		{"SnakeToLowerCamelCase", SnakeToLowerCamelCase, "snake_case_example", "snakeCaseExample"},
		{"ToScreamingSnakeCase", ToScreamingSnakeCase, "example_variable_name", "EXAMPLE_VARIABLE_NAME"},
		{"ScreamingSnakeToSnakeCase", ScreamingSnakeToSnakeCase, "EXAMPLE_VARIABLE_NAME", "example_variable_name"},
		{"CamelToKebabCase", CamelToKebabCase, "camelCaseExample", "camel-case-example"},
		{"KebabToLowerCamelCase", KebabToLowerCamelCase, "kebab-case-example", "kebabCaseExample"},
		{"KebabToUpperCamelCase", KebabToUpperCamelCase, "kebab-case-example", "KebabCaseExample"},
		{"KebabToSnakeCase", KebabToSnakeCase, "kebab-case-example", "kebab_case_example"},
		{"SnakeToKebabCase", SnakeToKebabCase, "snake_case_example", "snake-case-example"},
		{"empty", SnakeToUpperCamelCase, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		from  CaseStyle
		want  []string
	}{
		{"ExampleVariableName", Pascal, []string{"example", "variable", "name"}},
		{"camelCase", Camel, []string{"camel", "case"}},
		{"HTTPServer", Pascal, []string{"h", "t", "t", "p", "server"}},
		{"version2Beta", Camel, []string{"version2", "beta"}},
		{"lower", Camel, []string{"lower"}},
		{"snake_case_name", Snake, []string{"snake", "case", "name"}},
		{"SCREAMING_NAME", ScreamingSnake, []string{"screaming", "name"}},
		{"kebab-case", Kebab, []string{"kebab", "case"}},
		{"a__b", Snake, []string{"a", "", "b"}},
		{"", Snake, nil},
		{"whatever", CaseStyle(99), nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input, tt.from))
		})
	}
}

func TestRender(t *testing.T) {
	tokens := []string{"example", "variable", "name"}

	assert.Equal(t, "exampleVariableName", Render(tokens, Camel))
	assert.Equal(t, "ExampleVariableName", Render(tokens, Pascal))
	assert.Equal(t, "example_variable_name", Render(tokens, Snake))
	assert.Equal(t, "EXAMPLE_VARIABLE_NAME", Render(tokens, ScreamingSnake))
	assert.Equal(t, "example-variable-name", Render(tokens, Kebab))
	assert.Equal(t, "", Render(nil, Pascal))
	assert.Equal(t, "", Render(tokens, CaseStyle(99)))
}

func TestConvertCase(t *testing.T) {
	assert.Equal(t, "h_t_t_p_server", ConvertCase("HTTPServer", Pascal, Snake))
	assert.Equal(t, "exampleName", ConvertCase("EXAMPLE_NAME", ScreamingSnake, Camel))
	assert.Equal(t, "EXAMPLE-NAME", ConvertCase("EXAMPLE-NAME", Kebab, Kebab))
	assert.Equal(t, "EXAMPLE_VARIABLE_NAME", ConvertCase("ExampleVariableName", Pascal, ScreamingSnake))
	assert.Equal(t, "Hello worldFoo", ConvertCase("hello world_foo", Snake, Pascal))
	assert.Equal(t, "helloWorld-foo", ConvertCase("hello_world-foo", Snake, Camel))

	// case folding between snake styles keeps every separator as it is
	assert.Equal(t, "A__B_", ConvertCase("a__b_", Snake, ScreamingSnake))
	assert.Equal(t, "a__b_", ConvertCase("A__B_", ScreamingSnake, Snake))
}

func TestSnakeKebabRoundTrip(t *testing.T) {
	for _, s := range []string{"a", "abc-def", "one-two-three", "x-y", "trailing-"} {
		assert.Equal(t, s, SnakeToKebabCase(KebabToSnakeCase(s)), s)
	}
}

func TestTextToCase(t *testing.T) {
	tests := []struct {
		text string
		to   CaseStyle
		want string
	}{
		{"This is some text, OK?!", Snake, "this_is_some_text_ok"},
		{"This is some text, OK?!", Pascal, "ThisIsSomeTextOk"},
		{"  _$$_hello   world__ ", Kebab, "hello-world"},
		{"order id 42", Camel, "orderId42"},
		{"?!", Snake, ""},
		{"", Snake, ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, TextToCase(tt.text, tt.to))
		})
	}
}

func TestParseCaseStyle(t *testing.T) {
	for _, style := range []CaseStyle{Camel, Pascal, Snake, Kebab, ScreamingSnake} {
		got, err := ParseCaseStyle(style.String())
		assert.NoError(t, err)
		assert.Equal(t, style, got)
	}

	got, err := ParseCaseStyle(" Upper-Camel ")
	assert.NoError(t, err)
	assert.Equal(t, Pascal, got)

	_, err = ParseCaseStyle("train")
	assert.ErrorIs(t, err, ErrUnknownCaseStyle)
}
