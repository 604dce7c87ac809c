package strkit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownValidator = errors.New("unknown validator")

// ValidatorFunc reports whether a value is valid
type ValidatorFunc func(value string) bool

// ValidatorSet maps validator names to functions. It is filled once at
// construction and only read afterwards.
type ValidatorSet struct {
	validators map[string]ValidatorFunc
}

// NewValidatorSet returns the built-in checksum validators, with the mobile
// number check bound to the given prefix validator.
func NewValidatorSet(mobile *MobileValidator) *ValidatorSet {
	if mobile == nil {
		mobile = defaultMobileValidator
	}

	set := &ValidatorSet{validators: map[string]ValidatorFunc{}}
	set.add("luhn", Luhn)
	set.add("card", CreditCard)
	set.add("national-code", IranianNationalCode)
	set.add("mobile", mobile.Valid)
	return set
}

func (s *ValidatorSet) add(name string, fn ValidatorFunc) {
	if _, ok := s.validators[name]; ok {
		panic(fmt.Sprintf("failed to add validator %q: name conflicts with an existing validator", name))
	}

	s.validators[name] = fn
}

// Names returns the validator names in sorted order.
func (s *ValidatorSet) Names() []string {
	names := make([]string, 0, len(s.validators))
	for name := range s.validators {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (s *ValidatorSet) Lookup(name string) (ValidatorFunc, error) {
	fn, ok := s.validators[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownValidator, "%q, available validators: %s", name, strings.Join(s.Names(), ", "))
	}

	return fn, nil
}

// Verdict is the outcome of running a named validator on one input
type Verdict struct {
	Validator string
	Input     string
	Valid     bool
}

// Check validates every value with the named validator. Values are passed
// through NormalizeDigits first, so Persian and Arabic-Indic digits are accepted.
func (s *ValidatorSet) Check(name string, values ...string) ([]Verdict, error) {
	fn, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}

	verdicts := make([]Verdict, 0, len(values))
	for _, v := range values {
		verdicts = append(verdicts, Verdict{
			Validator: name,
			Input:     v,
			Valid:     fn(NormalizeDigits(v)),
		})
	}

	return verdicts, nil
}
