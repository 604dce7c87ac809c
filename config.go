package strkit

import (
	"os"

	"github.com/codingconcepts/env"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// OperatorPrefixes is the allow-list used by the mobile number validator
	OperatorPrefixes []string `json:"operatorPrefixes" yaml:"operatorPrefixes" env:"STRKIT_OPERATOR_PREFIXES"`

	// SimilarityDigits is the number of decimal places similarity scores are rounded to
	SimilarityDigits int `json:"similarityDigits" yaml:"similarityDigits" env:"STRKIT_SIMILARITY_DIGITS"`

	// DigitAlphabet is the default output alphabet of the digits command
	DigitAlphabet string `json:"digitAlphabet" yaml:"digitAlphabet" env:"STRKIT_DIGIT_ALPHABET"`
}

func DefaultConfig() *Config {
	return &Config{
		OperatorPrefixes: append([]string(nil), DefaultOperatorPrefixes...),
		SimilarityDigits: DefaultSimilarityDigits,
		DigitAlphabet:    Western.String(),
	}
}

// LoadConfig reads the yaml config file on top of the defaults and then
// applies the STRKIT_* environment variables. An empty configFile skips the
// file and only reads the environment.
func LoadConfig(configFile string) (*Config, error) {
	config := DefaultConfig()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", configFile)
		}

		log.Debugf("loaded config file %s", configFile)
	}

	if err := env.Set(config); err != nil {
		return nil, errors.Wrap(err, "failed to load config from environment")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if len(c.OperatorPrefixes) == 0 {
		return errors.New("operatorPrefixes can not be empty")
	}

	for _, p := range c.OperatorPrefixes {
		if len(p) != 3 || !isASCIIDigits(p) || p[:2] != "09" {
			return errors.Errorf("invalid operator prefix %q: must be 3 digits starting with 09", p)
		}
	}

	if c.SimilarityDigits < 0 || c.SimilarityDigits > 10 {
		return errors.Errorf("similarityDigits must be between 0 and 10, got %d", c.SimilarityDigits)
	}

	if _, err := ParseDigitAlphabet(c.DigitAlphabet); err != nil {
		return errors.Wrap(err, "invalid digitAlphabet")
	}

	return nil
}

func (c *Config) MobileValidator() *MobileValidator {
	return NewMobileValidator(c.OperatorPrefixes...)
}

// Alphabet returns the configured digit alphabet, Western when it can not be parsed.
func (c *Config) Alphabet() DigitAlphabet {
	a, err := ParseDigitAlphabet(c.DigitAlphabet)
	if err != nil {
		return Western
	}

	return a
}
