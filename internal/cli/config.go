package cli

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/toyz/dtsdoc/internal/errors"
	"github.com/toyz/dtsdoc/internal/templates"
	"github.com/toyz/dtsdoc/internal/utils/fileops"
)

// Config holds the configuration of one documentation run
type Config struct {
	// Input lists the declaration files, directories or glob patterns to read
	Input StringList `yaml:"input" validate:"required,min=1,dive,required"`

	// Output is the document path; a directory gets api.md appended.
	// Defaults to <root>/doc/api.md
	Output string `yaml:"output"`

	// Overwrite replaces an existing document, defaults to true
	Overwrite bool `yaml:"overwrite"`

	// EnableEscape escapes | in type and description cells
	EnableEscape bool `yaml:"enableEscape"`

	// Locale selects the document labels (zh or en), defaults to zh
	Locale string `yaml:"locale" validate:"omitempty,locale"`

	// Root is the project root inputs must live under, defaults to the working directory
	Root string `yaml:"root"`

	// Verbose enables detailed logging and error reporting
	Verbose bool `yaml:"-"`

	// Debug also logs skipped declarations
	Debug bool `yaml:"-"`

	// Quiet limits output to errors
	Quiet bool `yaml:"-"`

	// Clean removes the document instead of generating it
	Clean bool `yaml:"-"`
}

// DefaultConfig returns a configuration with every default applied
func DefaultConfig() *Config {
	return &Config{
		Overwrite: true,
		Locale:    templates.DefaultLocale.Tag.String(),
	}
}

// StringList accepts either a single YAML string or a list of strings
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == "" {
			*s = nil
			return nil
		}
		*s = StringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: input must be a string or a list of strings", value.Line)
	}
}

// LoadConfigFile reads a YAML configuration file on top of the defaults
func LoadConfigFile(path string, ops *fileops.FileOps) (*Config, error) {
	if ops == nil {
		ops = fileops.NewFileOps()
	}

	content, err := ops.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(content)
}

// ParseConfig decodes YAML configuration on top of the defaults
func ParseConfig(content []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, errors.WrapConfigurationError("yaml", "decode", err).
			WithSuggestions("Supported keys: input, output, overwrite, enableEscape, locale, root")
	}
	return config, nil
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := templates.ParseLocale(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the configuration and reports every invalid field
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.WrapConfigurationError("config", "validate", err)
	}

	var problems []string
	var suggestions []string
	for _, fieldErr := range validationErrors {
		problems = append(problems, describeFieldError(fieldErr))
		switch fieldErr.Tag() {
		case "required", "min":
			suggestions = append(suggestions, "Pass declaration paths as arguments or set 'input' in the config file")
		case "locale":
			suggestions = append(suggestions, fmt.Sprintf("Supported locales: %s", strings.Join(templates.SupportedLocales(), ", ")))
		}
	}

	return errors.ConfigurationError("config", strings.Join(problems, "; ")).
		WithSuggestions(suggestions...)
}

// describeFieldError converts a validator error into a readable message
func describeFieldError(fieldErr validator.FieldError) string {
	field := strings.ToLower(fieldErr.Field())
	switch fieldErr.Tag() {
	case "required", "min":
		return fmt.Sprintf("%s is required", field)
	case "locale":
		return fmt.Sprintf("%s %q is not supported", field, fieldErr.Value())
	default:
		return fmt.Sprintf("%s failed on %s", field, fieldErr.Tag())
	}
}
