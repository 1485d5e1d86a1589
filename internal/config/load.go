package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	yamlLine = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{Path: path, Line: lineOf(err), Err: err}
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and colour formats.
func Validate(cfg Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate config: %w", err)
	}
	fe := fieldErrs[0]
	return &ValidationError{
		Field:   strings.TrimPrefix(fe.Namespace(), "Config."),
		Message: describe(fe),
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "hexcolor":
		return fmt.Sprintf("%q is not a hex colour", fe.Value())
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func lineOf(err error) int {
	m := yamlLine.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return n
}
