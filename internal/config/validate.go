package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"

	"github.com/vango-dev/elements/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator with the semver and duration tags
// registered. The registry package validates its manifest with it too.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return ValidVersion(fl.Field().String())
		})
		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			_, err := time.ParseDuration(fl.Field().String())
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

// ValidVersion reports whether s is a semantic version, with or without the
// leading v.
func ValidVersion(s string) bool {
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	return semver.IsValid(s)
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := Validator().Struct(c); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return errors.New("E102").Wrap(err)
	}
	fe := ves[0]
	return errors.New("E102").
		WithDetail(fmt.Sprintf("%s: failed %q validation (value %v)", fieldPath(fe.Namespace()), fe.Tag(), fe.Value())).
		WithSuggestion(suggestion(fe.Tag()))
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func suggestion(tag string) string {
	switch tag {
	case "semver":
		return "Use a semantic version such as 1.2.0"
	case "duration":
		return "Use a Go duration such as 30s or 5m"
	case "oneof":
		return "Use one of debug, info, warn or error"
	case "url":
		return "Use an absolute URL such as https://example.com/registry.json"
	default:
		return "Check " + ConfigFileName
	}
}
