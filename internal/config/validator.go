package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/stylist/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	presetKeyPattern = regexp.MustCompile(`^[hp][1-9][0-9]?$`)
	colorNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	namedWeights     = map[string]struct{}{"normal": {}, "bold": {}, "bolder": {}, "light": {}, "lighter": {}}
	numericWeights   = regexp.MustCompile(`^[1-9]00$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("preset_key", func(fl validator.FieldLevel) bool {
			return presetKeyPattern.MatchString(fl.Field().String())
		})

		// Color names must not contain "-" so they never shadow "slot-variant" or "family-shade" tokens.
		_ = v.RegisterValidation("color_name", func(fl validator.FieldLevel) bool {
			return colorNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("font_weight", func(fl validator.FieldLevel) bool {
			weight := fl.Field().String()
			if _, ok := namedWeights[weight]; ok {
				return true
			}
			return numericWeights.MatchString(weight)
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on a theme file.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
