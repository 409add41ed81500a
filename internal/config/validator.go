package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/glintui/glint/internal/popover"
	glinterrors "github.com/glintui/glint/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern       = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	occasionNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
	monthDayPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

	paletteSlots = map[string]struct{}{
		"primary": {}, "secondary": {}, "surface": {}, "success": {},
		"warning": {}, "danger": {}, "info": {}, "neutral": {},
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("occasion_name", func(fl validator.FieldLevel) bool {
			return occasionNamePattern.MatchString(fl.Field().String())
		})

		// month_day is "MM-DD", month first.
		_ = v.RegisterValidation("month_day", func(fl validator.FieldLevel) bool {
			return monthDayPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("placement", func(fl validator.FieldLevel) bool {
			_, err := popover.ParsePlacement(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("palette_slot", func(fl validator.FieldLevel) bool {
			_, ok := paletteSlots[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use
// outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig performs schema and cross-field validation on the
// configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return glinterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(cfg.Occasions.Custom))
	for i, occ := range cfg.Occasions.Custom {
		field := fmt.Sprintf("occasions.custom[%d]", i)

		if _, exists := seen[occ.Name]; exists {
			return glinterrors.NewValidationError(field+".name", fmt.Sprintf("duplicate occasion name %q", occ.Name), nil)
		}
		seen[occ.Name] = struct{}{}

		hasDate := occ.Date != ""
		hasRange := occ.From != "" || occ.To != ""
		switch {
		case hasDate && hasRange:
			return glinterrors.NewValidationError(field, "date and from/to are mutually exclusive", nil)
		case !hasDate && !hasRange:
			return glinterrors.NewValidationError(field, "either date or from/to is required", nil)
		case hasRange && (occ.From == "" || occ.To == ""):
			return glinterrors.NewValidationError(field, "from and to must both be set", nil)
		}
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
		return glinterrors.NewValidationError(field, msg, err)
	}

	return glinterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
