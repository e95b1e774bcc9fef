package validator

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

var (
	assumptionNameRegex = regexp.MustCompile(`^[a-zA-Z0-9+\-_. ]+$`)
	runIDRegex          = regexp.MustCompile(`^[[:graph:]]+$`)
)

func nameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return assumptionNameRegex.MatchString(val)
}

// extensionValidator accepts file names whose lower-cased extension is one of
// allowed.
func extensionValidator(allowed []string) func(fl validator.FieldLevel) bool {
	normalized := lo.Map(allowed, func(ext string, _ int) string {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		return ext
	})

	return func(fl validator.FieldLevel) bool {
		val, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return lo.Contains(normalized, strings.ToLower(filepath.Ext(val)))
	}
}

func assumptionStatusValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return model.AssumptionStatus(val).Valid()
}

// runIDValidator accepts printable ASCII without spaces.
func runIDValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return runIDRegex.MatchString(val)
}
