package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func NewUploadValidationRules(allowedExtensions []string) []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("assumption_name", nameValidator),
		},
		{
			Rule: registerFn("excel_ext", extensionValidator(allowedExtensions)),
		},
	}
}

func NewAssumptionValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("assumption_status", assumptionStatusValidator),
		},
	}
}

func NewSimulationValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("assumption_name", nameValidator),
		},
		{
			Rule: registerFn("run_id", runIDValidator),
		},
	}
}
