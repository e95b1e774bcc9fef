package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":          "This field is required.",
	"max":               "Field cannot be longer than %s characters.",
	"assumption_name":   "Only letters, digits, spaces and + - _ . are allowed.",
	"excel_ext":         "File type is not allowed.",
	"assumption_status": "Invalid status.",
	"run_id":            "Run id must be printable characters without spaces.",
}

// FieldErrors maps each failing field to a human readable message. Fields are
// named after their form tag when present.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("Failed on the %q rule.", fe.Tag())
		} else if fe.Param() != "" {
			msg = fmt.Sprintf(msg, fe.Param())
		}
		out[fe.Field()] = msg
	}
	return out
}
