package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/storefront-api/internal/httperr"
)

// Details turns a binding error into one entry per failed field.
func Details(err error) []httperr.Detail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]httperr.Detail, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, httperr.Detail{
				Message: message(fe),
				Path:    fe.Field(),
				Type:    fe.Tag(),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []httperr.Detail{{
			Message: fmt.Sprintf("%q must be a %s", typeErr.Field, typeErr.Type.String()),
			Path:    typeErr.Field,
			Type:    "type",
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []httperr.Detail{{
			Message: "request body must be valid JSON",
			Type:    "json",
		}}
	}

	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		field = strings.Trim(field, `"`)
		return []httperr.Detail{{
			Message: fmt.Sprintf("%q is not allowed", field),
			Path:    field,
			Type:    "unknown",
		}}
	}

	return []httperr.Detail{{Message: "invalid request body", Type: "body"}}
}

// AtLeastOne is reported when a partial update carries no fields.
func AtLeastOne() []httperr.Detail {
	return []httperr.Detail{{
		Message: "at least one field must be provided",
		Type:    "min_fields",
	}}
}

func InvalidID(param string) []httperr.Detail {
	return []httperr.Detail{{
		Message: fmt.Sprintf("%q must be a positive integer", param),
		Path:    param,
		Type:    "positive_int",
	}}
}

func NotAllowed(param string, allowed []string) []httperr.Detail {
	return []httperr.Detail{{
		Message: fmt.Sprintf("%q must be one of [%s]", param, strings.Join(allowed, ", ")),
		Path:    param,
		Type:    "oneof",
	}}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "min":
		if isString(fe) {
			return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "max":
		if isString(fe) {
			return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be less than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%q must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "strongpassword":
		return fmt.Sprintf("%q must be at least 8 characters and contain upper and lower case letters, a digit and a symbol", field)
	case "alphaspace":
		return fmt.Sprintf("%q may only contain letters and spaces", field)
	case "maxbytes":
		return fmt.Sprintf("%q must be at most %s bytes long", field, fe.Param())
	case "decimal2":
		return fmt.Sprintf("%q must have at most 2 decimal places", field)
	}
	return fmt.Sprintf("%q failed the %s check", field, fe.Tag())
}

func isString(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}
