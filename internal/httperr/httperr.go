package httperr

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// report json names ("memberId") instead of Go field names ("MemberID")
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

type HTTPError struct {
	Success bool         `json:"success"`
	Code    string       `json:"errorCode"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, code, message string, fields ...FieldError) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
		Errors:  fields,
	})
}

// Respond writes err as the failure envelope. Anything that is not a
// BusinessError is reported as internal_error without leaking details.
func Respond(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		be = ErrInternal
	}
	Write(c, be.Status, be.Code, be.Message, be.Fields...)
}

// FromBinding converts gin binding failures into a validation_error listing
// the offending fields by their JSON names.
func FromBinding(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, 0, len(ve))
		names := make([]string, 0, len(ve))
		for _, fe := range ve {
			name := jsonName(fe)
			fields = append(fields, FieldError{Field: name, Issue: issue(fe)})
			names = append(names, name)
		}
		return Validation("Invalid or missing fields: "+strings.Join(names, ", "), fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Validation("Invalid value for "+typeErr.Field, FieldError{Field: typeErr.Field, Issue: "invalid_type"})
	}

	if errors.Is(err, io.EOF) {
		return Validation("Request body is required")
	}

	return Validation("Malformed request body")
}

func jsonName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return fe.StructField()
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func issue(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid_email"
	case "min", "gte":
		return "too_small"
	case "max", "lte":
		return "too_large"
	case "oneof":
		return "invalid_value"
	}
	return "invalid"
}
