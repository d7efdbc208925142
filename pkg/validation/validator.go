package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for the domain enums.
// Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			Configure(v)
		}
	})
}

var initOnce sync.Once

// Configure applies tag-name and alias registration to v.
func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Aliases for the domain enums
	v.RegisterAlias("role", "oneof=player coach admin")
	v.RegisterAlias("result", "oneof=Win Loss Draw")
	v.RegisterAlias("fixturetype", "oneof=Friendly League Tournament")
	v.RegisterAlias("fixturestatus", "oneof=Scheduled Completed Cancelled")
	v.RegisterAlias("insighttype", "oneof=Performance Health Strategy")
	_ = v.RegisterValidation("notzerotime", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && !t.IsZero()
	})
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	var pe *time.ParseError
	if errors.As(err, &se) || errors.As(err, &ute) {
		if ute != nil && ute.Field != "" {
			return map[string]string{ute.Field: "must be of type " + ute.Type.String()}
		}
		return map[string]string{"payload": "invalid json"}
	}
	if errors.As(err, &pe) {
		return map[string]string{"payload": "invalid date, use RFC 3339"}
	}

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required":
		return "is required"
	case "required_without":
		return "is required when " + param + " is not present"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "min":
		if isNumberKind(kind) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(kind) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	// Aliases report their own name as the tag and carry the oneof param.
	case "oneof", "role", "result", "fixturetype", "fixturestatus", "insighttype":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "notzerotime":
		return "must be a valid date"

	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
