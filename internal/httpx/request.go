package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrEmptyBody is returned by DecodeJSON when the request has no body.
	ErrEmptyBody = errors.New("request body must not be empty")
	// ErrTrailingData is returned when the body holds more than one JSON value.
	ErrTrailingData = errors.New("request body must only contain a single JSON value")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so details match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("truthy", func(fl validator.FieldLevel) bool {
		return truthy(fl.Field())
	})
	return v
}

var numberType = reflect.TypeOf(json.Number(""))

// truthy reports whether a decoded JSON value counts as present: not null,
// false, 0 or the empty string. Arrays and objects are always present.
func truthy(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Interface, reflect.Pointer:
		return !v.IsNil() && truthy(v.Elem())
	case reflect.Bool:
		return v.Bool()
	case reflect.String:
		if v.Type() == numberType {
			f, err := json.Number(v.String()).Float64()
			return err == nil && f != 0
		}
		return v.String() != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}

// DecodeJSON decodes exactly one JSON value from the request body into dst.
// Numbers landing in untyped fields are kept as json.Number so integers
// survive storage without turning into floats.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// ValidateStruct runs the validate tags of s and returns one detail per
// failing field, or nil when s is valid.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		var message string
		switch fe.Tag() {
		case "required", "truthy":
			message = fmt.Sprintf("%s is required", field)
		case "gte", "lte":
			message = fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	return details
}

// BadBody writes the response for a body DecodeJSON rejected.
func BadBody(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		JSONError(w, r, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "Request body too large", nil)
		return
	}
	JSONError(w, r, http.StatusBadRequest, CodeInvalidBody, "Invalid request body", []ErrorDetail{{Field: "body", Message: err.Error()}})
}
