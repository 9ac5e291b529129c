package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var mediaKinds = map[string]bool{"movie": true, "series": true, "book": true, "music": true}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("media_kind", func(fl validator.FieldLevel) bool {
		return mediaKinds[fl.Field().String()]
	})
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ValidationError{{Field: "body", Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", field, fe.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
		case "media_kind":
			message = fmt.Sprintf("%s must be one of: movie, series, book, music", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		out = append(out, ValidationError{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}
	return out
}

// JSONValidationError writes a 400 listing the offending fields. The message
// names the first field so clients that only read "error" still see it.
func JSONValidationError(w http.ResponseWriter, r *http.Request, errs []ValidationError) {
	message := "Invalid input"
	if len(errs) > 0 {
		message = errs[0].Message
	}
	JSON(w, http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    "VALIDATION_ERROR",
		Fields:  errs,
		Meta:    buildMeta(r, nil),
	})
}
