package contact

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// emailShapeRegex mirrors the client-side grammar: one or more non-space,
// non-@ characters, an @, a domain part containing at least one dot.
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Report json field names so messages line up with the wire format.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation("email_shape", emailShape)
	})
	return validate
}

func emailShape(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}

// messages maps a failing field to its user-facing text. Deliberately
// coarse: one message per field regardless of which rule tripped, so the
// response reveals nothing about the validation internals.
func message(field, tag string) string {
	switch field {
	case "from":
		if tag == "required" {
			return "Email is required"
		}
		return "Invalid email address"
	case "subject":
		return "Subject must be between 1 and 200 characters"
	case "message":
		return "Message must be between 10 and 5000 characters"
	default:
		return "Invalid value"
	}
}

// Validate checks format and length rules against the submission. Callers
// must pass the result of Normalize; the rules are defined over sanitized
// values. Returns nil when the submission is valid.
func (s Submission) Validate() []FieldError {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "Invalid request data"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: message(fe.Field(), fe.Tag()),
		})
	}
	return out
}
