package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/2beens/workouttracker/internal/tracker/repo"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names in errors
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// createRequest is a decoded create body with the message used when required fields are missing.
type createRequest interface {
	requiredFieldsMessage() string
}

func validateRequest(req createRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate request: %w", err)
	}

	var messages []string
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			return repo.Validationf("%s", req.requiredFieldsMessage())
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "datetime":
			messages = append(messages, fmt.Sprintf("invalid %s [%v], expected format YYYY-MM-DD", fe.Field(), fe.Value()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return repo.Validationf("%s", strings.Join(messages, "; "))
}
