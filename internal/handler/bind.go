package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/trip-registry/internal/handler/gen"
)

// FieldError describes one failed validation rule on a request body field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message,omitempty"`
}

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return sf.Name
		}
		return name
	})
	return v
}

// validateBody checks body against its validate tags. It returns nil when the
// body is valid, or an ErrorResponse listing every failing field.
func (s *Server) validateBody(body any) *gen.ErrorResponse {
	err := s.validate.Struct(body)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		resp := errorBody(CodeInvalidArgument, err.Error())
		return &resp
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: validationMessage(fe.Tag(), fe.Param()),
		})
	}

	resp := errorBody(CodeInvalidArgument, "invalid request body")
	resp.Error.Details = &map[string]interface{}{"fields": fields}
	return &resp
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	default:
		if param != "" {
			return fmt.Sprintf("failed %s validation (%s)", rule, param)
		}
		return "failed " + rule + " validation"
	}
}
