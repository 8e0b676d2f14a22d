package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validators "github.com/go-playground/validator/v10"
)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

// FieldError is returned by ValidateStruct when one or more fields fail their rules.
// Fields are named after their mapstructure, query or json tag.
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, "; ")
}

type validator struct {
	validator *validators.Validate
}

// New Validator func
func New() Validator {
	v := validators.New()
	v.RegisterTagNameFunc(tagName)
	return &validator{
		validator: v,
	}
}

// ValidateStruct func
func (v *validator) ValidateStruct(inf interface{}) error {
	err := v.validator.Struct(inf)
	if err == nil {
		return nil
	}

	var fieldErrs validators.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields = append(fields, fmt.Sprintf("%s (%s)", trimRoot(fe.Namespace()), rule))
	}
	return &FieldError{Fields: fields}
}

func tagName(field reflect.StructField) string {
	for _, key := range []string{"mapstructure", "query", "json"} {
		name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

// trimRoot drops the struct type name validator puts in front of every namespace
func trimRoot(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
