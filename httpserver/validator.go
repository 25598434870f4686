package httpserver

import (
	"reflect"
	"strings"

	"moviecatalog/errs"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "param", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("notblank", validateNotBlank)
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return errs.Invalid(fieldErrors(err)...)
	}
	return nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(fl.Field().String()) != ""
}

func fieldErrors(err error) []errs.FieldError {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return []errs.FieldError{{Message: err.Error()}}
	}

	fields := make([]errs.FieldError, 0, len(ves))
	for _, fe := range ves {
		field := fe.Field()
		if field == "" {
			field = fe.StructField()
		}
		fields = append(fields, errs.FieldError{Field: field, Message: field + " failed on " + fe.Tag()})
	}
	return fields
}
