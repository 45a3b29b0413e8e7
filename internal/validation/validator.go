// Package validation holds the shared struct validator used for settings,
// rule tables and input documents.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	auditerrors "github.com/alexisbeaulieu97/reportaudit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report field names the way they are spelled in YAML files.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("check_name", func(fl validator.FieldLevel) bool {
			_, err := model.ParseCheckType(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("contrast_level", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}
			_, err := model.ParseContrastLevel(value)
			return err == nil
		})

		_ = v.RegisterValidation("regexp", func(fl validator.FieldLevel) bool {
			_, err := regexp.Compile(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// Struct validates s and converts the first failure into a typed error.
func Struct(s interface{}) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return auditerrors.NewValidationError("", err.Error(), err)
	}

	ve := ves[0]
	field := fieldName(ve)
	value := fmt.Sprint(ve.Value())

	switch ve.Tag() {
	case "check_name":
		return auditerrors.NewUnknownCheckError(field, value, model.CheckTypeNames())
	case "contrast_level":
		return auditerrors.NewInvalidValueError(field, "contrast level", value, model.ContrastLevelNames())
	}

	msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
	if ve.Param() != "" {
		msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
	}
	return auditerrors.NewValidationError(field, msg, err)
}

// fieldName drops the root struct from the namespace, e.g.
// "Settings.checks[1]" becomes "checks[1]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
