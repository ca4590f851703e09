/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/suparena/storemeter/errors"
)

// EmailSyntaxTag is the struct tag that applies ValidateEmailSyntax.
const EmailSyntaxTag = "email_syntax"

// StructValidator validates tagged structs. It is safe for concurrent use.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a validator with the email_syntax tag registered
// and field names reported by their json tag.
func NewStructValidator() (*StructValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := RegisterEmailSyntax(v); err != nil {
		return nil, err
	}
	return &StructValidator{validate: v}, nil
}

// RegisterEmailSyntax adds the email_syntax tag to an existing validator.
func RegisterEmailSyntax(v *validator.Validate) error {
	return v.RegisterValidation(EmailSyntaxTag, func(fl validator.FieldLevel) bool {
		return ValidateEmailSyntax(fl.Field().String())
	})
}

// Struct validates s and returns one ValidationError per failing field,
// joined, or nil.
func (sv *StructValidator) Struct(s any) error {
	err := sv.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.NewValidationError("", err.Error())
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, errors.NewValidationError(fe.Field(), message(fe)))
	}
	return stderrors.Join(errs...)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case EmailSyntaxTag, "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be no longer than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	}
	return fmt.Sprintf("failed %q check", fe.Tag())
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

var (
	defaultOnce      sync.Once
	defaultValidator *StructValidator
	defaultErr       error
)

// ValidateStruct validates s with a shared StructValidator.
func ValidateStruct(s any) error {
	defaultOnce.Do(func() {
		defaultValidator, defaultErr = NewStructValidator()
	})
	if defaultErr != nil {
		return defaultErr
	}
	return defaultValidator.Struct(s)
}
