package recurly

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under their wire names, e.g. account.account_code.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("xml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// accountInput is the subset of an account checked before it is sent.
type accountInput struct {
	AccountCode string `xml:"account_code" validate:"required,max=50"`
	Email       string `xml:"email" validate:"omitempty,email"`
}

// Validate runs the checks the API would otherwise reject the account for.
// It returns a *ValidationError shaped like the one the server sends.
func (a *Account) Validate() error {
	err := validate.Struct(accountInput{
		AccountCode: a.accountCode,
		Email:       a.Email,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := &Errors{}
	for _, fe := range fieldErrs {
		symbol, msg := describeFieldError(fe)
		errs.ValidationErrors = append(errs.ValidationErrors, Error{
			Field:   "account." + fe.Field(),
			Symbol:  symbol,
			Message: msg,
		})
	}
	return &ValidationError{Errors: errs}
}

// describeFieldError maps a validator tag onto the API's symbol and message.
func describeFieldError(fe validator.FieldError) (symbol, message string) {
	switch fe.Tag() {
	case "required":
		return "blank", "can't be blank"
	case "max":
		return "too_long", fmt.Sprintf("is too long (maximum is %s characters)", fe.Param())
	case "email":
		return "invalid_email", "is not a valid email address"
	default:
		return "invalid", "is invalid"
	}
}
