// Package validation registers the custom request validators and renders
// validator errors as per-field messages.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	maxIntegerDigits  = 18
	maxFractionDigits = 2

	passwordSpecials = "@$!%*?&"
)

var (
	personNamePattern = regexp.MustCompile(`^[A-Za-zÑñ]+( [A-Za-zÑñ]+)*$`)
	addressPattern    = regexp.MustCompile(`^[A-Za-zÑñ0-9\s,.-]+$`)
)

var registerOnce sync.Once

// RegisterWithGin installs the custom validators on gin's binding engine.
// It is safe to call more than once.
func RegisterWithGin() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			Register(v)
		}
	})
}

// Register installs the custom validators and the JSON field naming on v.
func Register(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(jsonFieldName)

	_ = v.RegisterValidation("decimal18_2", validateDecimal)
	_ = v.RegisterValidation("personname", validatePattern(personNamePattern))
	_ = v.RegisterValidation("address", validatePattern(addressPattern))
	_ = v.RegisterValidation("password", validatePassword)
}

// decimalValue lets the string tags run against a decimal's canonical text.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// IsValidDecimal reports whether s is a decimal with at most 18 integer and 2 fraction digits.
func IsValidDecimal(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	text := d.Abs().String()
	intPart, fracPart, _ := strings.Cut(text, ".")
	return len(intPart) <= maxIntegerDigits && len(fracPart) <= maxFractionDigits
}

func validateDecimal(fl validator.FieldLevel) bool {
	return IsValidDecimal(fl.Field().String())
}

func validatePattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// IsValidPassword reports whether p has 8 to 20 characters drawn from letters,
// digits and @$!%*?&, with at least one upper case letter, one lower case
// letter, one digit and one special character.
func IsValidPassword(p string) bool {
	if n := len([]rune(p)); n < 8 || n > 20 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case unicode.IsDigit(r) && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return upper && lower && digit && special
}

func validatePassword(fl validator.FieldLevel) bool {
	return IsValidPassword(fl.Field().String())
}

// FieldErrors converts validator errors into apperrors.FieldErrors. It returns
// false when err does not come from the validator.
func FieldErrors(err error) (apperrors.FieldErrors, bool) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, false
	}
	out := make(apperrors.FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apperrors.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Cannot be blank"
	case "len":
		if fe.Param() == "10" {
			return "Should be a 10-digit number"
		}
		return fmt.Sprintf("Must have exactly %s characters", fe.Param())
	case "number":
		return "Should be a 10-digit number"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must have at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Should not be less than %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must have maximum %s characters", fe.Param())
		}
		return fmt.Sprintf("Should not be greater than %s", fe.Param())
	case "decimal18_2":
		return "Must have a maximum of 18 integer digits and 2 decimal digits."
	case "personname":
		return "Must contain only letters and single spaces between words"
	case "address":
		return "Invalid address format"
	case "password":
		return "Password must be at least 8 characters and maximum 20 characters and include an uppercase letter, a lowercase letter, a number, and a special character"
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
}
