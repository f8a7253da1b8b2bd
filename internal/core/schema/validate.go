package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type structRule struct {
	fn    validator.StructLevelFunc
	types []any
}

var (
	validate     *validator.Validate
	validateOnce sync.Once

	// structRules are registered by the resource schemas at init.
	structRules []structRule
)

func registerStructRule(fn validator.StructLevelFunc, types ...any) {
	structRules = append(structRules, structRule{fn: fn, types: types})
}

// nullable is satisfied by every domain.Nullable instantiation. The boxed
// pointer keeps zero values visible to omitempty.
type nullable interface {
	PtrOrNil() any
}

func engine() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields under their JSON names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if n, ok := field.Interface().(nullable); ok {
				return n.PtrOrNil()
			}
			return nil
		}, domain.Nullable[string]{}, domain.Nullable[int64]{})

		if err := v.RegisterValidation("positive", isPositive); err != nil {
			panic(err)
		}

		for _, rule := range structRules {
			v.RegisterStructValidation(rule.fn, rule.types...)
		}
		validate = v
	})
	return validate
}

// isPositive accepts numbers, and decimals in their string form, greater than zero.
func isPositive(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(field.String())
		return err == nil && d.IsPositive()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return field.Uint() > 0
	case reflect.Float32, reflect.Float64:
		return field.Float() > 0
	default:
		return false
	}
}

// validateInto runs the struct tags and struct-level rules on v and records
// the failures on r. Paths the reader already reported are left alone.
func validateInto(r *Reader, v any) {
	err := engine().Struct(v)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		r.AddIssue("", err.Error())
		return
	}
	for _, fe := range verrs {
		if r.reported[fe.Field()] {
			continue
		}
		r.AddIssue(fe.Field(), issueMessage(fe))
	}
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "min":
		return fmt.Sprintf("Must contain at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("Must contain at most %s character(s)", fe.Param())
	case "positive":
		return "Must be greater than 0"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "oneof":
		return "Invalid enum value. Expected " + strings.Join(strings.Fields(fe.Param()), " | ")
	case tagDueAfterIssue:
		return MsgDueAfterIssue
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
}
