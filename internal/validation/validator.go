// Package validation implements the declarative rule interpreter used by
// every write endpoint. A RuleSet is evaluated in one pass against the raw
// JSON payload and either passes silently or yields the complete
// field→messages map, so the caller always sees every violation at once.
package validation

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
)

// Errors is the field→messages map produced by a failed evaluation.
type Errors map[string][]string

func (e Errors) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e))
}

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// formats delegates format primitives (email) to go-playground/validator.
var formats = playground.New()

// dateLayouts are the accepted textual date/datetime representations.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Evaluate runs the rule set against payload. partial enables
// partial-update semantics: fields guarded by Sometimes are skipped
// entirely when absent. The returned Errors is nil when validation passed;
// the second return value reports store lookup failures only.
func Evaluate(ctx context.Context, rules RuleSet, payload map[string]any, partial bool) (Errors, error) {
	errs := Errors{}

	for _, field := range rules {
		value, present := payload[field.Name]

		if skip, err := checkField(ctx, field, value, present, partial, payload, errs); err != nil {
			return nil, err
		} else if skip {
			continue
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}

func checkField(ctx context.Context, field Field, value any, present, partial bool, payload map[string]any, errs Errors) (bool, error) {
	for _, rule := range field.Rules {
		switch rule.Kind {
		case KindSometimes:
			if partial && !present {
				return true, nil
			}

		case KindRequired:
			if !present || value == nil || value == "" {
				errs.add(field.Name, fmt.Sprintf("El campo %s es obligatorio.", field.Name))
				return true, nil
			}

		case KindNullable:
			if !present || value == nil {
				return true, nil
			}

		case KindString:
			if _, ok := value.(string); !ok {
				errs.add(field.Name, fmt.Sprintf("El campo %s debe ser una cadena de texto.", field.Name))
				return true, nil
			}

		case KindInteger:
			if !isInteger(value) {
				errs.add(field.Name, fmt.Sprintf("El campo %s debe ser un número entero.", field.Name))
				return true, nil
			}

		case KindNumeric:
			if _, ok := asFloat(value); !ok {
				errs.add(field.Name, fmt.Sprintf("El campo %s debe ser numérico.", field.Name))
				return true, nil
			}

		case KindBoolean:
			if _, ok := value.(bool); !ok {
				errs.add(field.Name, fmt.Sprintf("El campo %s debe ser verdadero o falso.", field.Name))
				return true, nil
			}

		case KindDate:
			s, ok := value.(string)
			if !ok {
				errs.add(field.Name, fmt.Sprintf("El campo %s debe ser una fecha válida.", field.Name))
				return true, nil
			}
			if _, err := ParseDate(s); err != nil {
				errs.add(field.Name, fmt.Sprintf("El campo %s debe ser una fecha válida.", field.Name))
				return true, nil
			}

		case KindEmail:
			s, ok := value.(string)
			if !ok || formats.VarCtx(ctx, s, "email") != nil {
				errs.add(field.Name, fmt.Sprintf("El campo %s debe ser una dirección de correo válida.", field.Name))
				return true, nil
			}

		case KindMinLen:
			if s, ok := value.(string); ok && utf8.RuneCountInString(s) < rule.Len {
				errs.add(field.Name, fmt.Sprintf("El campo %s debe contener al menos %d caracteres.", field.Name, rule.Len))
			}

		case KindMaxLen:
			if s, ok := value.(string); ok && utf8.RuneCountInString(s) > rule.Len {
				errs.add(field.Name, fmt.Sprintf("El campo %s no debe ser mayor que %d caracteres.", field.Name, rule.Len))
			}

		case KindMin:
			if n, ok := asFloat(value); ok && n < rule.Bound {
				errs.add(field.Name, fmt.Sprintf("El campo %s debe ser al menos %s.", field.Name, trimFloat(rule.Bound)))
			}

		case KindMax:
			if n, ok := asFloat(value); ok && n > rule.Bound {
				errs.add(field.Name, fmt.Sprintf("El campo %s no debe ser mayor que %s.", field.Name, trimFloat(rule.Bound)))
			}

		case KindConfirmed:
			confirmation := payload[field.Name+"_confirmation"]
			if confirmation != value {
				errs.add(field.Name, fmt.Sprintf("La confirmación de %s no coincide.", field.Name))
				return true, nil
			}

		case KindUnique:
			taken, err := rule.Lookup(ctx, value)
			if err != nil {
				return false, fmt.Errorf("unique check for %s: %w", field.Name, err)
			}
			if taken {
				errs.add(field.Name, fmt.Sprintf("El valor del campo %s ya está en uso.", field.Name))
				return true, nil
			}

		case KindExists:
			exists, err := rule.Lookup(ctx, value)
			if err != nil {
				return false, fmt.Errorf("exists check for %s: %w", field.Name, err)
			}
			if !exists {
				errs.add(field.Name, fmt.Sprintf("El campo %s seleccionado no existe.", field.Name))
				return true, nil
			}
		}
	}
	return false, nil
}

// ParseDate parses a payload date value trying each accepted layout in order.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// isInteger accepts JSON numbers with no fractional part. Identifiers and
// counts arrive as float64 from encoding/json.
func isInteger(value any) bool {
	n, ok := asFloat(value)
	return ok && n == math.Trunc(n)
}

func asFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
