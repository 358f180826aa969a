package validation

import "context"

// Kind identifies a rule primitive. Rules are structured descriptors
// interpreted by Evaluate, never parsed from strings at call sites.
type Kind int

const (
	KindRequired Kind = iota
	KindSometimes
	KindNullable
	KindString
	KindInteger
	KindNumeric
	KindBoolean
	KindDate
	KindEmail
	KindMinLen
	KindMaxLen
	KindMin
	KindMax
	KindConfirmed
	KindUnique
	KindExists
)

// LookupFunc asks a store a yes/no question about a candidate value. Unique
// rules expect "is this value already taken?"; Exists rules expect "does a
// row with this identifier exist?".
type LookupFunc func(ctx context.Context, value any) (bool, error)

// Rule is a single primitive plus its parameters.
type Rule struct {
	Kind   Kind
	Len    int
	Bound  float64
	Lookup LookupFunc
}

// Field couples a payload key with the ordered rules applied to it.
type Field struct {
	Name  string
	Rules []Rule
}

// RuleSet is the full declarative description of one operation's input.
type RuleSet []Field

// F builds a Field.
func F(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

// Required fails when the key is absent, null or an empty string.
func Required() Rule { return Rule{Kind: KindRequired} }

// Sometimes gates every other rule on the key being present in the payload.
// Used for partial (PATCH-style) updates.
func Sometimes() Rule { return Rule{Kind: KindSometimes} }

// Nullable short-circuits the remaining rules when the key is absent or null.
func Nullable() Rule { return Rule{Kind: KindNullable} }

func String() Rule  { return Rule{Kind: KindString} }
func Integer() Rule { return Rule{Kind: KindInteger} }
func Numeric() Rule { return Rule{Kind: KindNumeric} }
func Boolean() Rule { return Rule{Kind: KindBoolean} }
func Date() Rule    { return Rule{Kind: KindDate} }
func Email() Rule   { return Rule{Kind: KindEmail} }

func MinLen(n int) Rule { return Rule{Kind: KindMinLen, Len: n} }
func MaxLen(n int) Rule { return Rule{Kind: KindMaxLen, Len: n} }

func Min(v float64) Rule { return Rule{Kind: KindMin, Bound: v} }
func Max(v float64) Rule { return Rule{Kind: KindMax, Bound: v} }

// Confirmed requires payload["<name>_confirmation"] to equal the value.
func Confirmed() Rule { return Rule{Kind: KindConfirmed} }

// Unique fails when the lookup reports the value as already taken.
func Unique(fn LookupFunc) Rule { return Rule{Kind: KindUnique, Lookup: fn} }

// Exists fails when the lookup cannot resolve the value to an existing row.
func Exists(fn LookupFunc) Rule { return Rule{Kind: KindExists, Lookup: fn} }
