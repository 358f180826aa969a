package validation

import "time"

// Payload is the decoded JSON body of a write request. Accessors assume the
// corresponding rule already validated type and format; they return zero
// values for absent keys so services can apply partial updates with Has.
type Payload map[string]any

// Has reports whether the key was present in the request body, including an
// explicit null.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Filled reports whether the key is present with a non-null, non-empty value.
func (p Payload) Filled(key string) bool {
	v, ok := p[key]
	return ok && v != nil && v != ""
}

func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// StringPtr returns nil for absent or null values.
func (p Payload) StringPtr(key string) *string {
	if v, ok := p[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}

func (p Payload) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

func (p Payload) Int(key string) int {
	n, _ := asFloat(p[key])
	return int(n)
}

func (p Payload) Int64(key string) int64 {
	n, _ := asFloat(p[key])
	return int64(n)
}

func (p Payload) Float(key string) float64 {
	n, _ := asFloat(p[key])
	return n
}

// FloatPtr returns nil for absent or null values.
func (p Payload) FloatPtr(key string) *float64 {
	if v, ok := p[key]; ok && v != nil {
		if n, ok := asFloat(v); ok {
			return &n
		}
	}
	return nil
}

// Time parses the value with the accepted date layouts. The Date rule must
// have validated it first; a zero time is returned otherwise.
func (p Payload) Time(key string) time.Time {
	s, ok := p[key].(string)
	if !ok {
		return time.Time{}
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}
