package core

// Scope is the declared applicability of a definition within its document.
// It is supplied by the loader and passed through untouched.
type Scope string

// Metadata is loader-supplied context about a definition block.
type Metadata struct {
	Path  string // absolute directory the definition was loaded from
	Scope Scope
}

// Body is the user-authored key/value content of a definition block.
type Body map[string]any

// Record is one pre-parsed definition block:
//
//	workspace('app'):        <- Declaration, Type "workspace"
//	  description: Example   <- Body
type Record struct {
	Type        string
	Metadata    Metadata
	Declaration string
	Body        Body
}

// String returns the body value for key.
// ok is false when the key is missing or null. A present value that is not a
// string is reported through err.
func (b Body) String(key string) (value string, ok bool, err error) {
	raw, exists := b[key]
	if !exists || raw == nil {
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", false, &ParseError{
			Field:   key,
			Message: "expected a string value",
		}
	}
	return s, true, nil
}
