package binding

// Args holds the caller-supplied fields of one request, keyed by schema
// field name. Scalar fields take string, bool, or numeric values; complex
// fields take a nested Args (or plain string map); repeated fields take a
// slice, or a single value standing for a one-element slice.
type Args map[string]any

// ReturnedTags names the row fields a get- or list-style call should return.
// Nil means the schema's default tag set. A dotted path selects into a
// nested field, so {"name", "lines.line.dirn"} asks for the name and, of
// each line, only its directory number.
type ReturnedTags []string

// Row is one row of a thin SQL result: column name to raw text. The schema
// says nothing about SQL columns, so nothing richer is possible.
type Row map[string]string

// Object is one normalized result. Values are string for scalar fields,
// Object for nested complex fields, and []Object or []string for repeated
// fields.
type Object map[string]any

// String returns the named field as text, or "" when absent or not scalar.
func (o Object) String(key string) string {
	s, _ := o[key].(string)
	return s
}

// Child returns a nested object field, or nil when absent.
func (o Object) Child(key string) Object {
	c, _ := o[key].(Object)
	return c
}

// List returns a repeated complex field, or nil when absent.
func (o Object) List(key string) []Object {
	l, _ := o[key].([]Object)
	return l
}

// Strings returns a repeated scalar field, or nil when absent.
func (o Object) Strings(key string) []string {
	l, _ := o[key].([]string)
	return l
}
