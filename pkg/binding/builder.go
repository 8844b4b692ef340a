package binding

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/uctools/cucmapi/pkg/schema"
)

// BuildRequest renders args into the request element for op. Fields are
// written in schema order so the server's sequence validation holds. The
// element is not yet namespace-qualified; Client stamps the catalog
// namespace on it before sending.
func BuildRequest(types *schema.TypeCatalog, op *schema.OperationDescriptor, args Args, tags ReturnedTags) (*etree.Element, error) {
	reqType, err := types.Resolve(op.Request)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 && reqType.Field("returnedTags") == nil {
		return nil, &ValidationError{Op: op.Name, Path: "returnedTags",
			Message: "operation does not take returned tags"}
	}

	b := &builder{types: types, op: op, tags: tags}
	el := etree.NewElement(op.Name)
	if err := b.renderFields(el, reqType, args, ""); err != nil {
		return nil, err
	}
	return el, nil
}

type builder struct {
	types *schema.TypeCatalog
	op    *schema.OperationDescriptor
	tags  ReturnedTags
}

func (b *builder) renderFields(parent *etree.Element, td *schema.TypeDescriptor, args Args, path string) error {
	if path == "" && td.Field("returnedTags") != nil {
		if _, ok := args["returnedTags"]; ok {
			return &ValidationError{Op: b.op.Name, Path: "returnedTags",
				Message: "supplied via arguments, pass returned tags separately"}
		}
	}
	if err := b.checkChoices(td, args, path); err != nil {
		return err
	}
	if err := b.checkUnknown(td, args, path); err != nil {
		return err
	}

	for i := range td.Fields {
		f := &td.Fields[i]
		if path == "" && f.Name == "returnedTags" {
			if err := b.renderTags(parent, f); err != nil {
				return err
			}
			continue
		}

		v, ok := args[f.Name]
		if !ok {
			switch {
			case f.Required && b.op.Category == schema.CategoryAdd:
				return &MissingFieldError{Op: b.op.Name, Field: joinPath(path, f.Name)}
			case f.HasDefault && fillsDefaults(b.op.Category):
				parent.CreateElement(f.Name).SetText(f.Default)
			}
			continue
		}
		if err := b.renderField(parent, f, v, joinPath(path, f.Name)); err != nil {
			return err
		}
	}
	return nil
}

// checkChoices rejects args that supply more than one member of an
// xsd:choice group. Each group is checked once.
func (b *builder) checkChoices(td *schema.TypeDescriptor, args Args, path string) error {
	done := make(map[string]bool)
	for i := range td.Fields {
		f := &td.Fields[i]
		if len(f.Choice) == 0 {
			continue
		}
		group := append([]string{f.Name}, f.Choice...)
		sort.Strings(group)
		key := strings.Join(group, "|")
		if done[key] {
			continue
		}
		done[key] = true

		var supplied []string
		for _, name := range group {
			if _, ok := args[name]; ok {
				supplied = append(supplied, joinPath(path, name))
			}
		}
		if len(supplied) > 1 {
			return &ConflictingFieldsError{Op: b.op.Name, Fields: supplied}
		}
	}
	return nil
}

func (b *builder) checkUnknown(td *schema.TypeDescriptor, args Args, path string) error {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if td.Field(k) == nil {
			return &ValidationError{Op: b.op.Name, Path: joinPath(path, k),
				Message: fmt.Sprintf("no such field in %s", td.Name)}
		}
	}
	return nil
}

func (b *builder) renderField(parent *etree.Element, f *schema.FieldDescriptor, v any, path string) error {
	if v == nil {
		return &ValidationError{Op: b.op.Name, Path: path, Message: "nil value"}
	}
	ft, err := b.types.Resolve(f.Type)
	if err != nil {
		return err
	}

	if f.Attribute {
		text, err := b.scalarText(ft, v, path)
		if err != nil {
			return err
		}
		parent.CreateAttr(f.Name, text)
		return nil
	}

	if f.Repeated {
		for _, item := range asSlice(v) {
			if err := b.renderValue(parent, f, ft, item, path); err != nil {
				return err
			}
		}
		return nil
	}
	if isSlice(v) {
		return &ValidationError{Op: b.op.Name, Path: path, Message: "field is not repeated"}
	}
	return b.renderValue(parent, f, ft, v, path)
}

func (b *builder) renderValue(parent *etree.Element, f *schema.FieldDescriptor, ft *schema.TypeDescriptor, v any, path string) error {
	if v == nil {
		return &ValidationError{Op: b.op.Name, Path: path, Message: "nil value"}
	}
	if ft.Kind == schema.KindComplex {
		nested, err := asArgs(v)
		if err != nil {
			return &ValidationError{Op: b.op.Name, Path: path, Message: err.Error()}
		}
		return b.renderFields(parent.CreateElement(f.Name), ft, nested, path)
	}

	text, err := b.scalarText(ft, v, path)
	if err != nil {
		return err
	}
	parent.CreateElement(f.Name).SetText(text)
	return nil
}

// renderTags renders the returnedTags projection in its schema position.
// The caller's tags are validated against the tag type; with no caller tags
// the schema's default set applies, and with no default either the element
// is omitted so the server picks its own.
func (b *builder) renderTags(parent *etree.Element, f *schema.FieldDescriptor) error {
	tags := effectiveTags(b.op, b.tags)
	if len(tags) == 0 {
		return nil
	}
	tagType, err := b.types.Resolve(f.Type)
	if err != nil {
		return err
	}

	el := parent.CreateElement(f.Name)
	for _, tag := range tags {
		if err := b.renderTagPath(el, tagType, tag, tag); err != nil {
			return err
		}
	}
	return nil
}

// renderTagPath renders one projection path. Dotted segments select into
// nested row fields, e.g. "lines.line.dirn"; paths sharing a prefix reuse
// the elements already rendered for it.
func (b *builder) renderTagPath(el *etree.Element, td *schema.TypeDescriptor, path, full string) error {
	head, rest, nested := strings.Cut(path, ".")
	fd := td.Field(head)
	if fd == nil {
		return &ValidationError{Op: b.op.Name, Path: "returnedTags." + full,
			Message: fmt.Sprintf("no such field in %s", td.Name)}
	}

	if fd.Attribute {
		if nested {
			return &ValidationError{Op: b.op.Name, Path: "returnedTags." + full,
				Message: fmt.Sprintf("%s is an attribute and has no subfields", head)}
		}
		if el.SelectAttr(head) == nil {
			el.CreateAttr(head, "")
		}
		return nil
	}

	child := childNamed(el, head)
	if child == nil {
		child = el.CreateElement(head)
	}
	if !nested {
		return nil
	}

	ft, err := b.types.Resolve(fd.Type)
	if err != nil {
		return err
	}
	if ft.Kind != schema.KindComplex {
		return &ValidationError{Op: b.op.Name, Path: "returnedTags." + full,
			Message: fmt.Sprintf("%s is a scalar and has no subfields", head)}
	}
	return b.renderTagPath(child, ft, rest, full)
}

// scalarText coerces a value to its wire text and validates it against the
// scalar type's restrictions.
func (b *builder) scalarText(ft *schema.TypeDescriptor, v any, path string) (string, error) {
	text, err := coerce(v)
	if err != nil {
		return "", &ValidationError{Op: b.op.Name, Path: path, Message: err.Error()}
	}

	if ft.Kind == schema.KindEnum && !ft.EnumAllows(text) {
		return "", &ValidationError{Op: b.op.Name, Path: path,
			Message: fmt.Sprintf("value %q is not one of %s", text, strings.Join(ft.Enum, ", "))}
	}

	switch ft.Primitive {
	case schema.PrimUUID:
		u, err := uuid.Parse(text)
		if err != nil {
			return "", &ValidationError{Op: b.op.Name, Path: path,
				Message: fmt.Sprintf("%q is not a UUID", text)}
		}
		text = "{" + strings.ToUpper(u.String()) + "}"
	case schema.PrimInteger:
		if _, err := strconv.ParseInt(text, 10, 64); err != nil {
			return "", &ValidationError{Op: b.op.Name, Path: path,
				Message: fmt.Sprintf("%q is not an integer", text)}
		}
	case schema.PrimDecimal:
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return "", &ValidationError{Op: b.op.Name, Path: path,
				Message: fmt.Sprintf("%q is not a number", text)}
		}
	case schema.PrimBoolean:
		switch text {
		case "true", "false", "1", "0":
		default:
			return "", &ValidationError{Op: b.op.Name, Path: path,
				Message: fmt.Sprintf("%q is not a boolean", text)}
		}
	}

	if ft.MaxLength > 0 && utf8.RuneCountInString(text) > ft.MaxLength {
		return "", &ValidationError{Op: b.op.Name, Path: path,
			Message: fmt.Sprintf("value exceeds maximum length %d", ft.MaxLength)}
	}
	return text, nil
}

// effectiveTags is the projection a call actually uses: the caller's tags
// when given, the schema's default set otherwise. The default is never the
// maximal field set.
func effectiveTags(op *schema.OperationDescriptor, tags ReturnedTags) []string {
	if len(tags) > 0 {
		return tags
	}
	return op.DefaultTags
}

func fillsDefaults(cat schema.Category) bool {
	return cat == schema.CategoryAdd || cat == schema.CategoryRemove || cat == schema.CategoryExecute
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func coerce(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func isSlice(v any) bool {
	switch v.(type) {
	case []any, []string, []Args, []map[string]any, []Object:
		return true
	default:
		return false
	}
}

func asSlice(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out
	case []Args:
		out := make([]any, len(x))
		for i, a := range x {
			out[i] = a
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, m := range x {
			out[i] = m
		}
		return out
	case []Object:
		out := make([]any, len(x))
		for i, o := range x {
			out[i] = o
		}
		return out
	default:
		return []any{v}
	}
}

func asArgs(v any) (Args, error) {
	switch x := v.(type) {
	case Args:
		return x, nil
	case map[string]any:
		return Args(x), nil
	case Object:
		return Args(x), nil
	case map[string]string:
		out := make(Args, len(x))
		for k, s := range x {
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("value type %T is not a field map", v)
	}
}
