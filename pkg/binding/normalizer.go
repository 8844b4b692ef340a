package binding

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/uctools/cucmapi/pkg/schema"
)

// NormalizeResponse reduces a response payload to its result form. The form
// follows the response shape: a listing always comes back as a non-nil
// slice, empty when nothing matched; a scalar comes back as its text; a
// singular row comes back as an Object, or ErrNotFound when the wrapper
// chain stops short of it. Row objects carry exactly the effective tag set
// when the operation projects tags.
func NormalizeResponse(types *schema.TypeCatalog, op *schema.OperationDescriptor, payload *etree.Element, tags ReturnedTags) (any, error) {
	shape, err := schema.ResponseShape(types, op.Response)
	if err != nil {
		return nil, err
	}

	cur := payload
	for _, name := range shape.Path {
		if cur == nil {
			break
		}
		cur = childNamed(cur, name)
	}

	n := &normalizer{types: types}
	switch shape.Kind {
	case schema.ShapeList:
		rowType, err := types.Resolve(shape.Type)
		if err != nil {
			return nil, err
		}
		var rows []*etree.Element
		if cur != nil {
			rows = childrenNamed(cur, shape.Field)
		}
		if rowType.Kind != schema.KindComplex {
			out := make([]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, strings.TrimSpace(r.Text()))
			}
			return out, nil
		}
		proj := effectiveTags(op, tags)
		out := make([]Object, 0, len(rows))
		for _, r := range rows {
			out = append(out, n.object(r, rowType, proj))
		}
		return out, nil

	case schema.ShapeScalar:
		if cur == nil {
			return "", nil
		}
		if shape.Field != "" {
			el := childNamed(cur, shape.Field)
			if el == nil {
				return "", nil
			}
			return strings.TrimSpace(el.Text()), nil
		}
		return strings.TrimSpace(cur.Text()), nil

	default: // schema.ShapeStruct
		if cur == nil {
			return nil, fmt.Errorf("%s: %w", op.Name, ErrNotFound)
		}
		td, err := types.Resolve(shape.Type)
		if err != nil {
			return nil, err
		}
		return n.object(cur, td, effectiveTags(op, tags)), nil
	}
}

// NormalizeRows flattens a list response into rows of raw column text. This
// is the form the thin SQL operations return, where the schema says nothing
// about the columns.
func NormalizeRows(types *schema.TypeCatalog, op *schema.OperationDescriptor, payload *etree.Element) ([]Row, error) {
	shape, err := schema.ResponseShape(types, op.Response)
	if err != nil {
		return nil, err
	}
	if shape.Kind != schema.ShapeList {
		return nil, fmt.Errorf("%s: response is %s, not a listing", op.Name, shape.Kind)
	}

	cur := payload
	for _, name := range shape.Path {
		if cur == nil {
			break
		}
		cur = childNamed(cur, name)
	}

	rows := make([]Row, 0, 8)
	if cur == nil {
		return rows, nil
	}
	for _, rel := range childrenNamed(cur, shape.Field) {
		row := make(Row)
		for _, c := range rel.ChildElements() {
			row[c.Tag] = c.Text()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type normalizer struct {
	types *schema.TypeCatalog
}

// object converts one element to an Object. With a projection the result
// holds exactly the projected keys, absent fields as ""; without one it
// holds whichever schema fields the element carries. Dotted projection
// paths count under their first segment, since the response nests whatever
// sub-selection the request carried.
func (n *normalizer) object(el *etree.Element, td *schema.TypeDescriptor, proj []string) Object {
	if len(proj) > 0 {
		obj := make(Object, len(proj))
		for _, tag := range proj {
			head, _, _ := strings.Cut(tag, ".")
			if _, done := obj[head]; done {
				continue
			}
			f := td.Field(head)
			if f == nil {
				obj[head] = ""
				continue
			}
			v, ok := n.fieldValue(el, f)
			if !ok {
				v = ""
			}
			obj[head] = v
		}
		return obj
	}

	if len(td.Fields) == 0 {
		return n.untyped(el)
	}
	obj := make(Object)
	for i := range td.Fields {
		f := &td.Fields[i]
		if v, ok := n.fieldValue(el, f); ok {
			obj[f.Name] = v
		}
	}
	return obj
}

// fieldValue reads one schema field off an element. Repeated fields always
// read successfully, as an empty slice when no rows are present.
func (n *normalizer) fieldValue(el *etree.Element, f *schema.FieldDescriptor) (any, bool) {
	ft, err := n.types.Resolve(f.Type)
	if err != nil {
		return nil, false
	}

	if f.Attribute {
		a := el.SelectAttr(f.Name)
		if a == nil {
			return nil, false
		}
		return a.Value, true
	}

	if f.Repeated {
		kids := childrenNamed(el, f.Name)
		if ft.Kind == schema.KindComplex {
			out := make([]Object, 0, len(kids))
			for _, k := range kids {
				out = append(out, n.object(k, ft, nil))
			}
			return out, true
		}
		out := make([]string, 0, len(kids))
		for _, k := range kids {
			out = append(out, k.Text())
		}
		return out, true
	}

	child := childNamed(el, f.Name)
	if child == nil {
		return nil, false
	}
	if ft.Kind == schema.KindComplex {
		return n.object(child, ft, nil), true
	}
	return child.Text(), true
}

// untyped maps an element's children as raw text. SQL rows come through
// here: their type is anyType and carries no fields.
func (n *normalizer) untyped(el *etree.Element) Object {
	obj := make(Object)
	for _, c := range el.ChildElements() {
		obj[c.Tag] = c.Text()
	}
	return obj
}

func childNamed(el *etree.Element, name string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == name {
			return c
		}
	}
	return nil
}

func childrenNamed(el *etree.Element, name string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == name {
			out = append(out, c)
		}
	}
	return out
}
