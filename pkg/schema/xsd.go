package schema

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Raw XSD model. These mirror the document structure closely; catalog
// building flattens them into TypeDescriptors.

type xsdSchema struct {
	targetNamespace string
	simpleTypes     []*xsdSimpleType
	complexTypes    []*xsdComplexType
	elements        []*xsdElement
	imports         []string // schemaLocation of xsd:import / xsd:include
}

type xsdSimpleType struct {
	name      string
	base      string
	enum      []string
	maxLength int
	pattern   string
}

type xsdComplexType struct {
	name       string // empty for inline definitions
	base       string // complexContent extension base
	simpleBase string // simpleContent extension base
	fields     []*xsdField
	attrs      []*xsdAttribute
}

type xsdAttribute struct {
	name string
	typ  string
}

type xsdField struct {
	name        string
	typ         string
	optional    bool
	repeated    bool
	nillable    bool
	defaultVal  string
	hasDefault  bool
	choice      []string
	inline      *xsdComplexType
	defaultTags []string
}

// xsdElement is a top-level element declaration. It either references a
// named type or carries an inline complex type.
type xsdElement struct {
	name   string
	typ    string
	inline *xsdComplexType
}

func parseXSDSchema(schemaEl *etree.Element) *xsdSchema {
	s := &xsdSchema{targetNamespace: schemaEl.SelectAttrValue("targetNamespace", "")}

	for _, child := range schemaEl.ChildElements() {
		switch localName(child) {
		case "import", "include":
			if loc := child.SelectAttrValue("schemaLocation", ""); loc != "" {
				s.imports = append(s.imports, loc)
			}
		case "simpleType":
			s.simpleTypes = append(s.simpleTypes, parseSimpleType(child))
		case "complexType":
			s.complexTypes = append(s.complexTypes, parseComplexType(child))
		case "element":
			e := &xsdElement{
				name: child.SelectAttrValue("name", ""),
				typ:  stripPrefix(child.SelectAttrValue("type", "")),
			}
			if ct := findElement(child, "complexType"); ct != nil {
				e.inline = parseComplexType(ct)
			}
			s.elements = append(s.elements, e)
		}
	}
	return s
}

func parseSimpleType(st *etree.Element) *xsdSimpleType {
	out := &xsdSimpleType{name: st.SelectAttrValue("name", "")}
	r := findElement(st, "restriction")
	if r == nil {
		return out
	}
	out.base = stripPrefix(r.SelectAttrValue("base", ""))
	for _, e := range findElements(r, "enumeration") {
		out.enum = append(out.enum, e.SelectAttrValue("value", ""))
	}
	if ml := findElement(r, "maxLength"); ml != nil {
		out.maxLength, _ = strconv.Atoi(ml.SelectAttrValue("value", "0"))
	}
	if p := findElement(r, "pattern"); p != nil {
		out.pattern = p.SelectAttrValue("value", "")
	}
	return out
}

func parseComplexType(ct *etree.Element) *xsdComplexType {
	out := &xsdComplexType{name: ct.SelectAttrValue("name", "")}

	if cc := findElement(ct, "complexContent"); cc != nil {
		if ext := findElement(cc, "extension"); ext != nil {
			out.base = stripPrefix(ext.SelectAttrValue("base", ""))
			out.fields = parseParticles(ext)
			out.attrs = parseAttributes(ext)
		}
		return out
	}
	if sc := findElement(ct, "simpleContent"); sc != nil {
		if ext := findElement(sc, "extension"); ext != nil {
			out.simpleBase = stripPrefix(ext.SelectAttrValue("base", ""))
			out.attrs = parseAttributes(ext)
		}
		return out
	}

	out.fields = parseParticles(ct)
	out.attrs = parseAttributes(ct)
	return out
}

// parseParticles extracts field declarations from a sequence, all, or choice
// container. Choice members are cross-linked so the request builder can
// reject conflicting selectors.
func parseParticles(parent *etree.Element) []*xsdField {
	container := findElement(parent, "sequence")
	if container == nil {
		container = findElement(parent, "all")
	}
	if container == nil {
		if ch := findElement(parent, "choice"); ch != nil {
			return parseChoice(ch)
		}
		return nil
	}

	var fields []*xsdField
	for _, child := range container.ChildElements() {
		switch localName(child) {
		case "element":
			fields = append(fields, parseField(child))
		case "choice":
			fields = append(fields, parseChoice(child)...)
		}
	}
	return fields
}

func parseChoice(ch *etree.Element) []*xsdField {
	var members []*xsdField
	for _, el := range findElements(ch, "element") {
		f := parseField(el)
		f.optional = true
		members = append(members, f)
	}
	for i, f := range members {
		for j, other := range members {
			if i != j {
				f.choice = append(f.choice, other.name)
			}
		}
	}
	return members
}

func parseField(el *etree.Element) *xsdField {
	f := &xsdField{
		name:     el.SelectAttrValue("name", ""),
		typ:      stripPrefix(el.SelectAttrValue("type", "")),
		optional: el.SelectAttrValue("minOccurs", "1") == "0",
		repeated: isRepeated(el.SelectAttrValue("maxOccurs", "1")),
		nillable: el.SelectAttrValue("nillable", "") == "true",
	}
	if attr := el.SelectAttr("default"); attr != nil {
		f.defaultVal = attr.Value
		f.hasDefault = true
	}
	if ct := findElement(el, "complexType"); ct != nil {
		f.inline = parseComplexType(ct)
	}
	// appinfo defaultTags hint, used for returnedTags projections
	if ann := findElement(el, "annotation"); ann != nil {
		if app := findElement(ann, "appinfo"); app != nil {
			if dt := findElement(app, "defaultTags"); dt != nil {
				for _, tag := range strings.Split(dt.Text(), ",") {
					if tag = strings.TrimSpace(tag); tag != "" {
						f.defaultTags = append(f.defaultTags, tag)
					}
				}
			}
		}
	}
	return f
}

func parseAttributes(parent *etree.Element) []*xsdAttribute {
	var attrs []*xsdAttribute
	for _, a := range findElements(parent, "attribute") {
		name := a.SelectAttrValue("name", "")
		if name == "" {
			continue
		}
		attrs = append(attrs, &xsdAttribute{
			name: name,
			typ:  stripPrefix(a.SelectAttrValue("type", "")),
		})
	}
	return attrs
}

func isRepeated(maxOccurs string) bool {
	if maxOccurs == "unbounded" {
		return true
	}
	n, err := strconv.Atoi(maxOccurs)
	return err == nil && n > 1
}

// --- element helpers ---

// localName returns an element's tag with any namespace prefix removed.
func localName(el *etree.Element) string {
	tag := el.Tag
	if idx := strings.IndexByte(tag, ':'); idx >= 0 {
		tag = tag[idx+1:]
	}
	return tag
}

// findElements returns all direct child elements matching the local name,
// ignoring namespace prefixes.
func findElements(parent *etree.Element, name string) []*etree.Element {
	var results []*etree.Element
	for _, child := range parent.ChildElements() {
		if localName(child) == name {
			results = append(results, child)
		}
	}
	return results
}

// findElement returns the first direct child element matching the local name.
func findElement(parent *etree.Element, name string) *etree.Element {
	for _, child := range parent.ChildElements() {
		if localName(child) == name {
			return child
		}
	}
	return nil
}

// stripPrefix removes a namespace prefix from a QName ("axl:XPhone" → "XPhone").
func stripPrefix(qname string) string {
	if idx := strings.IndexByte(qname, ':'); idx >= 0 {
		return qname[idx+1:]
	}
	return qname
}
