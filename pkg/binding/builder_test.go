package binding

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uctools/cucmapi/internal/schematest"
	"github.com/uctools/cucmapi/pkg/schema"
)

func loadAXL(t *testing.T) (*schema.TypeCatalog, *schema.OperationCatalog) {
	t.Helper()
	types, ops, err := schema.LoadWSDL([]byte(schematest.AXLWSDL))
	require.NoError(t, err)
	return types, ops
}

func mustOp(t *testing.T, ops *schema.OperationCatalog, name string) *schema.OperationDescriptor {
	t.Helper()
	op, err := ops.Resolve(name)
	require.NoError(t, err)
	return op
}

func childTags(el *etree.Element) []string {
	out := make([]string, 0, len(el.ChildElements()))
	for _, c := range el.ChildElements() {
		out = append(out, c.Tag)
	}
	return out
}

func TestBuildRequest_AddRendersSchemaOrder(t *testing.T) {
	types, ops := loadAXL(t)

	el, err := BuildRequest(types, mustOp(t, ops, "addPhone"), Args{
		"phone": Args{
			// Supplied out of schema order on purpose.
			"devicePoolName": "Default",
			"protocol":       "SCCP",
			"name":           "SEP001122334455",
			"product":        "Cisco 8861",
			"lines": Args{
				"line": []Args{
					{"index": 1, "dirn": Args{"pattern": "1001"}},
					{"index": 2, "dirn": Args{"pattern": "1002", "routePartitionName": "Internal"}},
				},
			},
		},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "addPhone", el.Tag)

	phone := el.ChildElements()[0]
	require.Equal(t, "phone", phone.Tag)

	// class was not supplied: add-style calls fill the schema default, in
	// schema position.
	assert.Equal(t, []string{"name", "product", "class", "protocol", "devicePoolName", "lines"},
		childTags(phone))
	assert.Equal(t, "Phone", phone.SelectElement("class").Text())
	assert.Equal(t, "SCCP", phone.SelectElement("protocol").Text())

	lines := phone.SelectElement("lines")
	require.Len(t, lines.ChildElements(), 2)
	second := lines.ChildElements()[1]
	assert.Equal(t, "2", second.SelectElement("index").Text())
	assert.Equal(t, "1002", second.FindElement("./dirn/pattern").Text())
	assert.Equal(t, "Internal", second.FindElement("./dirn/routePartitionName").Text())
}

func TestBuildRequest_AddMissingRequired(t *testing.T) {
	types, ops := loadAXL(t)
	op := mustOp(t, ops, "addPhone")

	tests := []struct {
		name      string
		args      Args
		wantField string
	}{
		{"no phone at all", Args{}, "phone"},
		{
			"missing protocol",
			Args{"phone": Args{"name": "SEP1", "product": "P", "devicePoolName": "D"}},
			"phone.protocol",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRequest(types, op, tt.args, nil)
			var mfe *MissingFieldError
			require.ErrorAs(t, err, &mfe)
			assert.Equal(t, "addPhone", mfe.Op)
			assert.Equal(t, tt.wantField, mfe.Field)
		})
	}
}

func TestBuildRequest_UpdateOmitsUnsupplied(t *testing.T) {
	types, ops := loadAXL(t)

	// An omitted field on update means "leave unchanged": it must not be
	// rendered, and no default may be filled in.
	el, err := BuildRequest(types, mustOp(t, ops, "updatePhone"), Args{
		"name": "SEP001122334455",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, childTags(el))
}

func TestBuildRequest_GetOmitsUnsupplied(t *testing.T) {
	types, ops := loadAXL(t)

	// searchCriteria is required by the schema, but list-style omission
	// means "no filter" and stays client-side legal.
	el, err := BuildRequest(types, mustOp(t, ops, "listPhone"), Args{
		"first": 50,
	}, ReturnedTags{"name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"returnedTags", "first"}, childTags(el))
}

func TestBuildRequest_ChoiceConflict(t *testing.T) {
	types, ops := loadAXL(t)

	for _, opName := range []string{"getPhone", "updatePhone", "removePhone"} {
		t.Run(opName, func(t *testing.T) {
			_, err := BuildRequest(types, mustOp(t, ops, opName), Args{
				"name": "SEP001122334455",
				"uuid": "{3AE67I-invalid-never-reached}",
			}, nil)
			var cfe *ConflictingFieldsError
			require.ErrorAs(t, err, &cfe)
			assert.Equal(t, opName, cfe.Op)
			assert.Equal(t, []string{"name", "uuid"}, cfe.Fields)
		})
	}
}

func TestBuildRequest_DefaultTags(t *testing.T) {
	types, ops := loadAXL(t)

	// getPhone carries a defaultTags hint: name, description, product.
	el, err := BuildRequest(types, mustOp(t, ops, "getPhone"), Args{"name": "SEP1"}, nil)
	require.NoError(t, err)

	rt := el.SelectElement("returnedTags")
	require.NotNil(t, rt)
	assert.Equal(t, []string{"name", "description", "product"}, childTags(rt))
	for _, c := range rt.ChildElements() {
		assert.Empty(t, c.Text(), "tag elements must be empty")
	}
}

func TestBuildRequest_CallerTags(t *testing.T) {
	types, ops := loadAXL(t)

	// uuid is an attribute on the tag type, so it projects as an attribute.
	el, err := BuildRequest(types, mustOp(t, ops, "getPhone"), Args{"name": "SEP1"},
		ReturnedTags{"name", "lines", "uuid"})
	require.NoError(t, err)

	rt := el.SelectElement("returnedTags")
	require.NotNil(t, rt)
	assert.Equal(t, []string{"name", "lines"}, childTags(rt))
	require.NotNil(t, rt.SelectAttr("uuid"))
	assert.Equal(t, "", rt.SelectAttr("uuid").Value)
}

func TestBuildRequest_NestedTags(t *testing.T) {
	types, ops := loadAXL(t)

	el, err := BuildRequest(types, mustOp(t, ops, "getPhone"), Args{"name": "SEP1"},
		ReturnedTags{"name", "lines.line.index", "lines.line.dirn.pattern"})
	require.NoError(t, err)

	rt := el.SelectElement("returnedTags")
	require.NotNil(t, rt)
	assert.Equal(t, []string{"name", "lines"}, childTags(rt))

	require.Len(t, rt.FindElements("./lines"), 1, "shared prefixes must render once")
	line := rt.FindElement("./lines/line")
	require.NotNil(t, line)
	assert.Equal(t, []string{"index", "dirn"}, childTags(line))
	assert.NotNil(t, rt.FindElement("./lines/line/dirn/pattern"))
}

func TestBuildRequest_TagPosition(t *testing.T) {
	types, ops := loadAXL(t)

	// returnedTags sits between searchCriteria and skip in the listPhone
	// sequence; rendering must keep it there.
	el, err := BuildRequest(types, mustOp(t, ops, "listPhone"), Args{
		"searchCriteria": Args{"name": "SEP%"},
		"skip":           0,
		"first":          100,
	}, ReturnedTags{"name", "description"})
	require.NoError(t, err)
	assert.Equal(t, []string{"searchCriteria", "returnedTags", "skip", "first"}, childTags(el))
}

func TestBuildRequest_TagErrors(t *testing.T) {
	types, ops := loadAXL(t)

	tests := []struct {
		name     string
		op       string
		args     Args
		tags     ReturnedTags
		wantPath string
	}{
		{"unknown tag", "getPhone", Args{"name": "SEP1"}, ReturnedTags{"bogus"}, "returnedTags.bogus"},
		{"unknown nested tag", "getPhone", Args{"name": "SEP1"},
			ReturnedTags{"lines.line.bogus"}, "returnedTags.lines.line.bogus"},
		{"subfield of scalar", "getPhone", Args{"name": "SEP1"},
			ReturnedTags{"name.pattern"}, "returnedTags.name.pattern"},
		{"subfield of attribute", "getPhone", Args{"name": "SEP1"},
			ReturnedTags{"uuid.x"}, "returnedTags.uuid.x"},
		{"tags on tagless operation", "addPhone",
			Args{"phone": Args{"name": "SEP1", "product": "P", "protocol": "SCCP", "devicePoolName": "D"}},
			ReturnedTags{"name"}, "returnedTags"},
		{"tags as argument", "getPhone", Args{"name": "SEP1", "returnedTags": Args{}}, nil, "returnedTags"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRequest(types, mustOp(t, ops, tt.op), tt.args, tt.tags)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantPath, ve.Path)
		})
	}
}

func TestBuildRequest_EnumCaseSensitive(t *testing.T) {
	types, ops := loadAXL(t)
	op := mustOp(t, ops, "listPhone")

	el, err := BuildRequest(types, op, Args{
		"searchCriteria": Args{"protocol": "SCCP"},
	}, ReturnedTags{"name"})
	require.NoError(t, err)
	assert.Equal(t, "SCCP", el.FindElement("./searchCriteria/protocol").Text())

	_, err = BuildRequest(types, op, Args{
		"searchCriteria": Args{"protocol": "sccp"},
	}, ReturnedTags{"name"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "searchCriteria.protocol", ve.Path)
	assert.Contains(t, ve.Message, "SCCP, SIP")
}

func TestBuildRequest_UUIDNormalized(t *testing.T) {
	types, ops := loadAXL(t)
	op := mustOp(t, ops, "getPhone")

	el, err := BuildRequest(types, op, Args{
		"uuid": "ab5c0b5b-5432-4f1a-bb9e-bc78fdcba555",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "{AB5C0B5B-5432-4F1A-BB9E-BC78FDCBA555}", el.SelectElement("uuid").Text())

	// Braced input is accepted too.
	el, err = BuildRequest(types, op, Args{
		"uuid": "{AB5C0B5B-5432-4F1A-BB9E-BC78FDCBA555}",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "{AB5C0B5B-5432-4F1A-BB9E-BC78FDCBA555}", el.SelectElement("uuid").Text())

	_, err = BuildRequest(types, op, Args{"uuid": "not-a-uuid"}, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "UUID")
}

func TestBuildRequest_ScalarValidation(t *testing.T) {
	types, ops := loadAXL(t)

	tests := []struct {
		name    string
		op      string
		args    Args
		wantMsg string
	}{
		{"string not an integer", "listPhone", Args{"skip": "abc"}, "not an integer"},
		{"bool not an integer", "listPhone", Args{"skip": true}, "not an integer"},
		{"over max length", "updatePhone",
			Args{"name": "SEP1", "description": strings128()}, "maximum length 128"},
		{"unsupported type", "updatePhone",
			Args{"name": "SEP1", "description": struct{}{}}, "unsupported value type"},
		{"slice for singular field", "updatePhone",
			Args{"name": "SEP1", "description": []string{"a", "b"}}, "not repeated"},
		{"nil value", "updatePhone", Args{"name": "SEP1", "description": nil}, "nil value"},
		{"unknown field", "getPhone", Args{"bogus": "x"}, "no such field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := ReturnedTags{"name"}
			if tt.op == "updatePhone" {
				tags = nil
			}
			_, err := BuildRequest(types, mustOp(t, ops, tt.op), tt.args, tags)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Message, tt.wantMsg)
		})
	}
}

func strings128() string {
	b := make([]byte, 129)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}

func TestBuildRequest_RepeatedFromSingleValue(t *testing.T) {
	types, ops := loadAXL(t)

	// A single value stands for a one-element slice on repeated fields.
	el, err := BuildRequest(types, mustOp(t, ops, "updatePhone"), Args{
		"name": "SEP1",
		"lines": Args{
			"line": Args{"index": 1, "dirn": Args{"pattern": "1001"}},
		},
	}, nil)
	require.NoError(t, err)

	lines := el.FindElements("./lines/line")
	require.Len(t, lines, 1)
	assert.Equal(t, "1001", lines[0].FindElement("./dirn/pattern").Text())
}

func TestBuildRequest_TypedScalars(t *testing.T) {
	types, ops := loadAXL(t)

	el, err := BuildRequest(types, mustOp(t, ops, "listPhone"), Args{
		"skip":  int64(20),
		"first": 100,
	}, ReturnedTags{"name"})
	require.NoError(t, err)
	assert.Equal(t, "20", el.SelectElement("skip").Text())
	assert.Equal(t, "100", el.SelectElement("first").Text())
}
