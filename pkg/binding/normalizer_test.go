package binding

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uctools/cucmapi/internal/schematest"
	"github.com/uctools/cucmapi/pkg/schema"
)

func parsePayload(t *testing.T, s string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	return doc.Root()
}

func TestNormalizeResponse_SingularRow(t *testing.T) {
	types, ops := loadAXL(t)
	payload := parsePayload(t, `<getPhoneResponse><return>
		<phone uuid="{AB5C0B5B-5432-4F1A-BB9E-BC78FDCBA555}">
			<name>SEP001122334455</name>
			<description>Lobby</description>
			<product>Cisco 8861</product>
			<protocol>SCCP</protocol>
		</phone>
	</return></getPhoneResponse>`)

	got, err := NormalizeResponse(types, mustOp(t, ops, "getPhone"), payload, nil)
	require.NoError(t, err)

	obj, ok := got.(Object)
	require.True(t, ok, "singular row must normalize to Object, got %T", got)

	// No caller tags: the result carries exactly the default tag set, even
	// though the response held more.
	assert.Len(t, obj, 3)
	assert.Equal(t, "SEP001122334455", obj.String("name"))
	assert.Equal(t, "Lobby", obj.String("description"))
	assert.Equal(t, "Cisco 8861", obj.String("product"))
	assert.NotContains(t, obj, "protocol")
	assert.NotContains(t, obj, "uuid")
}

func TestNormalizeResponse_TagSetRoundTrip(t *testing.T) {
	types, ops := loadAXL(t)

	// description was requested but is absent from the response: the key is
	// still present, empty. uuid projects from the attribute.
	payload := parsePayload(t, `<getPhoneResponse><return>
		<phone uuid="{AB5C0B5B-5432-4F1A-BB9E-BC78FDCBA555}">
			<name>SEP001122334455</name>
		</phone>
	</return></getPhoneResponse>`)

	tags := ReturnedTags{"name", "description", "uuid"}
	got, err := NormalizeResponse(types, mustOp(t, ops, "getPhone"), payload, tags)
	require.NoError(t, err)

	obj := got.(Object)
	assert.Len(t, obj, len(tags))
	assert.Equal(t, "SEP001122334455", obj.String("name"))
	assert.Equal(t, "", obj.String("description"))
	assert.Equal(t, "{AB5C0B5B-5432-4F1A-BB9E-BC78FDCBA555}", obj.String("uuid"))
}

func TestNormalizeResponse_NestedProjection(t *testing.T) {
	types, ops := loadAXL(t)
	payload := parsePayload(t, `<getPhoneResponse><return>
		<phone>
			<name>SEP001122334455</name>
			<lines>
				<line><index>1</index><dirn><pattern>1001</pattern></dirn></line>
				<line><index>2</index><dirn><pattern>1002</pattern></dirn></line>
			</lines>
		</phone>
	</return></getPhoneResponse>`)

	got, err := NormalizeResponse(types, mustOp(t, ops, "getPhone"), payload,
		ReturnedTags{"name", "lines"})
	require.NoError(t, err)

	obj := got.(Object)
	lines := obj.Child("lines")
	require.NotNil(t, lines)
	line := lines.List("line")
	require.Len(t, line, 2)
	assert.Equal(t, "1", line[0].String("index"))
	assert.Equal(t, "1001", line[0].Child("dirn").String("pattern"))
	assert.Equal(t, "1002", line[1].Child("dirn").String("pattern"))

	// Dotted projection paths count under their first segment, so the key
	// set stays {name, lines}.
	got, err = NormalizeResponse(types, mustOp(t, ops, "getPhone"), payload,
		ReturnedTags{"name", "lines.line.index", "lines.line.dirn.pattern"})
	require.NoError(t, err)

	obj = got.(Object)
	assert.Len(t, obj, 2)
	assert.Equal(t, "SEP001122334455", obj.String("name"))
	require.NotNil(t, obj.Child("lines"))
	assert.Len(t, obj.Child("lines").List("line"), 2)
}

func TestNormalizeResponse_NotFound(t *testing.T) {
	types, ops := loadAXL(t)
	op := mustOp(t, ops, "getPhone")

	for _, payload := range []string{
		`<getPhoneResponse><return/></getPhoneResponse>`,
		`<getPhoneResponse/>`,
	} {
		_, err := NormalizeResponse(types, op, parsePayload(t, payload), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "getPhone")
	}
}

func TestNormalizeResponse_ListRows(t *testing.T) {
	types, ops := loadAXL(t)
	payload := parsePayload(t, `<listPhoneResponse><return>
		<phone uuid="{11111111-2222-3333-4444-555555555555}"><name>SEP1</name></phone>
		<phone uuid="{66666666-7777-8888-9999-000000000000}"><name>SEP2</name></phone>
	</return></listPhoneResponse>`)

	got, err := NormalizeResponse(types, mustOp(t, ops, "listPhone"), payload,
		ReturnedTags{"name", "uuid"})
	require.NoError(t, err)

	rows, ok := got.([]Object)
	require.True(t, ok, "listing must normalize to []Object, got %T", got)
	require.Len(t, rows, 2)
	assert.Equal(t, "SEP1", rows[0].String("name"))
	assert.Equal(t, "{11111111-2222-3333-4444-555555555555}", rows[0].String("uuid"))
	assert.Equal(t, "SEP2", rows[1].String("name"))
}

func TestNormalizeResponse_EmptyListIsNotAnError(t *testing.T) {
	types, ops := loadAXL(t)
	op := mustOp(t, ops, "listPhone")

	// An empty listing and a missing wrapper both mean zero rows, never
	// not-found.
	for _, payload := range []string{
		`<listPhoneResponse><return/></listPhoneResponse>`,
		`<listPhoneResponse/>`,
	} {
		got, err := NormalizeResponse(types, op, parsePayload(t, payload), nil)
		require.NoError(t, err)
		rows, ok := got.([]Object)
		require.True(t, ok)
		assert.NotNil(t, rows)
		assert.Len(t, rows, 0)
	}
}

func TestNormalizeResponse_Scalar(t *testing.T) {
	types, ops := loadAXL(t)

	got, err := NormalizeResponse(types, mustOp(t, ops, "addPhone"),
		parsePayload(t, `<addPhoneResponse><return>{AB5C0B5B-5432-4F1A-BB9E-BC78FDCBA555}</return></addPhoneResponse>`), nil)
	require.NoError(t, err)
	assert.Equal(t, "{AB5C0B5B-5432-4F1A-BB9E-BC78FDCBA555}", got)

	// The version lookup sits behind two wrapper elements.
	got, err = NormalizeResponse(types, mustOp(t, ops, "getCCMVersion"),
		parsePayload(t, `<getCCMVersionResponse><return><componentVersion>
			<version>12.5.1.11900-146</version>
		</componentVersion></return></getCCMVersionResponse>`), nil)
	require.NoError(t, err)
	assert.Equal(t, "12.5.1.11900-146", got)

	// Absent scalar is empty text, not an error.
	got, err = NormalizeResponse(types, mustOp(t, ops, "getCCMVersion"),
		parsePayload(t, `<getCCMVersionResponse/>`), nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestNormalizeResponse_SQLRows(t *testing.T) {
	types, ops := loadAXL(t)
	op := mustOp(t, ops, "executeSQLQuery")
	payload := parsePayload(t, `<executeSQLQueryResponse><return>
		<row><pkid>a001</pkid><name>SEP1</name></row>
		<row><pkid>a002</pkid><name>SEP2</name></row>
	</return></executeSQLQueryResponse>`)

	// SQL rows carry no schema: they normalize column by column.
	got, err := NormalizeResponse(types, op, payload, nil)
	require.NoError(t, err)
	rows := got.([]Object)
	require.Len(t, rows, 2)
	assert.Equal(t, "a001", rows[0].String("pkid"))
	assert.Equal(t, "SEP2", rows[1].String("name"))
}

func TestNormalizeRows(t *testing.T) {
	types, ops := loadAXL(t)
	op := mustOp(t, ops, "executeSQLQuery")

	rows, err := NormalizeRows(types, op, parsePayload(t, `<executeSQLQueryResponse><return>
		<row><pkid>a001</pkid><name>SEP1</name></row>
	</return></executeSQLQueryResponse>`))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{"pkid": "a001", "name": "SEP1"}, rows[0])

	rows, err = NormalizeRows(types, op, parsePayload(t, `<executeSQLQueryResponse/>`))
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Len(t, rows, 0)
}

func TestNormalizeRows_NotAListing(t *testing.T) {
	types, ops := loadAXL(t)

	_, err := NormalizeRows(types, mustOp(t, ops, "getPhone"),
		parsePayload(t, `<getPhoneResponse/>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a listing")
}

func TestNormalizeResponse_SQLUpdateCount(t *testing.T) {
	types, ops := loadAXL(t)

	got, err := NormalizeResponse(types, mustOp(t, ops, "executeSQLUpdate"),
		parsePayload(t, `<executeSQLUpdateResponse><return><rowsUpdated>3</rowsUpdated></return></executeSQLUpdateResponse>`), nil)
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestNormalizeResponse_EmptyStruct(t *testing.T) {
	types, ops, err := schema.LoadWSDL([]byte(schematest.PerfmonWSDL))
	require.NoError(t, err)
	op, err := ops.Resolve("perfmonAddCounter")
	require.NoError(t, err)

	// A response type with no fields sits at an empty wrapper path: it is
	// always present, never not-found.
	got, nerr := NormalizeResponse(types, op, parsePayload(t, `<perfmonAddCounterResponse/>`), nil)
	require.NoError(t, nerr)
	obj, ok := got.(Object)
	require.True(t, ok)
	assert.Len(t, obj, 0)
}

func TestNormalizeResponse_ScalarRows(t *testing.T) {
	types, ops, err := schema.LoadWSDL([]byte(schematest.CDRWSDL))
	require.NoError(t, err)
	op, err := ops.Resolve("get_file_list")
	require.NoError(t, err)

	got, nerr := NormalizeResponse(types, op, parsePayload(t, `<get_file_listResponse>
		<get_file_listReturn>
			<item>cdr_StandAloneCluster_01_202608210800_1</item>
			<item>cdr_StandAloneCluster_01_202608210801_2</item>
		</get_file_listReturn>
	</get_file_listResponse>`), nil)
	require.NoError(t, nerr)

	names, ok := got.([]string)
	require.True(t, ok, "scalar rows must normalize to []string, got %T", got)
	assert.Equal(t, []string{
		"cdr_StandAloneCluster_01_202608210800_1",
		"cdr_StandAloneCluster_01_202608210801_2",
	}, names)
}
