package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uctools/cucmapi/internal/schematest"
)

func TestResponseShape(t *testing.T) {
	tests := []struct {
		op    string
		wsdl  string
		kind  ShapeKind
		path  []string
		field string
		typ   string
	}{
		// AXL wraps everything in a "return" element.
		{op: "addPhone", wsdl: schematest.AXLWSDL,
			kind: ShapeScalar, path: nil, field: "return", typ: "XUUID"},
		{op: "getPhone", wsdl: schematest.AXLWSDL,
			kind: ShapeStruct, path: []string{"return", "phone"}, typ: "RPhone"},
		{op: "listPhone", wsdl: schematest.AXLWSDL,
			kind: ShapeList, path: []string{"return"}, field: "phone", typ: "RPhone"},
		{op: "getCCMVersion", wsdl: schematest.AXLWSDL,
			kind: ShapeScalar, path: []string{"return", "componentVersion"}, field: "version", typ: "string"},
		{op: "executeSQLQuery", wsdl: schematest.AXLWSDL,
			kind: ShapeList, path: []string{"return"}, field: "row", typ: "anyType"},
		{op: "executeSQLUpdate", wsdl: schematest.AXLWSDL,
			kind: ShapeScalar, path: []string{"return"}, field: "rowsUpdated", typ: "int"},

		// The serviceability services wrap in "<operation>Return" instead.
		{op: "selectCmDevice", wsdl: schematest.RISWSDL,
			kind: ShapeStruct, path: []string{"selectCmDeviceReturn", "SelectCmDeviceResult"},
			typ: "SelectCmDeviceResult"},
		{op: "selectCmDeviceExt", wsdl: schematest.RISWSDL,
			kind: ShapeStruct, path: []string{"selectCmDeviceReturn"},
			typ: "selectCmDeviceExtResponse_selectCmDeviceReturn"},
		{op: "selectCtiItem", wsdl: schematest.RISWSDL,
			kind: ShapeStruct, path: []string{"selectCtiItemReturn"},
			typ: "selectCtiItemResponse_selectCtiItemReturn"},

		{op: "soapGetServiceStatus", wsdl: schematest.CCSWSDL,
			kind: ShapeStruct, path: []string{"soapGetServiceStatusReturn"},
			typ: "soapGetServiceStatusResponse_soapGetServiceStatusReturn"},
		{op: "soapGetStaticServiceList", wsdl: schematest.CCSWSDL,
			kind: ShapeList, path: []string{"soapGetStaticServiceListReturn"}, field: "item", typ: "ServiceInformation"},
		{op: "getProductInformationList", wsdl: schematest.CCSWSDL,
			kind: ShapeList, path: []string{"getProductInformationListReturn"}, field: "item", typ: "ProductInformation"},

		{op: "getFileDirectoryList", wsdl: schematest.CCSExWSDL,
			kind: ShapeList, path: []string{"getFileDirectoryListReturn"}, field: "item", typ: "string"},
		{op: "getStaticServiceListExtended", wsdl: schematest.CCSExWSDL,
			kind: ShapeList, path: []string{"getStaticServiceListExtendedReturn", "Services"},
			field: "item", typ: "ServiceInfoEx"},

		{op: "listNodeServiceLogs", wsdl: schematest.LogWSDL,
			kind: ShapeList, path: []string{"NodeServiceLogList"}, field: "item", typ: "NodeServiceLog"},
		{op: "selectLogFiles", wsdl: schematest.LogWSDL,
			kind: ShapeStruct, path: []string{"FileSelectionResult", "Node"},
			typ: "selectLogFilesResponse_FileSelectionResult_Node"},
		{op: "GetOneFile", wsdl: schematest.LogWSDL,
			kind: ShapeScalar, path: nil, field: "DataHandler", typ: "base64Binary"},

		{op: "perfmonOpenSession", wsdl: schematest.PerfmonWSDL,
			kind: ShapeScalar, path: nil, field: "perfmonOpenSessionReturn", typ: "SessionHandleType"},
		{op: "perfmonAddCounter", wsdl: schematest.PerfmonWSDL,
			kind: ShapeStruct, path: nil, typ: "perfmonAddCounterResponse"},
		{op: "perfmonCollectSessionData", wsdl: schematest.PerfmonWSDL,
			kind: ShapeList, path: nil, field: "perfmonCollectSessionDataReturn", typ: "CounterInfoType"},
		{op: "perfmonQueryCounterDescription", wsdl: schematest.PerfmonWSDL,
			kind: ShapeScalar, path: nil, field: "perfmonQueryCounterDescriptionReturn", typ: "string"},

		// rpc style: synthesized response types walk the same way.
		{op: "get_file", wsdl: schematest.CDRWSDL,
			kind: ShapeStruct, path: nil, typ: "get_fileResponse"},
		{op: "get_file_list", wsdl: schematest.CDRWSDL,
			kind: ShapeList, path: []string{"get_file_listReturn"}, field: "item", typ: "string"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			types, ops := loadFixture(t, tt.wsdl)
			op, err := ops.Resolve(tt.op)
			require.NoError(t, err)

			shape, err := ResponseShape(types, op.Response)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, shape.Kind, "kind")
			assert.Equal(t, tt.path, shape.Path, "path")
			assert.Equal(t, tt.field, shape.Field, "field")
			assert.Equal(t, tt.typ, shape.Type, "type")
		})
	}
}

func TestResponseShape_SelfReferentialWrapper(t *testing.T) {
	// A single-field type that wraps itself must not loop.
	wsdl := wsdlWithTypes(`
      <xsd:complexType name="Onion">
        <xsd:sequence>
          <xsd:element name="layer" type="tns:Onion" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>`)

	types, _, err := LoadWSDL([]byte(wsdl))
	require.NoError(t, err)

	shape, err := ResponseShape(types, "Onion")
	require.NoError(t, err)
	assert.Equal(t, ShapeStruct, shape.Kind)
	assert.Equal(t, "Onion", shape.Type)
}

func TestResponseShape_UnknownType(t *testing.T) {
	types, _ := loadFixture(t, schematest.AXLWSDL)
	_, err := ResponseShape(types, "NoSuchResponse")
	assert.Error(t, err)
}
