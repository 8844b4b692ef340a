package schema

import (
	"io/fs"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Versions lists the schema versions available in fsys. Each version is a
// directory holding the documents for one CUCM release:
//
//	12.5/AXLAPI.wsdl
//	12.5/AXLSoap.xsd
//	14.0/AXLAPI.wsdl
//	...
//
// wsdlName is the document that marks a version directory, e.g. "AXLAPI.wsdl".
func Versions(fsys fs.FS, wsdlName string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, "*/"+wsdlName)
	if err != nil {
		return nil, schemaErrorf(wsdlName, "glob versions: %v", err)
	}
	versions := make([]string, 0, len(matches))
	for _, m := range matches {
		versions = append(versions, path.Dir(m))
	}
	sort.Strings(versions)
	return versions, nil
}
