// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// LoadMarkers reads a YAML marker table from path. The file replaces the
// built-in table entirely:
//
//	code:
//	  - "-- ANSWER\n"
//	markdown:
//	  - "ANSWER"
func LoadMarkers(path string) (types.MarkerTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading marker file: %w", err)
	}
	var table types.MarkerTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing marker file %s: %w", path, err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("marker file %s defines no markers", path)
	}
	for kind, prefixes := range table {
		if len(prefixes) == 0 {
			return nil, fmt.Errorf("marker file %s lists no prefixes for %q cells", path, kind)
		}
		for _, p := range prefixes {
			// An empty prefix would turn every cell of the kind into an answer.
			if p == "" {
				return nil, fmt.Errorf("marker file %s contains an empty prefix for %q cells", path, kind)
			}
		}
	}
	return table, nil
}
