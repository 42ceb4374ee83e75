package chartsvg

import "encoding/json"

// RenderJSON serializes any chart geometry (a sankey.Layout, primitive
// set, or linear shapes) for downstream tooling.
func RenderJSON(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
