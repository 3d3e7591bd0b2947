package modules

import (
	"encoding/json"

	"github.com/xelth-com/manualsgo/internal/models"
)

// Normalize turns whatever the storage layer hands us into a content map.
// Payloads arrive either already parsed (JSONB column) or as a JSON string
// (older rows, import paths); both are accepted. Anything unparseable
// yields an empty map, never an error: a malformed payload reads as
// "no fields present".
func Normalize(raw interface{}) models.JSONB {
	switch v := raw.(type) {
	case nil:
		return models.JSONB{}
	case models.JSONB:
		if v == nil {
			return models.JSONB{}
		}
		return v
	case map[string]interface{}:
		return models.JSONB(v)
	case string:
		return parseJSON([]byte(v))
	case []byte:
		return parseJSON(v)
	default:
		return models.JSONB{}
	}
}

func parseJSON(data []byte) models.JSONB {
	out := make(models.JSONB)
	if err := json.Unmarshal(data, &out); err != nil {
		return models.JSONB{}
	}
	return out
}

// Str returns the string value of a field, or "" when the field is
// absent or not a string
func Str(c models.JSONB, key string) string {
	if c == nil {
		return ""
	}
	if s, ok := c[key].(string); ok {
		return s
	}
	return ""
}

// StrSlice returns a string-array field. A field of the wrong shape is
// treated as absent (nil).
func StrSlice(c models.JSONB, key string) []string {
	if c == nil {
		return nil
	}
	raw, ok := c[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, _ := v.(string)
		out = append(out, s)
	}
	return out
}

// StrMatrix returns a string-matrix field (table rows). Malformed rows
// decode as nil entries.
func StrMatrix(c models.JSONB, key string) [][]string {
	if c == nil {
		return nil
	}
	raw, ok := c[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([][]string, 0, len(raw))
	for _, rowRaw := range raw {
		row, ok := rowRaw.([]interface{})
		if !ok {
			out = append(out, nil)
			continue
		}
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			s, _ := cell.(string)
			cells = append(cells, s)
		}
		out = append(out, cells)
	}
	return out
}

// StrMap returns a string-keyed string map field. Non-string values
// decode as "".
func StrMap(c models.JSONB, key string) map[string]string {
	if c == nil {
		return nil
	}
	raw, ok := c[key].(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		s, _ := v.(string)
		out[k] = s
	}
	return out
}

// HasKey reports whether the field exists at all, regardless of shape
func HasKey(c models.JSONB, key string) bool {
	if c == nil {
		return false
	}
	_, ok := c[key]
	return ok
}

// ChecklistItem is one entry of a checklist module
type ChecklistItem struct {
	Text    string
	Checked bool
}

// ChecklistItems decodes the items array of a checklist module.
// Malformed entries decode with empty text.
func ChecklistItems(c models.JSONB) []ChecklistItem {
	if c == nil {
		return nil
	}
	raw, ok := c["items"].([]interface{})
	if !ok {
		return nil
	}
	out := make([]ChecklistItem, 0, len(raw))
	for _, itemRaw := range raw {
		item, ok := itemRaw.(map[string]interface{})
		if !ok {
			out = append(out, ChecklistItem{})
			continue
		}
		text, _ := item["text"].(string)
		checked, _ := item["checked"].(bool)
		out = append(out, ChecklistItem{Text: text, Checked: checked})
	}
	return out
}

// BomVisibleCodes resolves which component rows of a bom module the end
// reader currently sees: the filteredComponentCodes list when the field
// is present, otherwise every key of the descriptions map.
func BomVisibleCodes(c models.JSONB) []string {
	if HasKey(c, "filteredComponentCodes") {
		return StrSlice(c, "filteredComponentCodes")
	}
	descriptions := StrMap(c, "descriptions")
	codes := make([]string, 0, len(descriptions))
	for code := range descriptions {
		codes = append(codes, code)
	}
	return codes
}
