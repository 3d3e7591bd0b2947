package translation

import (
	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/modules"
)

// IsModuleTranslationMissing reports whether a module still needs
// translation work for one language. No translation record at all means
// missing by definition; otherwise the verdict depends on the module
// type and on which fields the source actually carries. A field that is
// absent or empty in the source is never required in the translation.
//
// Pure predicate, no side effects.
func IsModuleTranslationMissing(module models.ContentModule, tr *models.ContentModuleTranslation) bool {
	if tr == nil {
		return true
	}

	src := modules.Normalize(module.Content)
	dst := modules.Normalize(tr.Content)

	switch module.Type {
	case modules.TypeTable:
		return tableMissing(src, dst)
	case modules.TypeChecklist:
		return checklistMissing(src, dst)
	case modules.TypeBom:
		return bomMissing(src, dst)
	case modules.TypeComponent:
		// component reference and quantity carry no language content
		return false
	default:
		if fields, ok := modules.ScalarFields(module.Type); ok {
			return scalarMissing(src, dst, fields)
		}
		// Unknown type: only an existing title/description can gate
		// completion, so new module types default to "nothing required"
		// instead of "always incomplete"
		return scalarMissing(src, dst, []string{"title", "description"})
	}
}

// scalarMissing checks that every field the source holds a value for has
// a non-empty counterpart in the translation
func scalarMissing(src, dst models.JSONB, fields []string) bool {
	for _, f := range fields {
		if modules.Str(src, f) != "" && modules.Str(dst, f) == "" {
			return true
		}
	}
	return false
}

func tableMissing(src, dst models.JSONB) bool {
	srcHeaders := modules.StrSlice(src, "headers")
	if len(srcHeaders) > 0 {
		dstHeaders := modules.StrSlice(dst, "headers")
		if len(dstHeaders) != len(srcHeaders) {
			return true
		}
		for _, h := range dstHeaders {
			if h == "" {
				return true
			}
		}
	}

	srcRows := modules.StrMatrix(src, "rows")
	if len(srcRows) > 0 {
		dstRows := modules.StrMatrix(dst, "rows")
		for i, srcRow := range srcRows {
			if i >= len(dstRows) {
				return true
			}
			dstRow := dstRows[i]
			if len(dstRow) < len(srcRow) {
				return true
			}
			for _, cell := range dstRow {
				if cell == "" {
					return true
				}
			}
		}
	}

	// caption is optional in the source and never required
	return false
}

func checklistMissing(src, dst models.JSONB) bool {
	srcItems := modules.ChecklistItems(src)
	if len(srcItems) == 0 {
		return false
	}
	dstItems := modules.ChecklistItems(dst)
	for i := range srcItems {
		if i >= len(dstItems) || dstItems[i].Text == "" {
			return true
		}
	}
	return false
}

// bomMissing gates on title, header keys, message keys and the component
// descriptions the end reader currently sees. Rows hidden by an active
// filter never block completion: translators are not asked to translate
// rows the reader cannot see.
func bomMissing(src, dst models.JSONB) bool {
	if modules.Str(src, "title") != "" && modules.Str(dst, "title") == "" {
		return true
	}

	srcHeaders := modules.StrMap(src, "headers")
	if len(srcHeaders) > 0 {
		dstHeaders := modules.StrMap(dst, "headers")
		for key := range srcHeaders {
			if dstHeaders[key] == "" {
				return true
			}
		}
	}

	srcMessages := modules.StrMap(src, "messages")
	if len(srcMessages) > 0 {
		dstMessages := modules.StrMap(dst, "messages")
		for key := range srcMessages {
			if dstMessages[key] == "" {
				return true
			}
		}
	}

	visible := modules.BomVisibleCodes(src)
	if len(visible) > 0 {
		srcDescs := modules.StrMap(src, "descriptions")
		dstDescs := modules.StrMap(dst, "descriptions")
		for _, code := range visible {
			if srcDescs[code] == "" {
				// no source description for this row, nothing to translate
				continue
			}
			if dstDescs[code] == "" {
				return true
			}
		}
	}

	return false
}
