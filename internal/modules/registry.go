package modules

// Content module type tags. This is a closed set: every consumer switches
// over the tag with an explicit default branch that degrades gracefully
// instead of failing the whole document.
const (
	TypeText               = "text"
	TypeImage              = "image"
	TypeVideo              = "video"
	TypeTable              = "table"
	TypeWarning            = "warning"
	TypeDanger             = "danger"
	TypeWarningAlert       = "warning-alert"
	TypeCaution            = "caution"
	TypeNote               = "note"
	TypeSafetyInstructions = "safety-instructions"
	TypeChecklist          = "checklist"
	TypeFile               = "file"
	TypePdf                = "pdf"
	TypeLink               = "link"
	TypeComponent          = "component"
	TypeBom                = "bom"
	Type3DModel            = "3d-model"
	TypeTestp              = "testp"
)

// KnownTypes lists every registered module type
var KnownTypes = []string{
	TypeText, TypeImage, TypeVideo, TypeTable,
	TypeWarning, TypeDanger, TypeWarningAlert, TypeCaution, TypeNote, TypeSafetyInstructions,
	TypeChecklist, TypeFile, TypePdf, TypeLink, TypeComponent, TypeBom, Type3DModel, TypeTestp,
}

// IsKnownType reports whether a type tag belongs to the registry
func IsKnownType(t string) bool {
	for _, k := range KnownTypes {
		if k == t {
			return true
		}
	}
	return false
}

// alertBodyField maps each alert subtype to the name of its body field.
// The warning subtype historically stores its body under "message" while
// every sibling subtype uses "description". Stored translations depend on
// this split, so it must never be unified.
var alertBodyField = map[string]string{
	TypeWarning:            "message",
	TypeDanger:             "description",
	TypeWarningAlert:       "description",
	TypeCaution:            "description",
	TypeNote:               "description",
	TypeSafetyInstructions: "description",
}

// AlertBodyField returns the body field name for an alert subtype,
// and false for non-alert types
func AlertBodyField(moduleType string) (string, bool) {
	f, ok := alertBodyField[moduleType]
	return f, ok
}

// IsAlertType reports whether the type is one of the alert variants
func IsAlertType(moduleType string) bool {
	_, ok := alertBodyField[moduleType]
	return ok
}

// scalarFields maps simple module types to their translatable fields.
// A field is only required in a translation when the source holds a
// non-empty value for it.
var scalarFields = map[string][]string{
	TypeText:    {"text"},
	TypeTestp:   {"text"},
	TypeImage:   {"title", "caption", "alt"},
	TypeVideo:   {"title", "caption", "alt"},
	TypeFile:    {"title", "description"},
	TypePdf:     {"title", "description"},
	Type3DModel: {"title", "description"},
	TypeLink:    {"text", "description"},
}

// ScalarFields returns the translatable fields of a simple module type,
// and false when the type is not a simple scalar type
func ScalarFields(moduleType string) ([]string, bool) {
	if f, ok := AlertBodyField(moduleType); ok {
		return []string{"title", f}, true
	}
	fields, ok := scalarFields[moduleType]
	return fields, ok
}
