package glui

import (
	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/labels"
	"github.com/BrandonKowalski/glui/pkg/glui/layout"
)

// Item is a free text entry.
func Item(text, value string) layout.Entry {
	return layout.Entry{Label: text, LabelID: labels.None, Value: value}
}

// FileItem is a free text entry for a file of the given type. The type
// decides the icon.
func FileItem(text string, fileType constants.FileType) layout.Entry {
	return layout.Entry{Label: text, LabelID: labels.None, Type: fileType}
}

// LabelItem is an entry for a known label, translated by loc. Labels linked
// to a list with router.Link open that list when activated.
func LabelItem(loc *labels.Localizer, id labels.ID, value string) layout.Entry {
	text := id.String()
	if loc != nil {
		text = loc.Label(id)
	}
	return layout.Entry{Label: text, LabelID: id, Value: value, Type: constants.FileTypeSetting}
}

// WithSublabel returns entry with a description shown under its label.
func WithSublabel(entry layout.Entry, sublabel string) layout.Entry {
	entry.Sublabel = sublabel
	return entry
}
