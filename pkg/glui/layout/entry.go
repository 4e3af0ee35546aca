package layout

import (
	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/labels"
)

// Entry is a single row of a menu list.
type Entry struct {
	Label    string
	LabelID  labels.ID // labels.None for free text
	Value    string
	Sublabel string
	Type     constants.FileType
}

// EntryProvider is the ordered list of entries the engine lays out.
type EntryProvider interface {
	Len() int
	At(i int) Entry
}

// EntryList is an EntryProvider backed by a slice.
type EntryList []Entry

func (l EntryList) Len() int { return len(l) }

func (l EntryList) At(i int) Entry { return l[i] }

// Node is the layout data the engine keeps for one entry.
type Node struct {
	LineHeight float32
	Y          float32 // offset from the top of the list, not the viewport

	Icon    constants.IconID
	HasIcon bool
}
