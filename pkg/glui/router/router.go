package router

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/labels"
	"github.com/BrandonKowalski/glui/pkg/glui/layout"
)

// List is a type-safe identifier for menu lists.
// Applications should define their own List constants using iota.
type List int

// ListNone is the zero Page's list, before Start is called.
const ListNone List = -1

// ErrNotRegistered is returned when navigating to a list that was never
// registered.
var ErrNotRegistered = errors.New("router: list not registered")

// BuildFunc produces the entries of a list. It is called every time the
// list is shown, so the entries reflect the current state.
type BuildFunc func() (layout.EntryList, error)

// Page is a built list ready to be shown.
type Page struct {
	List    List
	Title   labels.ID
	Entries layout.EntryList

	// Resume is the position to restore. It is zero for lists that were not
	// reached by going back.
	Resume Resume
}

type definition struct {
	title labels.ID
	build BuildFunc
}

// Router manages list navigation.
type Router struct {
	lists  map[List]definition
	links  map[labels.ID]List
	tabs   map[constants.Tab]List
	stack  *Stack
	page   Page
	logger *slog.Logger
}

// New creates a new Router.
func New(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		lists:  make(map[List]definition),
		links:  make(map[labels.ID]List),
		tabs:   make(map[constants.Tab]List),
		stack:  NewStack(),
		page:   Page{List: ListNone},
		logger: logger,
	}
}

// Register adds a list to the router.
func (r *Router) Register(list List, title labels.ID, fn BuildFunc) *Router {
	r.lists[list] = definition{title: title, build: fn}
	return r
}

// Link makes entries labelled id open list when activated.
func (r *Router) Link(id labels.ID, list List) *Router {
	r.links[id] = list
	return r
}

// Tab sets the root list shown for a tab.
func (r *Router) Tab(tab constants.Tab, list List) *Router {
	r.tabs[tab] = list
	return r
}

// Target returns the list entry opens, if any.
func (r *Router) Target(entry layout.Entry) (List, bool) {
	if entry.LabelID == labels.None {
		return ListNone, false
	}
	list, ok := r.links[entry.LabelID]
	return list, ok
}

// Start empties the stack and shows list as the root.
func (r *Router) Start(list List) (Page, error) {
	page, err := r.build(list, Resume{})
	if err != nil {
		return r.page, err
	}
	r.stack.Clear()
	r.page = page
	return page, nil
}

// Open pushes the current list with its resume state and shows list.
func (r *Router) Open(list List, resume Resume) (Page, error) {
	page, err := r.build(list, Resume{})
	if err != nil {
		return r.page, err
	}
	r.stack.Push(r.page.List, resume)
	r.logger.Debug("Opened list", "list", list, "from", r.page.List, "depth", r.stack.Len())
	r.page = page
	return page, nil
}

// Back returns to the previous list with its resume state. It reports false
// when the current list is a root.
func (r *Router) Back() (Page, bool, error) {
	top := r.stack.Peek()
	if top == nil {
		return r.page, false, nil
	}

	page, err := r.build(top.List, top.Resume)
	if err != nil {
		return r.page, false, err
	}
	r.stack.Pop()
	r.page = page
	return page, true, nil
}

// SwitchTab replaces the whole stack with the root list of tab.
func (r *Router) SwitchTab(tab constants.Tab) (Page, error) {
	list, ok := r.tabs[tab]
	if !ok {
		return r.page, fmt.Errorf("%w: no list for tab %s", ErrNotRegistered, tab)
	}
	return r.Start(list)
}

// Refresh rebuilds the current list, keeping resume.
func (r *Router) Refresh(resume Resume) (Page, error) {
	page, err := r.build(r.page.List, resume)
	if err != nil {
		return r.page, err
	}
	r.page = page
	return page, nil
}

// Current returns the page being shown.
func (r *Router) Current() Page {
	return r.page
}

// Stack returns the navigation stack.
func (r *Router) Stack() *Stack {
	return r.stack
}

func (r *Router) build(list List, resume Resume) (Page, error) {
	def, ok := r.lists[list]
	if !ok {
		return Page{}, fmt.Errorf("%w: %d", ErrNotRegistered, list)
	}

	var entries layout.EntryList
	if def.build != nil {
		var err error
		entries, err = def.build()
		if err != nil {
			return Page{}, fmt.Errorf("router: building list %d: %w", list, err)
		}
	}

	if resume.Selection >= len(entries) {
		resume.Selection = max(len(entries)-1, 0)
	}

	return Page{
		List:    list,
		Title:   def.title,
		Entries: entries,
		Resume:  resume,
	}, nil
}
