// Package router keeps the stack of menu lists the user has walked through.
//
// Every list is registered once with a title and a BuildFunc that produces
// its entries. Entries whose label is linked to another list open that list
// when activated; the list being left is pushed on the stack together with
// its resume state (selection and scroll offset), so going back restores the
// exact position.
//
// # Basic Usage
//
//	const (
//	    ListMain router.List = iota
//	    ListSettings
//	    ListVideo
//	)
//
//	r := router.New(nil)
//
//	r.Register(ListMain, labels.MainMenu, func() (layout.EntryList, error) {
//	    return layout.EntryList{
//	        {LabelID: labels.SettingsTab},
//	        {LabelID: labels.QuitApplication},
//	    }, nil
//	})
//	r.Register(ListSettings, labels.SettingsTab, buildSettings)
//
//	// Activating the "Settings" entry opens ListSettings.
//	r.Link(labels.SettingsTab, ListSettings)
//
//	// The tab bar switches between list roots.
//	r.Tab(constants.TabMain, ListMain)
//	r.Tab(constants.TabSettings, ListSettings)
//
//	page, err := r.Start(ListMain)
//
//	// Later, on activation of entry i:
//	if next, ok := r.Target(page.Entries[i]); ok {
//	    page, err = r.Open(next, router.Resume{Selection: i, ScrollY: scroll})
//	}
//
//	// On cancel:
//	if prev, ok, err := r.Back(); ok {
//	    page = prev // prev.Resume holds the position to restore
//	}
//
// # Resume State
//
// Resume is stored on the stack when navigating forward and handed back in
// the Page returned by Back. Switching tabs empties the stack; the new root
// starts at the top.
package router
