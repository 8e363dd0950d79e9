// Package nav holds the authenticated UI's cross-cutting navigation state:
// the active feature tab, the profile sub-section and a transient
// cross-feature filter.
package nav

const (
	DefaultTab            = "home"
	DefaultProfileSection = "overview"
)

// Navigator is plain observable state. It is owned by the UI event loop and
// is not safe for concurrent use.
type Navigator struct {
	tab         string
	section     string
	notesFilter string
	onTabChange []func(tab string)
}

func New() *Navigator {
	return &Navigator{tab: DefaultTab, section: DefaultProfileSection}
}

// ActiveTab returns the active top-level feature tab.
func (n *Navigator) ActiveTab() string { return n.tab }

// SetActiveTab switches the top-level feature and fires the change hooks,
// which the UI uses to scroll the content region back to top.
func (n *Navigator) SetActiveTab(tab string) {
	if tab == n.tab {
		return
	}
	n.tab = tab
	for _, fn := range n.onTabChange {
		fn(tab)
	}
}

// OnTabChange registers a hook fired on every top-level feature change.
func (n *Navigator) OnTabChange(fn func(tab string)) {
	n.onTabChange = append(n.onTabChange, fn)
}

// ProfileSection returns the active profile sub-section.
func (n *Navigator) ProfileSection() string { return n.section }

func (n *Navigator) SetProfileSection(section string) { n.section = section }

// NotesFilter returns the transient notes-topic filter, if set. The filter
// is written by the home screen and consumed by the profile screen; the
// consumer clears or ignores it.
func (n *Navigator) NotesFilter() (string, bool) {
	return n.notesFilter, n.notesFilter != ""
}

func (n *Navigator) SetNotesFilter(topic string) { n.notesFilter = topic }

func (n *Navigator) ClearNotesFilter() { n.notesFilter = "" }

// OpenSection jumps to a profile sub-section, switching to the profile tab.
func (n *Navigator) OpenSection(section string) {
	n.section = section
	n.SetActiveTab("profile")
}

func (n *Navigator) OpenProgression() { n.OpenSection("progression") }
func (n *Navigator) OpenQuests()      { n.OpenSection("quests") }
func (n *Navigator) OpenStreaks()     { n.OpenSection("streaks") }
func (n *Navigator) OpenStore()       { n.OpenSection("store") }
func (n *Navigator) OpenSocial()      { n.OpenSection("social") }

// Reset returns everything to defaults. Runs on logout.
func (n *Navigator) Reset() {
	n.tab = DefaultTab
	n.section = DefaultProfileSection
	n.notesFilter = ""
}
