package navigation

// Transition describes a change of the active view.
type Transition struct {
	From ViewID
	To   ViewID
	// Raw is the identifier exactly as it was passed to Navigate.
	Raw string
}

// Observer is notified after every Navigate call.
type Observer func(Transition)

// Navigator owns the "current page" identifier of the single-page shell.
// It is not safe for concurrent use; callers serialise events per session.
type Navigator struct {
	current  string
	observer Observer
}

// NewNavigator returns a navigator positioned on the home view.
func NewNavigator() *Navigator {
	return &Navigator{current: string(Home)}
}

// OnNavigate installs fn as the transition observer, replacing any previous one.
func (n *Navigator) OnNavigate(fn Observer) {
	n.observer = fn
}

// Navigate stores id verbatim. Unknown ids are accepted here and only
// resolved when the active view is computed.
func (n *Navigator) Navigate(id string) Transition {
	from := n.Active()
	n.current = id
	t := Transition{From: from, To: n.Active(), Raw: id}
	if n.observer != nil {
		n.observer(t)
	}
	return t
}

// Current returns the stored identifier as it was last set.
func (n *Navigator) Current() string {
	return n.current
}

// Active resolves the stored identifier to a view. Anything that is not an
// exact match for a known id falls back to Home.
func (n *Navigator) Active() ViewID {
	return Resolve(n.current)
}

// Resolve maps a raw identifier to the view rendered for it.
func Resolve(id string) ViewID {
	switch ViewID(id) {
	case Home:
		return Home
	case Collect:
		return Collect
	case Process:
		return Process
	case Products:
		return Products
	case About:
		return About
	default:
		return Home
	}
}
