package navigation

// Menu is the open/closed flag of the top navbar's mobile menu.
// The zero value is closed.
type Menu struct {
	open bool
}

// Open reports whether the mobile link block is shown.
func (m *Menu) Open() bool {
	return m.open
}

// Toggle flips the flag.
func (m *Menu) Toggle() {
	m.open = !m.open
}

// Close is called whenever a navbar link is activated.
func (m *Menu) Close() {
	m.open = false
}
