package tui

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.List.SetSize(m.Width, m.Height-ChromeHeight)
	m.Search.SetSize(m.Width, m.Height)
	m.Detail.SetSize(m.Width, m.Height)
}
