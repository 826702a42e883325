package gesture

// Gate wraps an InputHandler so the host can temporarily block input, for
// example while a modal dialog is open or the window is unfocused.
//
// Blocking suspends the wrapped handler and rejects events; unblocking
// resumes it, which discards any per-touch state gathered before the block.
type Gate struct {
	handler InputHandler
	blocked bool
}

// NewGate returns an unblocked Gate around h.
func NewGate(h InputHandler) *Gate {
	return &Gate{handler: h}
}

// Handler returns the wrapped handler.
func (g *Gate) Handler() InputHandler {
	return g.handler
}

// Blocked reports whether input is currently blocked.
func (g *Gate) Blocked() bool {
	return g.blocked
}

// Block blocks or unblocks input. Calls that do not change the state are
// no-ops.
func (g *Gate) Block(blocked bool) {
	if blocked == g.blocked {
		return
	}
	g.blocked = blocked
	if blocked {
		g.handler.OnSuspend()
	} else {
		g.handler.OnResume()
	}
}

// Handle forwards ev to the wrapped handler unless input is blocked.
func (g *Gate) Handle(ev Event) bool {
	if g.blocked {
		return false
	}
	return g.handler.Handle(ev)
}

// OnSuspend blocks input.
func (g *Gate) OnSuspend() { g.Block(true) }

// OnResume unblocks input.
func (g *Gate) OnResume() { g.Block(false) }
