package gesture

// --- Per-contact state ---

// contact is one finger currently eligible for gesture recognition.
type contact struct {
	seq      Sequence
	startAbs Vec2
	lastAbs  Vec2
	lastRel  Vec2
	moved    Vec2 // offset from startAbs, for tap-vs-drag discrimination
}

func newContact(ev Event) contact {
	return contact{
		seq:      ev.Sequence,
		startAbs: ev.Absolute,
		lastAbs:  ev.Absolute,
		lastRel:  ev.Relative,
	}
}

// track records a new position for the contact and returns the offset from
// the previous one.
func (c *contact) track(ev Event) Vec2 {
	offset := ev.Absolute.Sub(c.lastAbs)
	c.lastAbs = ev.Absolute
	c.lastRel = ev.Relative
	c.moved = ev.Absolute.Sub(c.startAbs)
	return offset
}

// --- Contact set helpers ---

// indexOf returns the position of seq in the valid set, or -1.
func (r *Recognizer) indexOf(seq Sequence) int {
	for i := range r.valid {
		if r.valid[i].seq == seq {
			return i
		}
	}
	return -1
}

// removeValid drops seq from the valid set, preserving press order.
// Reports whether it was present.
func (r *Recognizer) removeValid(seq Sequence) bool {
	i := r.indexOf(seq)
	if i < 0 {
		return false
	}
	copy(r.valid[i:], r.valid[i+1:])
	r.valid[len(r.valid)-1] = contact{}
	r.valid = r.valid[:len(r.valid)-1]
	return true
}

// invalidateAllValid moves every valid contact into the invalid set so the
// fingers still down cannot start a new gesture.
func (r *Recognizer) invalidateAllValid() {
	for i := range r.valid {
		r.invalid[r.valid[i].seq] = struct{}{}
		r.valid[i] = contact{}
	}
	r.valid = r.valid[:0]
	r.zoomArmed = false
}

// tapValid reports whether the valid contacts qualify as a tap under the
// current policy.
func (r *Recognizer) tapValid() bool {
	if r.tapPolicy.Mode == TapCountGated {
		return true
	}
	for i := range r.valid {
		if r.valid[i].moved.Len() > r.tapPolicy.MaxMovement {
			return false
		}
	}
	return true
}
