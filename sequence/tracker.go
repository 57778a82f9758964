package sequence

// Tracker counts storage blocks created and freed by sequences configured
// with WithTracker. Blocks created by detachment are tracked by the tracker
// of the block they were copied from. A nil *Tracker counts nothing.
//
// Tracker is not synchronized, like the sequences feeding it.
type Tracker struct {
	allocs   int
	releases int
}

// Allocated is the number of blocks created so far.
func (tr *Tracker) Allocated() int {
	if tr == nil {
		return 0
	}
	return tr.allocs
}

// Released is the number of blocks freed so far.
func (tr *Tracker) Released() int {
	if tr == nil {
		return 0
	}
	return tr.releases
}

// Live is the number of blocks still referenced by at least one handle.
func (tr *Tracker) Live() int {
	return tr.Allocated() - tr.Released()
}

func (tr *Tracker) allocated() {
	if tr != nil {
		tr.allocs++
	}
}

func (tr *Tracker) released() {
	if tr != nil {
		tr.releases++
	}
}
