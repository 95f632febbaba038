package interp

// BranchProfile records whether a branch was ever taken. The first entry
// is a shape change: it is reported before the branch's behavior runs.
// Typically used on error branches so compiled code can treat the branch
// as dead until proven otherwise.
type BranchProfile struct {
	inv     Invalidator
	node    string
	entered bool
}

// NewBranchProfile creates a branch profile reporting to inv under the
// given node kind.
func NewBranchProfile(inv Invalidator, node string) *BranchProfile {
	if inv == nil {
		inv = NopInvalidator
	}
	return &BranchProfile{inv: inv, node: node}
}

// Enter marks the branch taken. Call before executing the branch body.
func (p *BranchProfile) Enter() {
	if !p.entered {
		p.inv.Invalidate()
		observeSpecialization(p.node)
		p.entered = true
	}
}

// Entered reports whether the branch was ever taken.
func (p *BranchProfile) Entered() bool { return p.entered }

// ConditionProfile records which outcomes of a condition were observed,
// reporting each outcome's first observation as a shape change.
type ConditionProfile struct {
	inv       Invalidator
	node      string
	seenTrue  bool
	seenFalse bool
}

// NewConditionProfile creates a condition profile reporting to inv under
// the given node kind.
func NewConditionProfile(inv Invalidator, node string) *ConditionProfile {
	if inv == nil {
		inv = NopInvalidator
	}
	return &ConditionProfile{inv: inv, node: node}
}

// Profile passes cond through, recording its first observation per
// outcome.
func (p *ConditionProfile) Profile(cond bool) bool {
	if cond {
		if !p.seenTrue {
			p.inv.Invalidate()
			observeSpecialization(p.node)
			p.seenTrue = true
		}
	} else if !p.seenFalse {
		p.inv.Invalidate()
		observeSpecialization(p.node)
		p.seenFalse = true
	}
	return cond
}

// SeenBoth reports whether both outcomes were observed.
func (p *ConditionProfile) SeenBoth() bool { return p.seenTrue && p.seenFalse }
