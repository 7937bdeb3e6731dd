package filter

import "errors"

// PopoverState is the filter panel's lifecycle state.
type PopoverState int

const (
	// Closed: no draft exists; the committed criteria are in effect.
	Closed PopoverState = iota
	// OpenDraft: the panel is open and edits go to a draft copy.
	OpenDraft
	// Committed: a draft was just applied; the panel is still open.
	Committed
)

// ErrBadTransition is returned for a transition the state machine
// does not allow.
var ErrBadTransition = errors.New("invalid popover transition")

// Popover models the filter panel as an explicit state machine so the
// draft-vs-committed behavior can be tested without any UI. Edits in
// OpenDraft touch only the draft; Cancel discards them, Apply promotes
// them.
type Popover struct {
	state     PopoverState
	committed *Criteria
	draft     *Criteria
}

// NewPopover starts Closed with all-permissive committed criteria.
func NewPopover() *Popover {
	return &Popover{state: Closed, committed: Default()}
}

// State returns the current state.
func (p *Popover) State() PopoverState { return p.state }

// Committed returns the criteria currently in effect.
func (p *Popover) Committed() *Criteria { return p.committed }

// Draft returns the editable draft, nil unless a draft is open.
func (p *Popover) Draft() *Criteria { return p.draft }

// Open starts a draft from the committed criteria.
func (p *Popover) Open() error {
	if p.state == OpenDraft {
		return ErrBadTransition
	}
	p.draft = p.committed.Clone()
	p.state = OpenDraft
	return nil
}

// Apply promotes the draft to committed.
func (p *Popover) Apply() error {
	if p.state != OpenDraft {
		return ErrBadTransition
	}
	p.committed = p.draft
	p.draft = nil
	p.state = Committed
	return nil
}

// Cancel discards the draft, leaving the committed criteria untouched.
func (p *Popover) Cancel() error {
	if p.state != OpenDraft {
		return ErrBadTransition
	}
	p.draft = nil
	p.state = Closed
	return nil
}

// Close dismisses the panel after an Apply.
func (p *Popover) Close() error {
	if p.state != Committed {
		return ErrBadTransition
	}
	p.state = Closed
	return nil
}
