package domain

// Status is the candidate lifecycle state:
// created → sent → viewed → {accepted | declined | inquiry}.
//
// The only guarded transition is → viewed, which exists purely to avoid
// duplicate view-count inflation. The terminal transitions are reachable
// from any state because candidates may respond without the view tracker
// ever having fired (email client prefetch differences). A later terminal
// response overwrites an earlier one; last write wins.
type Status string

const (
	StatusCreated  Status = "created"
	StatusSent     Status = "sent"
	StatusViewed   Status = "viewed"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
	StatusInquiry  Status = "inquiry"
)

// Valid reports whether s is a known lifecycle state.
func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusSent, StatusViewed, StatusAccepted, StatusDeclined, StatusInquiry:
		return true
	}
	return false
}

// CanMarkViewed reports whether the first-view transition applies. It fires
// only from the pre-response states; a candidate who already responded
// keeps their terminal status.
func (s Status) CanMarkViewed() bool {
	return s == StatusCreated || s == StatusSent
}

// CanMarkSent reports whether the administrative created → sent bookkeeping
// transition applies.
func (s Status) CanMarkSent() bool {
	return s == StatusCreated
}

// StatusForResponse maps a response kind to the candidate status it sets.
func StatusForResponse(kind ResponseKind) Status {
	switch kind {
	case ResponseAccepted:
		return StatusAccepted
	case ResponseDeclined, ResponseDeclinedNoContact:
		return StatusDeclined
	case ResponseInquiry:
		return StatusInquiry
	}
	return ""
}
