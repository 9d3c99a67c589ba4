package model

// Status is the lifecycle stage of a quotation. Statuses are totally
// ordered and a quotation only ever moves forward.
type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusQuoted   Status = "QUOTED"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusClosed   Status = "CLOSED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusOpen, StatusQuoted, StatusApproved, StatusRejected, StatusClosed}

// ParseStatus returns the status named s.
func ParseStatus(s string) (Status, bool) {
	for _, status := range Statuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// Rank returns the position of s in the lifecycle, or -1 for an unknown status.
func (s Status) Rank() int {
	for i, status := range Statuses {
		if status == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusClosed
}

// CanTransitionTo reports whether a quotation in s may move to target.
func (s Status) CanTransitionTo(target Status) bool {
	if s.IsTerminal() || target.Rank() < 0 {
		return false
	}
	return target.Rank() > s.Rank()
}

// TerminalStatuses lists the statuses that close a quotation for edits.
func TerminalStatuses() []Status {
	return []Status{StatusRejected, StatusClosed}
}
