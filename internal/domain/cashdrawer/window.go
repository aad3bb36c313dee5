package cashdrawer

import "time"

// Window is a time interval for attributing sales and withdrawals.
//
// Two conventions exist and both ends matter for correctness:
//   - session windows are inclusive at both ends, so a sale recorded at
//     the exact close instant belongs to the closing session;
//   - gap windows (between a close and the next open) are exclusive at
//     the start, so that same sale is never counted twice.
type Window struct {
	From          time.Time
	To            time.Time
	ExclusiveFrom bool
}

// SessionWindow returns the inclusive window [from, to]
func SessionWindow(from, to time.Time) Window {
	return Window{From: from, To: to}
}

// GapWindow returns the half-open window (from, to]
func GapWindow(from, to time.Time) Window {
	return Window{From: from, To: to, ExclusiveFrom: true}
}

// Contains reports whether t falls inside the window
func (w Window) Contains(t time.Time) bool {
	if t.After(w.To) {
		return false
	}
	if w.ExclusiveFrom {
		return t.After(w.From)
	}
	return !t.Before(w.From)
}
