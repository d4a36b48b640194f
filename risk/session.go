package risk

// Session tracks one form's lifecycle: the current snapshot, the last
// calculation outcome, and whether that outcome has gone stale. Edits
// never touch the last outcome; they only flag it. Each Calculate call
// replaces the outcome wholesale, success or failure.
//
// Not safe for concurrent use; a session belongs to one form.
type Session struct {
	input  Snapshot
	table  map[string]float64
	plan   Plan
	errs   FieldErrors
	hasRun bool
	stale  bool
}

func NewSession(table map[string]float64) *Session {
	return &Session{table: table}
}

// Edit replaces the working snapshot. If a result has been shown it is
// marked stale, not discarded.
func (s *Session) Edit(next Snapshot) {
	if next == s.input {
		return
	}
	s.input = next
	if s.hasRun {
		s.stale = true
	}
}

// Calculate runs the calculator on the working snapshot and clears the
// stale flag regardless of outcome.
func (s *Session) Calculate() (Plan, FieldErrors) {
	s.plan, s.errs = Calculate(s.input, s.table)
	s.hasRun = true
	s.stale = false
	return s.plan, s.errs
}

func (s *Session) Input() Snapshot { return s.input }

// Last returns the previous outcome. ok is false before the first
// Calculate call.
func (s *Session) Last() (Plan, FieldErrors, bool) {
	return s.plan, s.errs, s.hasRun
}

// Stale reports whether the input changed after the last outcome was
// produced.
func (s *Session) Stale() bool { return s.stale }
