package components

// Phase states.
const (
	PhasePending = "pending"
	PhaseRunning = "running"
	PhaseDone    = "done"
)

// PhaseEntry is a single phase row.
type PhaseEntry struct {
	Label  string
	Status string
}

// PhaseList tracks phase states in run order. Starting a phase completes
// every phase before it.
type PhaseList struct {
	entries []PhaseEntry
}

// NewPhaseList creates a list with every label pending.
func NewPhaseList(labels []string) PhaseList {
	entries := make([]PhaseEntry, len(labels))
	for i, label := range labels {
		entries[i] = PhaseEntry{Label: label, Status: PhasePending}
	}
	return PhaseList{entries: entries}
}

// Start marks label as running. Unknown labels are appended.
func (l PhaseList) Start(label string) PhaseList {
	entries := l.Entries()
	at := -1
	for i, e := range entries {
		if e.Label == label {
			at = i
			break
		}
	}
	if at < 0 {
		entries = append(entries, PhaseEntry{Label: label})
		at = len(entries) - 1
	}
	for i := 0; i < at; i++ {
		entries[i].Status = PhaseDone
	}
	entries[at].Status = PhaseRunning
	return PhaseList{entries: entries}
}

// Finish marks every phase done.
func (l PhaseList) Finish() PhaseList {
	entries := l.Entries()
	for i := range entries {
		entries[i].Status = PhaseDone
	}
	return PhaseList{entries: entries}
}

// Entries returns a copy of the ordered entries.
func (l PhaseList) Entries() []PhaseEntry {
	clone := make([]PhaseEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}
