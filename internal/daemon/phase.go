package daemon

// Phase is the lifecycle stage of the manager process.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseProbing
	PhaseRunning
	PhaseShuttingDown
	PhaseClosed
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseProbing:
		return "probing"
	case PhaseRunning:
		return "running"
	case PhaseShuttingDown:
		return "shutting-down"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}
