package zosjobs

// StatusType Enumeration of the lifecycle statuses a z/OS job moves through
type StatusType int

const (
	// StatusInput job is queued for execution
	StatusInput StatusType = iota

	// StatusActive job is executing
	StatusActive

	// StatusOutput job has finished and its output is available
	StatusOutput

	numStatuses
)

func (s StatusType) String() string {
	if s >= numStatuses || s < 0 {
		return "Unsupported"
	}
	return [...]string{"INPUT", "ACTIVE", "OUTPUT"}[s]
}

// statusOrder is the natural progression of job statuses. A job only ever
// moves left to right through this table.
var statusOrder = [...]string{"INPUT", "ACTIVE", "OUTPUT"}

// orderIndexOf returns the position of status in the natural progression,
// or -1 when the status is not a member of the known set.
func orderIndexOf(status string) int {
	for i := range statusOrder {
		if statusOrder[i] == status {
			return i
		}
	}
	return -1
}
