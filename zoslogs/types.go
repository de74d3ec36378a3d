package zoslogs

// DirectionType selects the direction log data is gathered in relative to
// the start time.
type DirectionType int

const (
	// DirectionBackward gathers data before the start time
	DirectionBackward DirectionType = iota
	// DirectionForward gathers data after the start time
	DirectionForward
	numDirections
)

func (d DirectionType) String() string {
	if d >= numDirections || d < 0 {
		return "unsupported direction"
	}
	return [numDirections]string{"backward", "forward"}[d]
}

// HardCopyType selects the log data source.
type HardCopyType int

const (
	// HardCopyOperlog reads from the operations log
	HardCopyOperlog HardCopyType = iota
	// HardCopySyslog reads from the system log
	HardCopySyslog
	numHardCopies
)

func (h HardCopyType) String() string {
	if h >= numHardCopies || h < 0 {
		return "unsupported hardcopy"
	}
	return [numHardCopies]string{"operlog", "syslog"}[h]
}
