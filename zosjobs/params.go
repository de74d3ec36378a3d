package zosjobs

import (
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/samber/lo"
	zosmferrors "github.com/zostools/zosmf-go/errors"
)

// CommonJobParams identifies one job for a status query.
type CommonJobParams struct {
	// JobName of the job
	JobName string

	// JobID of the job
	JobID string

	// StepData requests step-level detail in the returned document
	StepData bool
}

// GetJobParams filters a job list query. Zero-value fields are left out of
// the query string, except Owner and Prefix which default to "*".
type GetJobParams struct {
	// Owner filters on the owning user id
	Owner string

	// Prefix filters on the job name prefix
	Prefix string

	// MaxJobs caps the number of returned jobs
	MaxJobs int

	// JobID filters on one job id
	JobID string
}

// ModifyJobParams identifies a job for a delete or cancel request.
type ModifyJobParams struct {
	// JobName of the job
	JobName string

	// JobID of the job
	JobID string

	// Version selects asynchronous ("1.0") or synchronous ("2.0")
	// processing. Default "2.0".
	Version string
}

// SubmitJobParams submits a job from a dataset containing JCL.
type SubmitJobParams struct {
	// JobDataSet holding syntactically correct JCL,
	// e.g. IBMUSER.PUBLIC.CNTL(IEFBR14)
	JobDataSet string

	// JclSymbols for symbolic substitution
	JclSymbols map[string]string
}

// SubmitJclParams submits a job from raw JCL text.
type SubmitJclParams struct {
	// Jcl text to submit
	Jcl string

	// InternalReaderRecfm record format, F or V
	InternalReaderRecfm string

	// InternalReaderLrecl logical record length
	InternalReaderLrecl string

	// JclSymbols for symbolic substitution
	JclSymbols map[string]string
}

// MonitorParams configures one wait operation. JobName and JobID are
// required; unset optional fields are back-filled with the monitor defaults
// once, at call entry.
type MonitorParams struct {
	// JobName of the job to monitor
	JobName string

	// JobID of the job to monitor
	JobID string

	// Status is the desired lifecycle status. Default OUTPUT. Ignored by
	// the message-wait operation.
	Status string

	// Attempts is the poll attempt budget. Default 1000.
	Attempts *int

	// WatchDelay between polls. Default 3s.
	WatchDelay *time.Duration

	// LineLimit is the number of trailing output lines scanned by the
	// message-wait operation. Default 1000.
	LineLimit *int

	// StepData requests one extra best-effort query for step-level detail
	// after the desired status is reached.
	StepData bool
}

// resolve validates identity fields and back-fills unset optional fields
// from defaults. Returns the fully resolved copy.
func (p MonitorParams) resolve(defaults MonitorParams) (MonitorParams, error) {
	if p.JobName == "" {
		return p, zosmferrors.NewInvalid("job name not specified")
	}
	if p.JobID == "" {
		return p, zosmferrors.NewInvalid("job id not specified")
	}
	return p.applyDefaults(defaults)
}

// applyDefaults back-fills unset optional fields from defaults and validates
// the resulting values. WithoutDereference keeps the pointer fields opaque so
// a set pointer wins even when it points at a zero value.
func (p MonitorParams) applyDefaults(defaults MonitorParams) (MonitorParams, error) {
	if err := mergo.Merge(&p, defaults, mergo.WithoutDereference); err != nil {
		return p, fmt.Errorf("failed to apply monitor defaults: %w", err)
	}
	if *p.Attempts < 1 {
		return p, zosmferrors.NewInvalid("attempts must be at least 1")
	}
	if *p.WatchDelay < 0 {
		return p, zosmferrors.NewInvalid("watch delay must not be negative")
	}
	if *p.LineLimit < 1 {
		return p, zosmferrors.NewInvalid("line limit must be at least 1")
	}
	return p, nil
}

func defaultMonitorParams() MonitorParams {
	return MonitorParams{
		Status:     DefaultStatus.String(),
		Attempts:   lo.ToPtr(DefaultAttempts),
		WatchDelay: lo.ToPtr(DefaultWatchDelay),
		LineLimit:  lo.ToPtr(DefaultLineLimit),
	}
}
