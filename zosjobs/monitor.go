package zosjobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zosmferrors "github.com/zostools/zosmf-go/errors"
)

const (
	// DefaultAttempts is the default poll attempt budget.
	DefaultAttempts = 1000

	// DefaultLineLimit is the default number of trailing output lines
	// scanned for a message.
	DefaultLineLimit = 1000

	// DefaultWatchDelay is the default wait between polls.
	DefaultWatchDelay = 3 * time.Second
)

// DefaultStatus is the lifecycle status waited for when none is given.
var DefaultStatus = StatusOutput

// CheckResult is the outcome of one poll iteration.
type CheckResult struct {
	// Found is true when the desired condition holds
	Found bool

	// Job is the snapshot the decision was made on
	Job Job
}

// WaitResult is returned by the status-wait operations.
type WaitResult struct {
	// Job is the final job snapshot
	Job Job

	// StepData is true when step-level detail was requested and the
	// follow-up detail query succeeded. When false the Job is still the
	// valid primary result, just without step data.
	StepData bool
}

// Monitor polls the job query facade until a job reaches a desired lifecycle
// status or a desired message appears in its output. Each wait operation is
// synchronous and blocks the calling goroutine between polls; cancel through
// the context. A Monitor holds no per-call state and is safe for concurrent
// use.
type Monitor struct {
	querier  StatusQuerier
	logger   zerolog.Logger
	defaults MonitorParams
}

// NewMonitor Constructor for Monitor with the package defaults.
func NewMonitor(querier StatusQuerier, logger zerolog.Logger) *Monitor {
	return &Monitor{
		querier:  querier,
		logger:   logger,
		defaults: defaultMonitorParams(),
	}
}

// NewMonitorWithDefaults Constructor for Monitor with caller-supplied
// defaults; unset fields fall back to the package defaults.
func NewMonitorWithDefaults(querier StatusQuerier, logger zerolog.Logger, defaults MonitorParams) (*Monitor, error) {
	resolved, err := defaults.applyDefaults(defaultMonitorParams())
	if err != nil {
		return nil, err
	}
	resolved.JobName = ""
	resolved.JobID = ""
	return &Monitor{
		querier:  querier,
		logger:   logger,
		defaults: resolved,
	}, nil
}

// WaitForOutputStatus waits for the job to reach OUTPUT status.
func (m *Monitor) WaitForOutputStatus(ctx context.Context, jobName, jobID string) (WaitResult, error) {
	return m.WaitForStatusCommon(ctx, MonitorParams{JobName: jobName, JobID: jobID, Status: StatusOutput.String()})
}

// WaitForStatus waits for the job to reach the given lifecycle status.
func (m *Monitor) WaitForStatus(ctx context.Context, jobName, jobID string, status StatusType) (WaitResult, error) {
	return m.WaitForStatusCommon(ctx, MonitorParams{JobName: jobName, JobID: jobID, Status: status.String()})
}

// WaitForStatusByJob waits for a previously retrieved job to reach the given
// lifecycle status.
func (m *Monitor) WaitForStatusByJob(ctx context.Context, job Job, status StatusType) (WaitResult, error) {
	return m.WaitForStatusCommon(ctx, MonitorParams{JobName: job.JobName, JobID: job.JobID, Status: status.String()})
}

// WaitForStatusCommon polls until the job reaches the desired status, the job
// progresses past it, or the attempt budget is exhausted.
//
// The natural order of job statuses is INPUT, ACTIVE, OUTPUT. When the job's
// current status is later in that order than the desired one, the job will
// never show the desired status again, so the wait returns found immediately
// with the current snapshot. Exhausting the attempt budget is an Exhausted
// error; any facade failure aborts the wait at once.
func (m *Monitor) WaitForStatusCommon(ctx context.Context, params MonitorParams) (WaitResult, error) {
	params, err := params.resolve(m.defaults)
	if err != nil {
		return WaitResult{}, err
	}
	if orderIndexOf(params.Status) == -1 {
		return WaitResult{}, zosmferrors.NewInvalid(fmt.Sprintf("unsupported desired status %q", params.Status))
	}

	attempts := *params.Attempts
	m.logger.Info().
		Str("jobName", params.JobName).
		Str("jobId", params.JobID).
		Str("status", params.Status).
		Msg("Waiting for job status")

	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := m.checkStatus(ctx, params)
		if err != nil {
			return WaitResult{}, err
		}
		if result.Found {
			return m.attachStepData(ctx, params, result.Job), nil
		}
		if attempt == attempts {
			break
		}
		if err := m.sleep(ctx, *params.WatchDelay); err != nil {
			return WaitResult{}, err
		}
		m.logger.Info().Str("status", params.Status).Msg("Waiting for job status")
	}

	return WaitResult{}, zosmferrors.NewExhausted(fmt.Sprintf(
		"desired status %s not observed for job %s(%s) within %d attempts",
		params.Status, params.JobName, params.JobID, attempts))
}

// WaitForMessage waits for the given message to appear in the job's output.
// Returns false, without error, when the job finishes or the attempt budget
// runs out before the message shows up.
func (m *Monitor) WaitForMessage(ctx context.Context, jobName, jobID, message string) (bool, error) {
	return m.WaitForMessageCommon(ctx, MonitorParams{JobName: jobName, JobID: jobID}, message)
}

// WaitForMessageByJob waits for the given message in the output of a
// previously retrieved job.
func (m *Monitor) WaitForMessageByJob(ctx context.Context, job Job, message string) (bool, error) {
	return m.WaitForMessageCommon(ctx, MonitorParams{JobName: job.JobName, JobID: job.JobID}, message)
}

// WaitForMessageCommon polls the job's spool output until message appears as
// a substring of one of the trailing LineLimit lines. A job that stops
// running without emitting the message, or an exhausted attempt budget, both
// yield false with no error: a message that never appears is an expected
// outcome here, unlike an unreached status in WaitForStatusCommon.
func (m *Monitor) WaitForMessageCommon(ctx context.Context, params MonitorParams, message string) (bool, error) {
	params, err := params.resolve(m.defaults)
	if err != nil {
		return false, err
	}
	if message == "" {
		return false, zosmferrors.NewInvalid("message not specified")
	}

	attempts := *params.Attempts
	m.logger.Info().
		Str("jobName", params.JobName).
		Str("jobId", params.JobID).
		Str("message", message).
		Msg("Waiting for job message")

	for attempt := 1; attempt <= attempts; attempt++ {
		found, err := m.checkMessage(ctx, params, message)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
		if attempt == attempts {
			break
		}
		running, err := m.IsRunning(ctx, params.JobName, params.JobID)
		if err != nil {
			return false, err
		}
		if !running {
			// the job finished without the message; further polling
			// is pointless
			return false, nil
		}
		if err := m.sleep(ctx, *params.WatchDelay); err != nil {
			return false, err
		}
		m.logger.Info().Str("message", message).Msg("Waiting for job message")
	}

	return false, nil
}

// IsRunning reports whether the job is in a running state, i.e. its current
// status is neither INPUT nor OUTPUT.
func (m *Monitor) IsRunning(ctx context.Context, jobName, jobID string) (bool, error) {
	if jobName == "" {
		return false, zosmferrors.NewInvalid("job name not specified")
	}
	if jobID == "" {
		return false, zosmferrors.NewInvalid("job id not specified")
	}
	status, err := m.querier.GetStatusValue(ctx, jobName, jobID)
	if err != nil {
		return false, err
	}
	return status != StatusInput.String() && status != StatusOutput.String(), nil
}

// checkStatus performs one poll iteration: query the current status and
// decide whether the wait is over. Equality with the desired status wins
// before the ordering short-circuit is consulted.
func (m *Monitor) checkStatus(ctx context.Context, params MonitorParams) (CheckResult, error) {
	job, err := m.querier.GetStatusCommon(ctx, CommonJobParams{JobName: params.JobName, JobID: params.JobID})
	if err != nil {
		return CheckResult{}, err
	}

	if job.Status == params.Status {
		return CheckResult{Found: true, Job: job}, nil
	}

	desiredIndex := orderIndexOf(params.Status)
	if desiredIndex == -1 {
		// resolve validated the desired status already; reaching this
		// means an internal consistency bug
		return CheckResult{}, zosmferrors.NewInvalid(fmt.Sprintf("unsupported desired status %q", params.Status))
	}
	currentIndex := orderIndexOf(job.Status)
	if currentIndex == -1 {
		return CheckResult{}, zosmferrors.NewInvalid(fmt.Sprintf(
			"unsupported status %q reported for job %s(%s)", job.Status, params.JobName, params.JobID))
	}

	if currentIndex > desiredIndex {
		// the job progressed past the desired status and will never
		// show it; report found with the current snapshot
		return CheckResult{Found: true, Job: job}, nil
	}
	return CheckResult{}, nil
}

// checkMessage performs one message poll iteration: fetch the first spool
// file's content and scan its trailing LineLimit lines for message.
func (m *Monitor) checkMessage(ctx context.Context, params MonitorParams, message string) (bool, error) {
	jobs, err := m.querier.GetCommon(ctx, GetJobParams{Owner: "*", Prefix: params.JobName, JobID: params.JobID})
	if err != nil {
		return false, err
	}
	if len(jobs) == 0 {
		return false, zosmferrors.NewNotFound("job", fmt.Sprintf("%s(%s)", params.JobName, params.JobID))
	}

	files, err := m.querier.GetSpoolFilesByJob(ctx, jobs[0])
	if err != nil {
		return false, err
	}
	if len(files) == 0 {
		return false, zosmferrors.NewNotFound("spool files for job", fmt.Sprintf("%s(%s)", params.JobName, params.JobID))
	}

	content, err := m.querier.GetSpoolContent(ctx, files[0])
	if err != nil {
		return false, err
	}

	lines := strings.Split(content, "\n")
	start := 0
	if limit := *params.LineLimit; len(lines) > limit {
		start = len(lines) - limit
	}
	for _, line := range lines[start:] {
		if strings.Contains(line, message) {
			return true, nil
		}
	}
	return false, nil
}

// attachStepData performs the opt-in best-effort detail query after the
// desired condition is met. A failed detail query never fails the wait; the
// result just reports the detail as unavailable.
func (m *Monitor) attachStepData(ctx context.Context, params MonitorParams, job Job) WaitResult {
	if !params.StepData {
		return WaitResult{Job: job}
	}
	detailed, err := m.querier.GetStatusCommon(ctx, CommonJobParams{
		JobName:  params.JobName,
		JobID:    params.JobID,
		StepData: true,
	})
	if err != nil {
		m.logger.Debug().Err(err).
			Str("jobName", params.JobName).
			Str("jobId", params.JobID).
			Msg("Step data fetch failed")
		return WaitResult{Job: job}
	}
	return WaitResult{Job: detailed, StepData: true}
}

func (m *Monitor) sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
