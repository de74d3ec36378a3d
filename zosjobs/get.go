package zosjobs

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/rest"
)

// StatusQuerier is the job query facade consumed by the Monitor. JobGet is
// the production implementation; tests substitute a mock.
type StatusQuerier interface {
	// GetStatusCommon returns the job document for the given identity,
	// with step-level detail when requested
	GetStatusCommon(ctx context.Context, params CommonJobParams) (Job, error)
	// GetStatusValue returns the job's current lifecycle status string
	GetStatusValue(ctx context.Context, jobName, jobID string) (string, error)
	// GetCommon returns the jobs matching the given filter
	GetCommon(ctx context.Context, params GetJobParams) ([]Job, error)
	// GetSpoolFilesByJob returns the job's spool file descriptors
	GetSpoolFilesByJob(ctx context.Context, job Job) ([]JobFile, error)
	// GetSpoolContent returns the raw content of one spool file
	GetSpoolContent(ctx context.Context, file JobFile) (string, error)
}

// JobGet issues the z/OSMF job query requests.
type JobGet struct {
	client *rest.Client
}

var _ StatusQuerier = &JobGet{}

// NewJobGet Constructor for JobGet.
func NewJobGet(client *rest.Client) *JobGet {
	return &JobGet{client: client}
}

// GetStatusCommon retrieves the job document for the given jobname/jobid.
func (g *JobGet) GetStatusCommon(ctx context.Context, params CommonJobParams) (Job, error) {
	if params.JobName == "" {
		return Job{}, zosmferrors.NewInvalid("job name not specified")
	}
	if params.JobID == "" {
		return Job{}, zosmferrors.NewInvalid("job id not specified")
	}
	requestURL := g.client.URL(fmt.Sprintf("%s/%s/%s", JobsResource,
		rest.EncodeURIComponent(params.JobName), rest.EncodeURIComponent(params.JobID)))
	if params.StepData {
		requestURL += "?step-data=Y"
	}
	var job Job
	if err := g.client.GetJSON(ctx, requestURL, &job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// GetStatus retrieves the job document for the given jobname/jobid without
// step-level detail.
func (g *JobGet) GetStatus(ctx context.Context, jobName, jobID string) (Job, error) {
	return g.GetStatusCommon(ctx, CommonJobParams{JobName: jobName, JobID: jobID})
}

// GetStatusByJob refreshes the status of a previously retrieved job document.
func (g *JobGet) GetStatusByJob(ctx context.Context, job Job) (Job, error) {
	return g.GetStatusCommon(ctx, CommonJobParams{JobName: job.JobName, JobID: job.JobID})
}

// GetStatusValue retrieves only the current status string of the given job.
func (g *JobGet) GetStatusValue(ctx context.Context, jobName, jobID string) (string, error) {
	job, err := g.GetStatusCommon(ctx, CommonJobParams{JobName: jobName, JobID: jobID})
	if err != nil {
		return "", err
	}
	return job.Status, nil
}

// GetCommon retrieves the jobs matching the given filter. Owner and Prefix
// default to "*", MaxJobs to DefaultMaxJobs.
func (g *JobGet) GetCommon(ctx context.Context, params GetJobParams) ([]Job, error) {
	query := url.Values{}
	owner := params.Owner
	if owner == "" {
		owner = "*"
	}
	prefix := params.Prefix
	if prefix == "" {
		prefix = "*"
	}
	maxJobs := params.MaxJobs
	if maxJobs == 0 {
		maxJobs = DefaultMaxJobs
	}
	query.Set("owner", owner)
	query.Set("prefix", prefix)
	query.Set("max-jobs", strconv.Itoa(maxJobs))
	if params.JobID != "" {
		query.Set("jobid", params.JobID)
	}

	requestURL := g.client.URL(JobsResource) + "?" + query.Encode()
	var jobs []Job
	if err := g.client.GetJSON(ctx, requestURL, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetByID retrieves the single job with the given job id.
func (g *JobGet) GetByID(ctx context.Context, jobID string) (Job, error) {
	if jobID == "" {
		return Job{}, zosmferrors.NewInvalid("job id not specified")
	}
	jobs, err := g.GetCommon(ctx, GetJobParams{JobID: jobID})
	if err != nil {
		return Job{}, err
	}
	if len(jobs) == 0 {
		return Job{}, zosmferrors.NewNotFound("job", jobID)
	}
	if len(jobs) > 1 {
		return Job{}, zosmferrors.NewInvalid(fmt.Sprintf("job id %s matched %d jobs", jobID, len(jobs)))
	}
	return jobs[0], nil
}

// GetSpoolFilesByJob retrieves the spool file descriptors for the given job.
func (g *JobGet) GetSpoolFilesByJob(ctx context.Context, job Job) ([]JobFile, error) {
	if job.JobName == "" {
		return nil, zosmferrors.NewInvalid("job name not specified")
	}
	if job.JobID == "" {
		return nil, zosmferrors.NewInvalid("job id not specified")
	}
	requestURL := g.client.URL(fmt.Sprintf("%s/%s/%s/files", JobsResource,
		rest.EncodeURIComponent(job.JobName), rest.EncodeURIComponent(job.JobID)))
	var files []JobFile
	if err := g.client.GetJSON(ctx, requestURL, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// GetSpoolContent retrieves the raw content of one spool file.
func (g *JobGet) GetSpoolContent(ctx context.Context, file JobFile) (string, error) {
	if file.JobName == "" {
		return "", zosmferrors.NewInvalid("job name not specified")
	}
	if file.JobID == "" {
		return "", zosmferrors.NewInvalid("job id not specified")
	}
	requestURL := g.client.URL(fmt.Sprintf("%s/%s/%s/files/%d/records", JobsResource,
		rest.EncodeURIComponent(file.JobName), rest.EncodeURIComponent(file.JobID), file.ID))
	return g.client.GetText(ctx, requestURL)
}

// GetJcl retrieves the JCL the given job was submitted with.
func (g *JobGet) GetJcl(ctx context.Context, job Job) (string, error) {
	if job.JobName == "" {
		return "", zosmferrors.NewInvalid("job name not specified")
	}
	if job.JobID == "" {
		return "", zosmferrors.NewInvalid("job id not specified")
	}
	requestURL := g.client.URL(fmt.Sprintf("%s/%s/%s/files/JCL/records", JobsResource,
		rest.EncodeURIComponent(job.JobName), rest.EncodeURIComponent(job.JobID)))
	return g.client.GetText(ctx, requestURL)
}
