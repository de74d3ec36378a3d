package zosjobs

import (
	"context"
	"fmt"

	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/rest"
)

// JobDelete purges jobs from the JES spool through the z/OSMF jobs REST
// endpoint.
type JobDelete struct {
	client *rest.Client
}

// NewJobDelete Constructor for JobDelete.
func NewJobDelete(client *rest.Client) *JobDelete {
	return &JobDelete{client: client}
}

// Delete purges the job with the given jobname/jobid. Version "1.0" requests
// asynchronous processing, "2.0" synchronous; empty selects the default.
func (d *JobDelete) Delete(ctx context.Context, jobName, jobID, version string) (rest.Response, error) {
	return d.DeleteCommon(ctx, ModifyJobParams{JobName: jobName, JobID: jobID, Version: version})
}

// DeleteByJob purges the job identified by a previously retrieved document.
func (d *JobDelete) DeleteByJob(ctx context.Context, job Job, version string) (rest.Response, error) {
	return d.DeleteCommon(ctx, ModifyJobParams{JobName: job.JobName, JobID: job.JobID, Version: version})
}

// DeleteCommon purges the job identified by params.
func (d *JobDelete) DeleteCommon(ctx context.Context, params ModifyJobParams) (rest.Response, error) {
	if params.JobName == "" {
		return rest.Response{}, zosmferrors.NewInvalid("job name not specified")
	}
	if params.JobID == "" {
		return rest.Response{}, zosmferrors.NewInvalid("job id not specified")
	}
	version := params.Version
	if version == "" {
		version = DefaultDeleteVersion
	}
	if version != "1.0" && version != "2.0" {
		return rest.Response{}, zosmferrors.NewInvalid(fmt.Sprintf("invalid version specified: %s", version))
	}

	requestURL := d.client.URL(fmt.Sprintf("%s/%s/%s", JobsResource,
		rest.EncodeURIComponent(params.JobName), rest.EncodeURIComponent(params.JobID)))
	headers := map[string]string{modifyVersionHeader: version}
	return d.client.Delete(ctx, requestURL, headers)
}
