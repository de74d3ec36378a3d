package zosjobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/rest"
)

// JobSubmit submits batch jobs through the z/OSMF jobs REST endpoint.
type JobSubmit struct {
	client *rest.Client
}

// NewJobSubmit Constructor for JobSubmit.
func NewJobSubmit(client *rest.Client) *JobSubmit {
	return &JobSubmit{client: client}
}

// Submit submits the JCL contained in the given dataset and returns the job
// document assigned by the server.
func (s *JobSubmit) Submit(ctx context.Context, dataSet string) (Job, error) {
	return s.SubmitCommon(ctx, SubmitJobParams{JobDataSet: dataSet})
}

// SubmitCommon submits a job from a dataset reference, with optional JCL
// symbol substitution.
func (s *JobSubmit) SubmitCommon(ctx context.Context, params SubmitJobParams) (Job, error) {
	if params.JobDataSet == "" {
		return Job{}, zosmferrors.NewInvalid("job dataset not specified")
	}
	body := map[string]string{
		"file": fmt.Sprintf("//'%s'", params.JobDataSet),
	}
	requestURL := s.client.URL(JobsResource)

	var job Job
	if err := s.client.PutJSON(ctx, requestURL, body, &job, jclSymbolHeaders(params.JclSymbols)); err != nil {
		return Job{}, err
	}
	return job, nil
}

// SubmitJcl submits raw JCL text through the internal reader and returns the
// job document assigned by the server.
func (s *JobSubmit) SubmitJcl(ctx context.Context, params SubmitJclParams) (Job, error) {
	if strings.TrimSpace(params.Jcl) == "" {
		return Job{}, zosmferrors.NewInvalid("jcl not specified")
	}

	headers := jclSymbolHeaders(params.JclSymbols)
	headers[intrdrClassHeader] = "A"
	headers[intrdrModeHeader] = "TEXT"
	if params.InternalReaderRecfm != "" {
		headers[intrdrRecfmHeader] = params.InternalReaderRecfm
	} else {
		headers[intrdrRecfmHeader] = "F"
	}
	if params.InternalReaderLrecl != "" {
		headers[intrdrLreclHeader] = params.InternalReaderLrecl
	} else {
		headers[intrdrLreclHeader] = "80"
	}

	requestURL := s.client.URL(JobsResource)
	response, err := s.client.PutText(ctx, requestURL, params.Jcl, headers)
	if err != nil {
		return Job{}, err
	}

	var job Job
	if err := json.Unmarshal([]byte(response.Body), &job); err != nil {
		return Job{}, zosmferrors.NewUnparsable(err)
	}
	return job, nil
}

func jclSymbolHeaders(symbols map[string]string) map[string]string {
	headers := make(map[string]string, len(symbols))
	for name, value := range symbols {
		headers[jclSymbolHeader+strings.ToUpper(name)] = value
	}
	return headers
}
