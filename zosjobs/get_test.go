package zosjobs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/rest"
	"github.com/zostools/zosmf-go/zosjobs"
	"github.com/zostools/zosmf-go/zosmf"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *rest.Client {
	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)
	connection := zosmf.Connection{
		Host:     "zosmf.test",
		Port:     "443",
		User:     "IBMUSER",
		Password: "secret",
		BasePath: server.URL,
	}
	return rest.New(connection, server.Client(), zerolog.Nop())
}

func TestJobGetGetStatusCommon(t *testing.T) {
	t.Run("returns the job document", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/zosmf/restjobs/jobs/TESTJOB/JOB00023", r.URL.Path)
			_, _ = w.Write([]byte(`{"jobname":"TESTJOB","jobid":"JOB00023","status":"ACTIVE","retcode":null}`))
		})

		job, err := zosjobs.NewJobGet(client).GetStatus(context.Background(), "TESTJOB", "JOB00023")

		require.NoError(t, err)
		assert.Equal(t, "TESTJOB", job.JobName)
		assert.Equal(t, "JOB00023", job.JobID)
		assert.Equal(t, "ACTIVE", job.Status)
	})

	t.Run("requests step data when asked", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Y", r.URL.Query().Get("step-data"))
			_, _ = w.Write([]byte(`{"jobname":"TESTJOB","jobid":"JOB00023","status":"OUTPUT","step-data":[{"step-name":"STEP1","step-number":1,"program-name":"IEFBR14"}]}`))
		})

		job, err := zosjobs.NewJobGet(client).GetStatusCommon(context.Background(),
			zosjobs.CommonJobParams{JobName: "TESTJOB", JobID: "JOB00023", StepData: true})

		require.NoError(t, err)
		require.Len(t, job.StepData, 1)
		assert.Equal(t, "STEP1", job.StepData[0].StepName)
	})

	t.Run("maps a non-2xx reply onto a remote error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"rc":4,"reason":10,"message":"No job found"}`))
		})

		_, err := zosjobs.NewJobGet(client).GetStatus(context.Background(), "TESTJOB", "JOB00023")

		require.Error(t, err)
		assert.True(t, zosmferrors.IsRemote(err))
		assert.Contains(t, err.Error(), "No job found")
	})

	t.Run("rejects missing identity fields before any request", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := zosjobs.NewJobGet(client).GetStatus(context.Background(), "", "JOB00023")
		assert.True(t, zosmferrors.IsInvalid(err))

		_, err = zosjobs.NewJobGet(client).GetStatus(context.Background(), "TESTJOB", "")
		assert.True(t, zosmferrors.IsInvalid(err))
	})
}

func TestJobGetGetCommon(t *testing.T) {
	t.Run("applies filter defaults", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "*", query.Get("owner"))
			assert.Equal(t, "*", query.Get("prefix"))
			assert.Equal(t, "1000", query.Get("max-jobs"))
			assert.Empty(t, query.Get("jobid"))
			_, _ = w.Write([]byte(`[{"jobname":"JOBA","jobid":"JOB00001"},{"jobname":"JOBB","jobid":"JOB00002"}]`))
		})

		jobs, err := zosjobs.NewJobGet(client).GetCommon(context.Background(), zosjobs.GetJobParams{})

		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("passes explicit filters", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			assert.Equal(t, "IBMUSER", query.Get("owner"))
			assert.Equal(t, "TEST*", query.Get("prefix"))
			assert.Equal(t, "5", query.Get("max-jobs"))
			assert.Equal(t, "JOB00023", query.Get("jobid"))
			_, _ = w.Write([]byte(`[]`))
		})

		jobs, err := zosjobs.NewJobGet(client).GetCommon(context.Background(), zosjobs.GetJobParams{
			Owner:   "IBMUSER",
			Prefix:  "TEST*",
			MaxJobs: 5,
			JobID:   "JOB00023",
		})

		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestJobGetGetByID(t *testing.T) {
	t.Run("returns the single match", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"jobname":"TESTJOB","jobid":"JOB00023","status":"OUTPUT"}]`))
		})

		job, err := zosjobs.NewJobGet(client).GetByID(context.Background(), "JOB00023")

		require.NoError(t, err)
		assert.Equal(t, "TESTJOB", job.JobName)
	})

	t.Run("fails with not-found on an empty result", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := zosjobs.NewJobGet(client).GetByID(context.Background(), "JOB00023")

		assert.True(t, zosmferrors.IsNotFound(err))
	})
}

func TestJobGetSpool(t *testing.T) {
	t.Run("lists spool files", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/zosmf/restjobs/jobs/TESTJOB/JOB00023/files", r.URL.Path)
			_, _ = w.Write([]byte(`[{"jobname":"TESTJOB","jobid":"JOB00023","id":2,"ddname":"JESMSGLG","record-count":17}]`))
		})

		files, err := zosjobs.NewJobGet(client).GetSpoolFilesByJob(context.Background(),
			zosjobs.Job{JobName: "TESTJOB", JobID: "JOB00023"})

		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "JESMSGLG", files[0].DDName)
		assert.Equal(t, 17, files[0].RecordCount)
	})

	t.Run("fetches spool content as text", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/zosmf/restjobs/jobs/TESTJOB/JOB00023/files/2/records", r.URL.Path)
			_, _ = w.Write([]byte("IEF403I TESTJOB - STARTED\nIEF404I TESTJOB - ENDED"))
		})

		content, err := zosjobs.NewJobGet(client).GetSpoolContent(context.Background(),
			zosjobs.JobFile{JobName: "TESTJOB", JobID: "JOB00023", ID: 2})

		require.NoError(t, err)
		assert.Contains(t, content, "IEF404I")
	})

	t.Run("fetches the submitted JCL", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/zosmf/restjobs/jobs/TESTJOB/JOB00023/files/JCL/records", r.URL.Path)
			_, _ = w.Write([]byte("//TESTJOB JOB ()\n//RUN EXEC PGM=IEFBR14"))
		})

		jcl, err := zosjobs.NewJobGet(client).GetJcl(context.Background(),
			zosjobs.Job{JobName: "TESTJOB", JobID: "JOB00023"})

		require.NoError(t, err)
		assert.Contains(t, jcl, "IEFBR14")
	})
}
