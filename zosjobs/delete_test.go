package zosjobs_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/zosjobs"
)

func TestJobDelete(t *testing.T) {
	t.Run("deletes synchronously by default", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/zosmf/restjobs/jobs/TESTJOB/JOB00023", r.URL.Path)
			assert.Equal(t, "2.0", r.Header.Get("X-IBM-Job-Modify-Version"))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"jobid":"JOB00023","status":0}`))
		})

		response, err := zosjobs.NewJobDelete(client).Delete(context.Background(), "TESTJOB", "JOB00023", "")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, response.StatusCode)
	})

	t.Run("requests asynchronous processing for version 1.0", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "1.0", r.Header.Get("X-IBM-Job-Modify-Version"))
			w.WriteHeader(http.StatusAccepted)
		})

		response, err := zosjobs.NewJobDelete(client).Delete(context.Background(), "TESTJOB", "JOB00023", "1.0")

		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, response.StatusCode)
	})

	t.Run("rejects an unknown version", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := zosjobs.NewJobDelete(client).Delete(context.Background(), "TESTJOB", "JOB00023", "3.0")

		assert.True(t, zosmferrors.IsInvalid(err))
	})

	t.Run("surfaces a remote failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Job not found"}`))
		})

		_, err := zosjobs.NewJobDelete(client).DeleteByJob(context.Background(),
			zosjobs.Job{JobName: "TESTJOB", JobID: "JOB00023"}, "")

		require.Error(t, err)
		assert.True(t, zosmferrors.IsRemote(err))
	})
}
