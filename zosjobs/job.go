package zosjobs

// Job holds the z/OSMF document describing one batch job. JobName and JobID
// are assigned at submission time and identify the job in every follow-up
// request; the remaining fields are optional detail reported by the server.
type Job struct {
	// JobID is the unique identifier assigned by JES, e.g. JOB00023
	JobID string `json:"jobid"`

	// JobName is the name from the JCL job statement
	JobName string `json:"jobname"`

	// Subsystem that owns the job
	Subsystem string `json:"subsystem"`

	// Owner user id
	Owner string `json:"owner"`

	// Status is the current lifecycle status: INPUT, ACTIVE or OUTPUT
	Status string `json:"status"`

	// Type of job: JOB, STC or TSU
	Type string `json:"type"`

	// Class the job runs in
	Class string `json:"class"`

	// RetCode is the completion code, empty while the job is running
	RetCode string `json:"retcode"`

	// URL for this job resource
	URL string `json:"url"`

	// FilesURL for this job's spool files resource
	FilesURL string `json:"files-url"`

	// JobCorrelator uniquely identifies the job across the sysplex
	JobCorrelator string `json:"job-correlator"`

	// Phase number of the current job processing phase
	Phase int `json:"phase"`

	// PhaseName of the current job processing phase
	PhaseName string `json:"phase-name"`

	// StepData is step-level detail, present only when requested
	StepData []JobStepData `json:"step-data,omitempty"`
}

// JobStepData describes one execution step of a job.
type JobStepData struct {
	// Active is true while the step is executing
	Active bool `json:"active"`

	// SmfID of the system the step ran on
	SmfID string `json:"smfid"`

	// StepNumber within the job
	StepNumber int `json:"step-number"`

	// ProcStepName when the step comes from a procedure
	ProcStepName string `json:"proc-step-name"`

	// StepName from the JCL EXEC statement
	StepName string `json:"step-name"`

	// ProgramName the step executes
	ProgramName string `json:"program-name"`
}

// JobFile describes one spool file produced by a job.
type JobFile struct {
	// JobID of the owning job
	JobID string `json:"jobid"`

	// JobName of the owning job
	JobName string `json:"jobname"`

	// ID of the spool file within the job
	ID int `json:"id"`

	// DDName the file was written to
	DDName string `json:"ddname"`

	// RecordsURL retrieves the file content
	RecordsURL string `json:"records-url"`

	// RecordCount is the number of records in the file
	RecordCount int `json:"record-count"`

	// Class the output was written in
	Class string `json:"class"`

	// ByteCount is the size of the file in bytes
	ByteCount int `json:"byte-count"`
}
