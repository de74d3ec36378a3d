package zosjobs

// JobsResource is the z/OSMF jobs REST resource path.
const JobsResource = "/zosmf/restjobs/jobs"

const (
	// DefaultMaxJobs caps the number of jobs returned by a filtered query.
	DefaultMaxJobs = 1000

	// DefaultDeleteVersion selects synchronous job deletion.
	DefaultDeleteVersion = "2.0"
)

const (
	modifyVersionHeader = "X-IBM-Job-Modify-Version"
	jclSymbolHeader     = "X-IBM-JCL-Symbol-"
	intrdrClassHeader   = "X-IBM-Intrdr-Class"
	intrdrRecfmHeader   = "X-IBM-Intrdr-Recfm"
	intrdrLreclHeader   = "X-IBM-Intrdr-Lrecl"
	intrdrModeHeader    = "X-IBM-Intrdr-Mode"
)
