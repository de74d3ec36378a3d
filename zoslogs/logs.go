// Package zoslogs retrieves operations and system log data through the
// z/OSMF restconsoles endpoint.
package zoslogs

import (
	"context"
	"net/url"
	"time"

	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/rest"
)

// LogsResource is the z/OSMF log REST resource path.
const LogsResource = "/zosmf/restconsoles/v1/log"

// DefaultTimeRange is applied when GetParams.TimeRange is empty.
const DefaultTimeRange = "10m"

// GetParams configures one log retrieval.
type GetParams struct {
	// StartTime the range is anchored on. Defaults to now.
	StartTime time.Time

	// TimeRange covered from the start time, e.g. "10m", "2h", "1d".
	// Default "10m".
	TimeRange string

	// Direction data is gathered in. Default backward.
	Direction DirectionType

	// HardCopy source to read. Default operlog.
	HardCopy HardCopyType

	// ProcessResponses removes line feed and carriage return characters
	// from the returned messages
	ProcessResponses bool
}

// LogItem is one log message returned by z/OSMF.
type LogItem struct {
	// Cart is the command and response token of the message
	Cart string `json:"cart"`

	// Color the message is displayed in on the console
	Color string `json:"color"`

	// JobName of the issuer
	JobName string `json:"jobName"`

	// Message content
	Message string `json:"message"`

	// MessageID of the message
	MessageID string `json:"messageId"`

	// ReplyID when the message is a reply request
	ReplyID string `json:"replyId"`

	// System the message was issued on
	System string `json:"system"`

	// Type of the entry
	Type string `json:"type"`

	// SubType of the entry
	SubType string `json:"subType"`

	// Time the message was issued, in readable form
	Time string `json:"time"`

	// Timestamp of the message in milliseconds since the epoch
	Timestamp int64 `json:"timestamp"`
}

// LogReply is the document returned for one log retrieval.
type LogReply struct {
	// TimeZone offset of the system, in hours
	TimeZone int64 `json:"timezone"`

	// NextTimestamp to use as start time for a follow-up retrieval
	NextTimestamp int64 `json:"nextTimestamp"`

	// Source the data came from
	Source string `json:"source"`

	// TotalItems returned
	TotalItems int64 `json:"totalitems"`

	// Items holds the log messages
	Items []LogItem `json:"items"`
}

// ZosLog retrieves log data.
type ZosLog struct {
	client *rest.Client
}

// NewZosLog Constructor for ZosLog.
func NewZosLog(client *rest.Client) *ZosLog {
	return &ZosLog{client: client}
}

// Get retrieves log data for the window described by params.
func (z *ZosLog) Get(ctx context.Context, params GetParams) (LogReply, error) {
	if params.Direction >= numDirections || params.Direction < 0 {
		return LogReply{}, zosmferrors.NewInvalid("unsupported direction " + params.Direction.String())
	}
	if params.HardCopy >= numHardCopies || params.HardCopy < 0 {
		return LogReply{}, zosmferrors.NewInvalid("unsupported hardcopy " + params.HardCopy.String())
	}
	startTime := params.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}
	timeRange := params.TimeRange
	if timeRange == "" {
		timeRange = DefaultTimeRange
	}

	query := url.Values{}
	query.Set("time", startTime.UTC().Format(time.RFC3339))
	query.Set("timeRange", timeRange)
	query.Set("direction", params.Direction.String())
	query.Set("hardCopy", params.HardCopy.String())
	requestURL := z.client.URL(LogsResource) + "?" + query.Encode()

	var reply LogReply
	if err := z.client.GetJSON(ctx, requestURL, &reply); err != nil {
		return LogReply{}, err
	}
	if params.ProcessResponses {
		for i := range reply.Items {
			reply.Items[i].Message = stripLineBreaks(reply.Items[i].Message)
		}
	}
	return reply, nil
}

func stripLineBreaks(message string) string {
	out := make([]rune, 0, len(message))
	for _, r := range message {
		if r == '\n' || r == '\r' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
