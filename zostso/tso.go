// Package zostso starts, drives and stops TSO address spaces through the
// z/OSMF tsoApp endpoint.
package zostso

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/rest"
)

// TsoResource is the z/OSMF TSO REST resource path.
const TsoResource = "/zosmf/tsoApp/tso"

// Defaults applied to StartParams fields left empty.
const (
	DefaultLogonProcedure = "IZUFPROC"
	DefaultCharacterSet   = "697"
	DefaultCodePage       = "1047"
	DefaultRows           = 24
	DefaultColumns        = 80
	DefaultRegionSize     = 4096
)

// StartParams configures the address space created by Start.
type StartParams struct {
	// Account number for the TSO logon. Required.
	Account string

	// LogonProcedure name. Default IZUFPROC.
	LogonProcedure string

	// CharacterSet for terminal emulation. Default 697.
	CharacterSet string

	// CodePage for terminal emulation. Default 1047.
	CodePage string

	// Rows of the emulated screen. Default 24.
	Rows int

	// Columns of the emulated screen. Default 80.
	Columns int

	// RegionSize in kilobytes. Default 4096.
	RegionSize int
}

func (p *StartParams) applyDefaults() {
	if p.LogonProcedure == "" {
		p.LogonProcedure = DefaultLogonProcedure
	}
	if p.CharacterSet == "" {
		p.CharacterSet = DefaultCharacterSet
	}
	if p.CodePage == "" {
		p.CodePage = DefaultCodePage
	}
	if p.Rows == 0 {
		p.Rows = DefaultRows
	}
	if p.Columns == 0 {
		p.Columns = DefaultColumns
	}
	if p.RegionSize == 0 {
		p.RegionSize = DefaultRegionSize
	}
}

// TsoMessage is one message line written by the address space.
type TsoMessage struct {
	Version string `json:"VERSION"`
	Data    string `json:"DATA"`
}

// TsoPrompt signals the address space is ready for input.
type TsoPrompt struct {
	Version string `json:"VERSION"`
	Hidden  string `json:"HIDDEN"`
}

// TsoData is one entry of the TSODATA stream. Exactly one field is set.
type TsoData struct {
	TsoMessage *TsoMessage `json:"TSO MESSAGE,omitempty"`
	TsoPrompt  *TsoPrompt  `json:"TSO PROMPT,omitempty"`
}

// ZosmfTsoResponse is the raw document returned by the tsoApp endpoint.
type ZosmfTsoResponse struct {
	// ServletKey identifies the address space in follow-up requests
	ServletKey string `json:"servletKey"`

	// Ver is the response document version
	Ver string `json:"ver"`

	// Reused is true when an existing address space was reused
	Reused bool `json:"reused"`

	// Timeout is true when the address space timed out
	Timeout bool `json:"timeout"`

	// QueueID of the message queue backing the session
	QueueID string `json:"queueID"`

	// SessionID of the TSO session
	SessionID string `json:"sessionID"`

	// TsoData holds the message and prompt entries of this exchange
	TsoData []TsoData `json:"tsoData"`
}

// MessageText collects the TSO MESSAGE lines of the response in order.
func (r ZosmfTsoResponse) MessageText() []string {
	var lines []string
	for _, entry := range r.TsoData {
		if entry.TsoMessage != nil {
			lines = append(lines, entry.TsoMessage.Data)
		}
	}
	return lines
}

// Tso drives TSO address spaces.
type Tso struct {
	client *rest.Client
}

// NewTso Constructor for Tso.
func NewTso(client *rest.Client) *Tso {
	return &Tso{client: client}
}

// Start creates a TSO address space and returns its servlet key together
// with the logon messages.
func (t *Tso) Start(ctx context.Context, params StartParams) (ZosmfTsoResponse, error) {
	if params.Account == "" {
		return ZosmfTsoResponse{}, zosmferrors.NewInvalid("account number not specified")
	}
	params.applyDefaults()

	query := url.Values{}
	query.Set("acct", params.Account)
	query.Set("proc", params.LogonProcedure)
	query.Set("chset", params.CharacterSet)
	query.Set("cpage", params.CodePage)
	query.Set("rows", strconv.Itoa(params.Rows))
	query.Set("cols", strconv.Itoa(params.Columns))
	query.Set("rsize", strconv.Itoa(params.RegionSize))
	requestURL := t.client.URL(TsoResource) + "?" + query.Encode()

	var response ZosmfTsoResponse
	if err := t.client.PostJSON(ctx, requestURL, nil, &response); err != nil {
		return ZosmfTsoResponse{}, err
	}
	if response.ServletKey == "" {
		return ZosmfTsoResponse{}, zosmferrors.NewUnknown(errors.New("no servlet key returned for started address space"))
	}
	return response, nil
}

// Send issues a command to a started address space and returns the
// response messages.
func (t *Tso) Send(ctx context.Context, servletKey, command string) (ZosmfTsoResponse, error) {
	if servletKey == "" {
		return ZosmfTsoResponse{}, zosmferrors.NewInvalid("servlet key not specified")
	}
	if command == "" {
		return ZosmfTsoResponse{}, zosmferrors.NewInvalid("command not specified")
	}

	body := map[string]any{
		"TSO RESPONSE": map[string]string{"VERSION": "0100", "DATA": command},
	}
	requestURL := t.client.URL(fmt.Sprintf("%s/%s", TsoResource, rest.EncodeURIComponent(servletKey)))
	var response ZosmfTsoResponse
	if err := t.client.PutJSON(ctx, requestURL, body, &response, nil); err != nil {
		return ZosmfTsoResponse{}, err
	}
	return response, nil
}

// Stop ends a started address space.
func (t *Tso) Stop(ctx context.Context, servletKey string) (ZosmfTsoResponse, error) {
	if servletKey == "" {
		return ZosmfTsoResponse{}, zosmferrors.NewInvalid("servlet key not specified")
	}
	requestURL := t.client.URL(fmt.Sprintf("%s/%s", TsoResource, rest.EncodeURIComponent(servletKey)))
	response, err := t.client.Delete(ctx, requestURL, nil)
	if err != nil {
		return ZosmfTsoResponse{}, err
	}
	var reply ZosmfTsoResponse
	if err := json.Unmarshal([]byte(response.Body), &reply); err != nil {
		return ZosmfTsoResponse{}, zosmferrors.NewUnparsable(err)
	}
	return reply, nil
}
