// Package zosconsole issues MVS console commands through the z/OSMF
// restconsoles endpoint.
package zosconsole

import (
	"context"
	"fmt"

	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/rest"
)

// ConsolesResource is the z/OSMF consoles REST resource path.
const ConsolesResource = "/zosmf/restconsoles/consoles"

// DefaultConsoleName is the console used when none is given.
const DefaultConsoleName = "defcn"

// IssueParams configures one console command request.
type IssueParams struct {
	// Command text to issue
	Command string

	// ConsoleName to issue the command from. Default "defcn".
	ConsoleName string

	// SolicitedKeyword to detect in the command response
	SolicitedKeyword string

	// SysplexSystem routes the command to another system in the sysplex
	SysplexSystem string
}

// ZosmfIssueResponse is the raw document returned by the consoles endpoint.
type ZosmfIssueResponse struct {
	// CmdResponseKey for retrieving detailed responses
	CmdResponseKey string `json:"cmd-response-key"`

	// CmdResponseURL for retrieving detailed responses
	CmdResponseURL string `json:"cmd-response-url"`

	// CmdResponseURI for retrieving detailed responses
	CmdResponseURI string `json:"cmd-response-uri"`

	// CmdResponse is the immediate command response text
	CmdResponse string `json:"cmd-response"`

	// SolKeyDetected is true when the solicited keyword was seen
	SolKeyDetected bool `json:"sol-key-detected"`
}

// ConsoleResponse is the processed outcome of one issued command.
type ConsoleResponse struct {
	// Success is true when the request was accepted by z/OSMF
	Success bool

	// ZosmfResponse is the raw document the decision was made on
	ZosmfResponse ZosmfIssueResponse

	// CommandResponse is the collected command response text
	CommandResponse string

	// KeywordDetected is true when a solicited keyword was requested and
	// seen in the response
	KeywordDetected bool
}

// IssueConsole issues commands to an MVS console.
type IssueConsole struct {
	client *rest.Client
}

// NewIssueConsole Constructor for IssueConsole.
func NewIssueConsole(client *rest.Client) *IssueConsole {
	return &IssueConsole{client: client}
}

// IssueCommand issues a command from the default console.
func (c *IssueConsole) IssueCommand(ctx context.Context, command string) (ConsoleResponse, error) {
	return c.IssueCommandCommon(ctx, IssueParams{Command: command})
}

// IssueCommandCommon issues a command with full control over the request
// parameters.
func (c *IssueConsole) IssueCommandCommon(ctx context.Context, params IssueParams) (ConsoleResponse, error) {
	if params.Command == "" {
		return ConsoleResponse{}, zosmferrors.NewInvalid("command not specified")
	}
	consoleName := params.ConsoleName
	if consoleName == "" {
		consoleName = DefaultConsoleName
	}

	body := map[string]string{"cmd": params.Command}
	if params.SolicitedKeyword != "" {
		body["sol-key"] = params.SolicitedKeyword
	}
	if params.SysplexSystem != "" {
		body["system"] = params.SysplexSystem
	}

	requestURL := c.client.URL(fmt.Sprintf("%s/%s", ConsolesResource, rest.EncodeURIComponent(consoleName)))
	var reply ZosmfIssueResponse
	if err := c.client.PutJSON(ctx, requestURL, body, &reply, nil); err != nil {
		return ConsoleResponse{}, err
	}

	return ConsoleResponse{
		Success:         true,
		ZosmfResponse:   reply,
		CommandResponse: reply.CmdResponse,
		KeywordDetected: params.SolicitedKeyword != "" && reply.SolKeyDetected,
	}, nil
}
