package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	method, path, query string
	body                []byte
}

// newAPI поднимает сервер, отвечающий status и body на любой запрос.
func newAPI(t *testing.T, status int, body string) (*httptest.Server, *request) {
	t.Helper()
	got := &request{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func runCmd(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

// --- params ---

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"server=web1", "query=a=b", "empty=", "server=web2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"server": "web2", "query": "a=b", "empty": ""}, params)

	for _, bad := range []string{"novalue", "=value"} {
		_, err := parseParams([]string{bad})
		assert.Error(t, err, bad)
	}
}

// --- client ---

func TestClient_Notify(t *testing.T) {
	srv, got := newAPI(t, http.StatusOK, `{"status":"ok","link":"server-alert","channels_notified":["slack","email"]}`)

	resp, err := NewClient(srv.URL+"/").Notify(context.Background(), "server-alert", map[string]string{"server": "web1"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/notify/server-alert", got.path)
	assert.Equal(t, "server=web1", got.query)
	assert.Equal(t, []string{"slack", "email"}, resp.ChannelsNotified)
}

func TestClient_NotifyError(t *testing.T) {
	srv, _ := newAPI(t, http.StatusBadRequest,
		`{"status":"error","message":"Invalid parameters: Missing required parameter \"status\".","errors":["Missing required parameter \"status\"."]}`)

	_, err := NewClient(srv.URL).Notify(context.Background(), "server-alert", nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, `Invalid parameters: Missing required parameter "status".`, apiErr.Error())
	assert.Equal(t, []string{`Missing required parameter "status".`}, apiErr.Errors)
}

func TestClient_RunWorkflow(t *testing.T) {
	srv, got := newAPI(t, http.StatusMultiStatus, `{
		"workflow_name": "default",
		"success": false,
		"resolved_parameters": {"server": "web1"},
		"step_results": [
			{"step_name": "alert", "link_name": "server-alert", "success": true, "notified_transports": ["slack"]},
			{"step_name": "log", "link_name": "test-slack", "success": false, "notified_transports": [], "error": "Boom"}
		]
	}`)

	result, err := NewClient(srv.URL).RunWorkflow(context.Background(), "default", map[string]string{"server": "web1"})
	require.NoError(t, err)

	assert.Equal(t, "/workflow/default", got.path)
	var sent map[string]string
	require.NoError(t, json.Unmarshal(got.body, &sent))
	assert.Equal(t, map[string]string{"server": "web1"}, sent)

	assert.False(t, result.Success)
	require.Len(t, result.StepResults, 2)
	assert.Equal(t, "Boom", result.StepResults[1].Error)
}

func TestClient_RunWorkflowNotFound(t *testing.T) {
	srv, _ := newAPI(t, http.StatusNotFound, `{"status":"error","message":"Workflow \"nope\" not found."}`)

	_, err := NewClient(srv.URL).RunWorkflow(context.Background(), "nope", nil)
	require.EqualError(t, err, `Workflow "nope" not found.`)
}

func TestClient_RunWorkflowRejectedBody(t *testing.T) {
	srv, _ := newAPI(t, http.StatusBadRequest, `{"status":"error","message":"invalid request body: expected a JSON object"}`)

	_, err := NewClient(srv.URL).RunWorkflow(context.Background(), "x", nil)
	require.EqualError(t, err, "invalid request body: expected a JSON object")
}

func TestClient_ListLinks(t *testing.T) {
	srv, got := newAPI(t, http.StatusOK, `{"data":[{"name":"server-alert","parameters":[{"name":"server","required":true,"type":"string"}],"transports":["slack"]}],"total":1}`)

	links, err := NewClient(srv.URL).ListLinks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/links", got.path)
	require.Len(t, links, 1)
	assert.Equal(t, "server-alert", links[0].Name)
	assert.Equal(t, []string{"slack"}, links[0].Transports)
}

// --- commands ---

func TestNotifyCmd(t *testing.T) {
	srv, got := newAPI(t, http.StatusOK, `{"status":"ok","link":"server-alert","channels_notified":["slack"]}`)

	var stdout, stderr bytes.Buffer
	cmd := NewNotifyCmd(
		func() *Client { return NewClient(srv.URL) },
		func() *Output { return NewOutputTo(true, &stdout, &stderr) },
	)

	require.NoError(t, runCmd(t, cmd, "server-alert", "--param", "server=web1", "-p", "status=down"))
	assert.Equal(t, "server=web1&status=down", got.query)

	var resp NotifyResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, []string{"slack"}, resp.ChannelsNotified)
	assert.Contains(t, stderr.String(), "sent via 1 channel(s)")
}

func TestNotifyCmd_PrintsValidationErrors(t *testing.T) {
	srv, _ := newAPI(t, http.StatusBadRequest,
		`{"status":"error","message":"Invalid parameters: a, b","errors":["a","b"]}`)

	var stdout, stderr bytes.Buffer
	cmd := NewNotifyCmd(
		func() *Client { return NewClient(srv.URL) },
		func() *Output { return NewOutputTo(false, &stdout, &stderr) },
	)

	err := runCmd(t, cmd, "server-alert")
	require.Error(t, err)
	assert.Equal(t, "Error: a\nError: b\n", stderr.String())
}

func TestWorkflowRunCmd_FailedStepsReturnError(t *testing.T) {
	srv, _ := newAPI(t, http.StatusMultiStatus, `{
		"workflow_name": "default",
		"success": false,
		"resolved_parameters": {},
		"step_results": [
			{"step_name": "alert", "link_name": "server-alert", "success": false, "notified_transports": [], "error": "Boom"}
		]
	}`)

	var stdout, stderr bytes.Buffer
	cmd := NewWorkflowCmd(
		func() *Client { return NewClient(srv.URL) },
		func() *Output { return NewOutputTo(false, &stdout, &stderr) },
	)

	err := runCmd(t, cmd, "run", "default")
	require.EqualError(t, err, "workflow default: 1 of 1 steps failed")
	assert.Contains(t, stdout.String(), "server-alert")
	assert.Contains(t, stdout.String(), "Boom")
}

func TestWorkflowRunCmd_InvalidParameters(t *testing.T) {
	srv, _ := newAPI(t, http.StatusBadRequest, `{
		"workflow_name": "default",
		"success": false,
		"resolved_parameters": {},
		"step_results": [],
		"error": "Invalid parameters: Missing required parameter \"server\"."
	}`)

	var stdout, stderr bytes.Buffer
	cmd := NewWorkflowCmd(
		func() *Client { return NewClient(srv.URL) },
		func() *Output { return NewOutputTo(false, &stdout, &stderr) },
	)

	err := runCmd(t, cmd, "run", "default")
	require.EqualError(t, err, `workflow default: Invalid parameters: Missing required parameter "server".`)
	assert.Empty(t, stdout.String())
}

func TestWorkflowListCmd_Table(t *testing.T) {
	srv, _ := newAPI(t, http.StatusOK, `{"data":[{"name":"default","description":"Default workflow","parameters":[{"name":"server","required":true},{"name":"message","required":false}],"steps":[{"name":"alert","link":"server-alert"}]}],"total":1}`)

	var stdout, stderr bytes.Buffer
	cmd := NewWorkflowCmd(
		func() *Client { return NewClient(srv.URL) },
		func() *Output { return NewOutputTo(false, &stdout, &stderr) },
	)

	require.NoError(t, runCmd(t, cmd, "list"))
	out := stdout.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Default workflow")
	assert.Contains(t, out, "server, message?")
	assert.Contains(t, out, "alert→server-alert")
}
