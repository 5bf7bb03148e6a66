// Package github declares the wire payloads exchanged between the workflow
// dispatcher server, its browser client and the GitHub API, together with the
// decoders that validate them.
package github

import "time"

// RepoInfo is a repository listed for the authenticated user.
type RepoInfo struct {
	FullName      string `json:"fullName"`
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	URL           string `json:"url"`
	DefaultBranch string `json:"defaultBranch"`
}

// GetRepoResponse is one page of repositories. NextPage is nil on the last page.
type GetRepoResponse struct {
	Data     []RepoInfo `json:"data"`
	NextPage *float64   `json:"nextPage,omitempty"`
}

// WorkflowInfo identifies an active workflow of a repository.
type WorkflowInfo struct {
	ID   float64 `json:"id"`
	Path string  `json:"path"`
	Name string  `json:"name"`
}

// WorkflowRun is a single run of a workflow. Conclusion is nil while the run
// is in progress.
type WorkflowRun struct {
	ID         float64   `json:"id"`
	Number     float64   `json:"number"`
	Status     string    `json:"status"`
	Conclusion *string   `json:"conclusion"`
	LogsURL    string    `json:"logsUrl"`
	ActorName  string    `json:"actorName"`
	CreatedAt  time.Time `json:"createdAt"`
	StartedAt  time.Time `json:"startedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Workflow input types accepted by workflow_dispatch.
const (
	InputBoolean     = "boolean"
	InputChoice      = "choice"
	InputEnvironment = "environment"
	InputString      = "string"
)

// WorkflowInput describes one workflow_dispatch input. Type is empty for
// inputs declared without a type, which GitHub treats as strings. Default
// holds the raw default: a bool for boolean inputs, a string otherwise.
type WorkflowInput struct {
	Type        string   `json:"type,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
	Default     any      `json:"default"`
}

// WorkflowDispatch is the body of a workflow_dispatch trigger.
type WorkflowDispatch struct {
	Inputs map[string]WorkflowInput `json:"inputs,omitempty"`
}

// Trigger is the normalized form of a workflow's on: key, which may be a
// single event name, a list of names, or a mapping keyed by event name.
// Dispatch is non-nil when the workflow can be started manually.
type Trigger struct {
	Events   []string          `json:"events"`
	Dispatch *WorkflowDispatch `json:"dispatch,omitempty"`
}

// WorkflowConfig is the part of a workflow file the dispatcher reads.
type WorkflowConfig struct {
	Name string   `json:"name,omitempty"`
	On   *Trigger `json:"on,omitempty"`
}

// ContentResponse carries base64 file content. Content is nil when the path
// is not a base64 encoded file.
type ContentResponse struct {
	Content *string `json:"content"`
}

// DispatchRequest is the body posted to start a workflow. Input values are
// strings or booleans.
type DispatchRequest struct {
	Ref    *string        `json:"ref,omitempty"`
	Inputs map[string]any `json:"inputs,omitempty"`
}

// SessionResponse reports whether the browser session holds a GitHub token.
type SessionResponse struct {
	Authorized bool `json:"authorized"`
}
