package github

import (
	"sort"

	"github.com/reoring/decoders"
	"github.com/reoring/decoders/formats"
)

// RepoInfoShape is the record decoder behind DecodeRepoInfo.
var RepoInfoShape = decoders.Object(
	decoders.Field("fullName", decoders.String),
	decoders.Field("owner", decoders.String),
	decoders.Field("name", decoders.String),
	decoders.Field("description", decoders.String),
	decoders.Field("url", decoders.String),
	decoders.Field("defaultBranch", decoders.String),
)

var (
	DecodeRepoInfo = decoders.Bind[RepoInfo](RepoInfoShape)

	DecodeGetRepoResponse = decoders.Bind[GetRepoResponse](decoders.Object(
		decoders.Field("data", decoders.Array(DecodeRepoInfo)),
		decoders.Field("nextPage", decoders.Optional(decoders.Number)),
	))

	DecodeWorkflowInfo = decoders.Bind[WorkflowInfo](decoders.Object(
		decoders.Field("id", decoders.Number),
		decoders.Field("path", decoders.String),
		decoders.Field("name", decoders.String),
	))

	DecodeWorkflowRun = decoders.Bind[WorkflowRun](decoders.Object(
		decoders.Field("id", decoders.Number),
		decoders.Field("number", decoders.Number),
		decoders.Field("status", decoders.String),
		decoders.Field("conclusion", decoders.Nullable(decoders.String)),
		decoders.Field("logsUrl", decoders.String),
		decoders.Field("actorName", decoders.String),
		decoders.Field("createdAt", formats.RFC3339),
		decoders.Field("startedAt", formats.RFC3339),
		decoders.Field("updatedAt", formats.RFC3339),
	))

	DecodeContentResponse = decoders.Bind[ContentResponse](decoders.Object(
		decoders.Field("content", decoders.Nullable(decoders.String)),
	))

	DecodeDispatchRequest = decoders.Bind[DispatchRequest](decoders.Object(
		decoders.Field("ref", decoders.Optional(decoders.String)),
		// Boolean accepts any value, so it must come after String.
		decoders.Field("inputs", decoders.Optional(decoders.Dict(decoders.Union(
			decoders.AsAny(decoders.String),
			decoders.AsAny(decoders.Boolean),
		)))),
	))

	DecodeSessionResponse = decoders.Bind[SessionResponse](decoders.Object(
		decoders.Field("authorized", decoders.Boolean),
	))
)

var inputBase = decoders.Object(
	decoders.Field("required", decoders.Optional(decoders.Boolean)),
	decoders.Field("description", decoders.Optional(decoders.String)),
)

// DecodeWorkflowInput accepts the four workflow_dispatch input forms. The
// untyped string form matches any mapping of the base keys, so it is tried last.
var DecodeWorkflowInput = decoders.Bind[WorkflowInput](decoders.Union(
	decoders.Intersection(inputBase, decoders.Object(
		decoders.Field("type", decoders.Literal(InputBoolean)),
		decoders.Field("default", decoders.Optional(decoders.Boolean)),
	)),
	decoders.Intersection(inputBase, decoders.Object(
		decoders.Field("type", decoders.Literal(InputChoice)),
		decoders.Field("options", decoders.Array(decoders.String)),
		decoders.Field("default", decoders.Optional(decoders.String)),
	)),
	decoders.Intersection(inputBase, decoders.Object(
		decoders.Field("type", decoders.Literal(InputEnvironment)),
		decoders.Field("default", decoders.Optional(decoders.String)),
	)),
	decoders.Intersection(inputBase, decoders.Object(
		decoders.Field("type", decoders.Optional(decoders.Literal(InputString))),
		decoders.Field("default", decoders.Optional(decoders.String)),
	)),
))

var decodeDispatch = decoders.Nullable(decoders.Bind[WorkflowDispatch](decoders.Object(
	decoders.Field("inputs", decoders.Optional(decoders.Dict(DecodeWorkflowInput))),
)))

// DecodeTrigger normalizes the three shapes of a workflow's on: key.
var DecodeTrigger = decoders.Union(
	decoders.Then(decoders.String, func(event string) decoders.Result[Trigger] {
		return decoders.Ok(newTrigger([]string{event}))
	}),
	decoders.Then(decoders.Array(decoders.String), func(events []string) decoders.Result[Trigger] {
		return decoders.Ok(newTrigger(events))
	}),
	decoders.Then(decoders.Dict(decoders.Unknown), func(m map[string]any) decoders.Result[Trigger] {
		events := make([]string, 0, len(m))
		for k := range m {
			events = append(events, k)
		}
		sort.Strings(events)
		t := Trigger{Events: events}
		raw, ok := m["workflow_dispatch"]
		if !ok {
			return decoders.Ok(t)
		}
		return decoders.Map(decodeDispatch(raw), func(d *WorkflowDispatch) Trigger {
			// A bare "workflow_dispatch:" key still enables manual runs.
			if d == nil {
				d = &WorkflowDispatch{}
			}
			t.Dispatch = d
			return t
		})
	}),
)

// DecodeWorkflowConfig decodes a parsed workflow file.
var DecodeWorkflowConfig = decoders.Then(decoders.Object(
	decoders.Field("name", decoders.Optional(decoders.String)),
	decoders.Field("on", decoders.Optional(DecodeTrigger)),
), func(r decoders.Record) decoders.Result[WorkflowConfig] {
	var cfg WorkflowConfig
	if name := r["name"].(*string); name != nil {
		cfg.Name = *name
	}
	cfg.On = r["on"].(*Trigger)
	return decoders.Ok(cfg)
})

func newTrigger(events []string) Trigger {
	t := Trigger{Events: events}
	for _, e := range events {
		if e == "workflow_dispatch" {
			t.Dispatch = &WorkflowDispatch{}
			break
		}
	}
	return t
}

// DispatchInputs returns the inputs a workflow declares for manual dispatch
// and whether the workflow can be dispatched at all.
func DispatchInputs(cfg WorkflowConfig) (map[string]WorkflowInput, bool) {
	if cfg.On == nil || cfg.On.Dispatch == nil {
		return nil, false
	}
	return cfg.On.Dispatch.Inputs, true
}
