package github

import (
	"sort"

	"github.com/reoring/decoders"
)

var registry = map[string]decoders.Decoder[any]{
	"repo-info":         decoders.AsAny(DecodeRepoInfo),
	"get-repo-response": decoders.AsAny(DecodeGetRepoResponse),
	"workflow-info":     decoders.AsAny(DecodeWorkflowInfo),
	"workflows":         decoders.AsAny(decoders.Array(DecodeWorkflowInfo)),
	"workflow-run":      decoders.AsAny(DecodeWorkflowRun),
	"workflow-runs":     decoders.AsAny(decoders.Array(DecodeWorkflowRun)),
	"workflow-input":    decoders.AsAny(DecodeWorkflowInput),
	"workflow-config":   decoders.AsAny(DecodeWorkflowConfig),
	"content-response":  decoders.AsAny(DecodeContentResponse),
	"dispatch-request":  decoders.AsAny(DecodeDispatchRequest),
	"session-response":  decoders.AsAny(DecodeSessionResponse),
}

// Lookup returns the decoder registered under name.
func Lookup(name string) (decoders.Decoder[any], bool) {
	d, ok := registry[name]
	return d, ok
}

// Names lists the registered schema names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
