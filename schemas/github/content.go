package github

import (
	"github.com/reoring/decoders"
	"github.com/reoring/decoders/formats"
)

// WorkflowFromContent decodes the workflow file carried by a contents API
// response: base64 text holding YAML. A response without content yields an
// empty config. The error is non-nil only when the YAML cannot be read.
func WorkflowFromContent(resp ContentResponse, opts ...decoders.ReadOpt) (decoders.Result[WorkflowConfig], error) {
	if resp.Content == nil {
		return decoders.Ok(WorkflowConfig{}), nil
	}
	raw, err := formats.Base64(*resp.Content).Get()
	if err != nil {
		de, _ := decoders.AsDecoderError(err)
		return decoders.Fail[WorkflowConfig](de), nil
	}
	return decoders.DecodeFrom(DecodeWorkflowConfig, decoders.YAMLBytes(raw), opts...)
}
