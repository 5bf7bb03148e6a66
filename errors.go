package decoders

import (
	"errors"
	"strconv"

	"github.com/reoring/decoders/i18n"
)

// KindDecoder is the only DecoderError kind.
const KindDecoder = "decoder"

// Message keys resolved through i18n.T when a built-in decoder fails.
const (
	MsgNotString    = "not_string"
	MsgNotNumber    = "not_number"
	MsgNotObject    = "not_object"
	MsgNotArray     = "not_array"
	MsgNotEnum      = "not_enum"
	MsgNotLiteral   = "not_literal"
	MsgNotOneOf     = "not_one_of"
	MsgNotNull      = "not_null"
	MsgCannotBind   = "cannot_bind"
	MsgInvalidInput = "invalid_input"
)

// DecoderError is the failure variant of a Result. It carries a flat,
// human-readable message and no location information.
type DecoderError struct {
	Kind    string
	Message string
}

func (e *DecoderError) Error() string { return e.Message }

func newDecoderError(message string) *DecoderError {
	return &DecoderError{Kind: KindDecoder, Message: message}
}

// AsDecoderError extracts a *DecoderError from err using errors.As.
func AsDecoderError(err error) (*DecoderError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecoderError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Read error codes.
const (
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeMaxDepth     = "max_depth"
	CodeTruncated    = "truncated"
)

// ReadError reports a failure to build an untyped value from a Source, before
// any decoder runs (malformed input, duplicate keys, depth or size limits).
type ReadError struct {
	Code    string
	Path    string // JSON Pointer of the offending token ("/" for the root).
	Message string
	Offset  int64 // Byte offset in the input (-1 when unknown).
	Cause   error
}

func (e *ReadError) Error() string {
	msg := e.Code
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Offset >= 0 {
		msg += " (offset " + strconv.FormatInt(e.Offset, 10) + ")"
	}
	return msg
}

func (e *ReadError) Unwrap() error { return e.Cause }

// AsReadError extracts a *ReadError from err using errors.As.
func AsReadError(err error) (*ReadError, bool) {
	if err == nil {
		return nil, false
	}
	var re *ReadError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

func message(key string, data map[string]string) string { return i18n.T(key, data) }
