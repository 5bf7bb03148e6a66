package decoders

import (
	"errors"
	"io"

	eng "github.com/reoring/decoders/internal/engine"
)

// ReadValue builds an untyped value from src: objects become map[string]any,
// arrays []any, strings string, booleans bool, null nil, and numbers
// json.Number or float64 depending on src.NumberMode(). Only the last opts
// value is used. Failures are returned as *ReadError.
func ReadValue(src Source, opts ...ReadOpt) (any, error) {
	if src == nil {
		return nil, &ReadError{Code: CodeParseError, Path: "/", Message: "nil source", Offset: -1}
	}
	var opt ReadOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	var warn func(eng.Finding)
	if opt.OnWarning != nil {
		warn = func(f eng.Finding) { opt.OnWarning(fromFinding(f)) }
	}
	enforced := eng.WrapWithEnforcement(engineTokenSource(src), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		Warn:        warn,
	})
	conv := eng.JSONNumber
	if src.NumberMode() == NumberFloat64 {
		conv = eng.Float64
	}
	v, err := eng.DecodeAny(enforced, conv)
	if err != nil {
		return nil, toReadError(err, src.Location())
	}
	return v, nil
}

// DecodeFrom reads one untyped value from src and decodes it with d. The error
// is non-nil only when reading fails; validation failures are reported through
// the Result. When reading fails the Result is the generic invalid-input
// failure, never a success.
func DecodeFrom[T any](d Decoder[T], src Source, opts ...ReadOpt) (Result[T], error) {
	v, err := ReadValue(src, opts...)
	if err != nil {
		return Fail[T](nil), err
	}
	return d(v), nil
}

// DecodeBytes is DecodeFrom over JSON bytes.
func DecodeBytes[T any](d Decoder[T], data []byte, opts ...ReadOpt) (Result[T], error) {
	return DecodeFrom(d, JSONBytes(data), opts...)
}

// StreamDecode decodes JSON read from r. When MaxBytes is set the size cap is
// enforced before any token is read; otherwise r is tokenized as it streams.
func StreamDecode[T any](d Decoder[T], r io.Reader, opts ...ReadOpt) (Result[T], error) {
	if len(opts) > 0 && opts[len(opts)-1].MaxBytes > 0 {
		limit := opts[len(opts)-1].MaxBytes
		data, err := io.ReadAll(io.LimitReader(r, limit+1))
		if err != nil {
			return Fail[T](nil), &ReadError{Code: CodeParseError, Path: "/", Message: err.Error(), Offset: -1, Cause: err}
		}
		if int64(len(data)) > limit {
			return Fail[T](nil), &ReadError{Code: CodeTruncated, Path: "/", Message: "max bytes exceeded", Offset: limit}
		}
		return DecodeBytes(d, data, opts...)
	}
	return DecodeFrom(d, JSONReader(r), opts...)
}

func toEngineDup(s Severity) eng.DuplicatePolicy {
	switch s {
	case Reject:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromFinding(f eng.Finding) *ReadError {
	return &ReadError{Code: f.Code, Path: f.Path, Message: f.Message, Offset: f.Offset}
}

func toReadError(err error, offset int64) *ReadError {
	var fe eng.FindingError
	if errors.As(err, &fe) {
		re := fromFinding(fe.Finding)
		re.Cause = err
		return re
	}
	msg := err.Error()
	if errors.Is(err, io.ErrUnexpectedEOF) {
		msg = "unexpected end of input"
	}
	return &ReadError{Code: CodeParseError, Path: "/", Message: msg, Offset: offset, Cause: err}
}
