package decoders

// Decoder validates one untyped value and converts it into O. A Decoder must not
// panic on any input and must not retain or mutate its argument.
type Decoder[O any] func(v any) Result[O]

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

// Undefined stands for an absent value. Object passes it to field decoders when
// the input lacks the key. It is distinct from nil, which stands for JSON null.
var Undefined = UndefinedType{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(UndefinedType)
	return ok
}

// Record is the output of Object: declared field names mapped to decoded values.
type Record map[string]any

// Scalar constrains the Go types usable as literal and enum values.
type Scalar interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Severity expresses how the reading layer treats a finding.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Reject
)

// NumberMode dictates how the reading layer represents JSON numbers.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default).
	NumberFloat64                      // Convert to float64 while reading.
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity
}

// ReadOpt bundles options for building untyped values from a Source.
type ReadOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	// OnWarning receives non-fatal findings (duplicate keys under Warn).
	OnWarning func(*ReadError)
}
