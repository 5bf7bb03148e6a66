package benchmarks_test

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	"github.com/reoring/decoders"
	"github.com/reoring/decoders/schemas/github"
)

var smallUser = decoders.Object(
	decoders.Field("id", decoders.String),
	decoders.Field("name", decoders.String),
	decoders.Field("age", decoders.Number),
	decoders.Field("active", decoders.Boolean),
	decoders.Field("tags", decoders.Optional(decoders.Array(decoders.String))),
)

func smallUserJSON() []byte {
	return []byte(`{"id":"u_1","name":"alice","age":30,"active":true,"tags":["a","b"],"extra":{"x":1}}`)
}

// hugeArrayJSON builds an array of n objects, each carrying extraFields keys
// no decoder declares.
func hugeArrayJSON(n, extraFields int) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"id":"obj_%d","name":"n%d","age":%d,"active":%t`, i, i, i, i%2 == 0)
		for k := 0; k < extraFields; k++ {
			buf.WriteString(`,"k` + strconv.Itoa(k) + `":"v` + strconv.Itoa(i) + `"`)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func Benchmark_DecodeFrom_Object_Small_JSONBytes(b *testing.B) {
	data := smallUserJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := decoders.DecodeFrom(smallUser, decoders.JSONBytes(data))
		if err != nil || !r.IsOk() {
			b.Fatal(err, r)
		}
	}
}

func Benchmark_DecodeFrom_Object_Small_JSONReader(b *testing.B) {
	data := smallUserJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := decoders.DecodeFrom(smallUser, decoders.JSONReader(bytes.NewReader(data)))
		if err != nil || !r.IsOk() {
			b.Fatal(err, r)
		}
	}
}

func Benchmark_DecodeFrom_Object_Small_Enforced(b *testing.B) {
	data := smallUserJSON()
	opt := decoders.ReadOpt{Strictness: decoders.Strictness{OnDuplicateKey: decoders.Reject}, MaxDepth: 32}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := decoders.DecodeFrom(smallUser, decoders.JSONBytes(data), opt)
		if err != nil || !r.IsOk() {
			b.Fatal(err, r)
		}
	}
}

func Benchmark_DecodeFrom_HugeArray_JSONBytes(b *testing.B) {
	data := hugeArrayJSON(10000, 8)
	d := decoders.Array(decoders.Object(decoders.Field("id", decoders.String)))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := decoders.DecodeFrom(d, decoders.JSONBytes(data))
		if err != nil || !r.IsOk() {
			b.Fatal(err, r)
		}
	}
}

func Benchmark_NumberMode_JSONNumber(b *testing.B) {
	data := []byte(`{"a":1,"b":2.5,"c":-3.75}`)
	d := decoders.Dict(decoders.Number)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decoders.DecodeFrom(d, decoders.JSONBytes(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_NumberMode_Float64(b *testing.B) {
	data := []byte(`{"a":1,"b":2.5,"c":-3.75}`)
	d := decoders.Dict(decoders.Number)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := decoders.WithNumberMode(decoders.JSONBytes(data), decoders.NumberFloat64)
		if _, err := decoders.DecodeFrom(d, src); err != nil {
			b.Fatal(err)
		}
	}
}

const workflowYAML = `name: release
on:
  workflow_dispatch:
    inputs:
      version:
        description: version to release
        required: true
      channel:
        type: choice
        options: [stable, beta]
      dry_run:
        type: boolean
        default: true
`

func Benchmark_WorkflowConfig_YAML(b *testing.B) {
	data := []byte(workflowYAML)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := decoders.DecodeFrom(github.DecodeWorkflowConfig, decoders.YAMLBytes(data))
		if err != nil || !r.IsOk() {
			b.Fatal(err, r)
		}
	}
}
