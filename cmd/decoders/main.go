// Command decoders validates JSON and YAML documents against the registered
// GitHub payload schemas.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reoring/decoders"
	"github.com/reoring/decoders/i18n"
	"github.com/reoring/decoders/schemas/github"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "check":
		return checkCmd(args[1:], stdin, stdout, stderr)
	case "list":
		for _, n := range github.Names() {
			fmt.Fprintln(stdout, n)
		}
		return exitOK
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "decoders CLI\n\nUsage:\n  decoders check -schema NAME [-f FILE] [-format json|yaml] [-path GJSON_PATH] [-max-depth N] [-max-bytes N] [-dup ignore|warn|error] [-lang en|ja] [-v]\n  decoders list\n\nExit codes: 0 valid, 1 invalid, 2 usage or read error.")
}

type checkFlags struct {
	schema   string
	file     string
	format   string
	path     string
	maxDepth int
	maxBytes int64
	dup      string
	lang     string
	verbose  bool
}

func checkCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cf checkFlags
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cf.schema, "schema", "", "registered schema name (see: decoders list)")
	fs.StringVar(&cf.file, "f", "", "input file (default: stdin)")
	fs.StringVar(&cf.format, "format", "", "input format: json or yaml (default: from file extension, else json)")
	fs.StringVar(&cf.path, "path", "", "gjson path selecting the sub-document to check (json only)")
	fs.IntVar(&cf.maxDepth, "max-depth", 0, "maximum nesting depth (0: unlimited)")
	fs.Int64Var(&cf.maxBytes, "max-bytes", 0, "maximum input size in bytes (0: unlimited)")
	fs.StringVar(&cf.dup, "dup", "error", "duplicate key handling: ignore, warn or error")
	fs.StringVar(&cf.lang, "lang", os.Getenv("DECODERS_LANG"), "message language: en or ja")
	fs.BoolVar(&cf.verbose, "v", false, "verbose logging to stderr")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	log := newLogger(cf.verbose, stderr)
	defer func() { _ = log.Sync() }()

	if cf.lang != "" {
		i18n.SetLanguage(cf.lang)
	}
	d, ok := github.Lookup(cf.schema)
	if !ok {
		fmt.Fprintf(stderr, "unknown schema %q (known: %s)\n", cf.schema, strings.Join(github.Names(), ", "))
		return exitUsage
	}
	dup, err := parseSeverity(cf.dup)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	format := cf.format
	if format == "" {
		format = formatFromName(cf.file)
	}
	if format != "json" && format != "yaml" {
		fmt.Fprintf(stderr, "unsupported format %q\n", format)
		return exitUsage
	}
	if cf.path != "" && format != "json" {
		fmt.Fprintln(stderr, "-path is supported for json input only")
		return exitUsage
	}

	data, err := readInput(cf.file, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log.Debug("input read", zap.String("schema", cf.schema), zap.String("format", format), zap.Int("bytes", len(data)))

	if cf.path != "" {
		res := gjson.GetBytes(data, cf.path)
		if !res.Exists() {
			fmt.Fprintf(stderr, "path %q not found\n", cf.path)
			return exitUsage
		}
		data = []byte(res.Raw)
		log.Debug("sub-document selected", zap.String("path", cf.path), zap.Int("bytes", len(data)))
	}

	opt := decoders.ReadOpt{
		Strictness: decoders.Strictness{OnDuplicateKey: dup},
		MaxDepth:   cf.maxDepth,
		MaxBytes:   cf.maxBytes,
		OnWarning: func(re *decoders.ReadError) {
			log.Warn("read warning", zap.String("code", re.Code), zap.String("path", re.Path))
			fmt.Fprintf(stderr, "warning: %v\n", re)
		},
	}
	src := decoders.JSONBytes(data)
	if format == "yaml" {
		src = decoders.YAMLBytes(data)
	}
	r, err := decoders.DecodeFrom(d, src, opt)
	if err != nil {
		log.Debug("read failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	v, err := r.Get()
	if err != nil {
		log.Debug("decode failed", zap.String("schema", cf.schema), zap.Error(err))
		fmt.Fprintf(stderr, "invalid: %v\n", err)
		return exitInvalid
	}
	out, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	fmt.Fprintln(stdout, string(out))
	return exitOK
}

// newLogger returns a no-op logger unless verbose is set, in which case
// development-style logs go to w.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func parseSeverity(s string) (decoders.Severity, error) {
	switch strings.ToLower(s) {
	case "ignore":
		return decoders.Ignore, nil
	case "warn":
		return decoders.Warn, nil
	case "error", "reject":
		return decoders.Reject, nil
	}
	return 0, fmt.Errorf("invalid -dup value %q", s)
}

func formatFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return "yaml"
	}
	return "json"
}

func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return bytes.TrimPrefix(b, []byte("\xef\xbb\xbf")), nil
}
