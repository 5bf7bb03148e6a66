// Package yaml tokenizes YAML documents with gopkg.in/yaml.v3 so they can be
// decoded like JSON.
//
// Mappings become objects, sequences arrays. Scalars follow their resolved
// tag: !!int and !!float become numbers (.nan and .inf included), !!bool
// booleans, !!null null, anything else (strings, timestamps, binary) strings.
// Aliases are followed and "<<" merge keys are expanded, with keys written in
// the mapping itself taking precedence over merged ones.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/decoders/internal/engine"
)

const (
	maxAliasDepth = 1000
	// minNodeBudget is the smallest number of nodes a document may expand to.
	minNodeBudget = 400000
	// nodesPerByte scales the budget with the input for large alias-free documents.
	nodesPerByte = 4
)

var errExcessiveAliasing = errors.New("yaml: document contains excessive aliasing")

type source struct {
	toks   []eng.Token
	i      int
	err    error
	size   int64
	nodes  int64
	budget int64
}

// NewBytes wraps the first YAML document in b into an engine.TokenSource.
// An empty input yields a single null value. Parse errors are returned from
// the first NextToken call.
func NewBytes(b []byte) eng.TokenSource {
	s := &source{size: int64(len(b)), budget: max(minNodeBudget, nodesPerByte*int64(len(b)))}
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(b)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			s.toks = []eng.Token{{Kind: eng.KindNull, Offset: -1}}
			return s
		}
		s.err = err
		return s
	}
	s.err = s.walk(&doc, 0)
	return s
}

// NewReader reads r fully and wraps its first YAML document.
func NewReader(r io.Reader) eng.TokenSource {
	b, err := io.ReadAll(r)
	if err != nil {
		return &source{err: err}
	}
	return NewBytes(b)
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.i >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}

// Location reports the size of the whole document, which is read up front.
func (s *source) Location() int64 { return s.size }

func (s *source) emit(t eng.Token) {
	t.Offset = -1
	s.toks = append(s.toks, t)
}

// charge accounts for n expanded nodes. Aliases let a small document expand
// to an exponential number of nodes, so the expansion is capped.
func (s *source) charge(n int) error {
	s.nodes += int64(n)
	if s.nodes > s.budget {
		return errExcessiveAliasing
	}
	return nil
}

func (s *source) walk(n *yaml.Node, aliases int) error {
	if err := s.charge(1); err != nil {
		return err
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			s.emit(eng.Token{Kind: eng.KindNull})
			return nil
		}
		return s.walk(n.Content[0], aliases)
	case yaml.AliasNode:
		if aliases >= maxAliasDepth || n.Alias == nil {
			return fmt.Errorf("yaml: line %d: alias nesting too deep", n.Line)
		}
		return s.walk(n.Alias, aliases+1)
	case yaml.MappingNode:
		pairs, err := s.entries(n, aliases)
		if err != nil {
			return err
		}
		s.emit(eng.Token{Kind: eng.KindBeginObject})
		for _, p := range pairs {
			s.emit(eng.Token{Kind: eng.KindKey, String: p.key})
			if err := s.walk(p.value, aliases); err != nil {
				return err
			}
		}
		s.emit(eng.Token{Kind: eng.KindEndObject})
		return nil
	case yaml.SequenceNode:
		s.emit(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			if err := s.walk(c, aliases); err != nil {
				return err
			}
		}
		s.emit(eng.Token{Kind: eng.KindEndArray})
		return nil
	case yaml.ScalarNode:
		t, err := scalarToken(n)
		if err != nil {
			return err
		}
		s.emit(t)
		return nil
	}
	return fmt.Errorf("yaml: line %d: unsupported node kind %d", n.Line, n.Kind)
}

func scalarToken(n *yaml.Node) (eng.Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindBool, Bool: b}, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10)}, nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatUint(u, 10)}, nil
		}
		fallthrough
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)}, nil
	}
	return eng.Token{Kind: eng.KindString, String: n.Value}, nil
}

type pair struct {
	key   string
	value *yaml.Node
}

// entries lists the members of a mapping with merge keys expanded.
func (s *source) entries(n *yaml.Node, aliases int) ([]pair, error) {
	if err := s.charge(len(n.Content) / 2); err != nil {
		return nil, err
	}
	var explicit, merged []pair
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		for k.Kind == yaml.AliasNode && k.Alias != nil {
			k = k.Alias
		}
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("yaml: line %d: mapping keys must be scalars", k.Line)
		}
		if k.ShortTag() == "!!merge" {
			ms, err := s.mergeSources(v, aliases)
			if err != nil {
				return nil, err
			}
			merged = append(merged, ms...)
			continue
		}
		explicit = append(explicit, pair{key: k.Value, value: v})
	}
	if len(merged) == 0 {
		return explicit, nil
	}
	seen := make(map[string]struct{}, len(explicit)+len(merged))
	for _, p := range explicit {
		seen[p.key] = struct{}{}
	}
	out := make([]pair, 0, len(explicit)+len(merged))
	for _, p := range merged {
		if _, ok := seen[p.key]; ok {
			continue
		}
		seen[p.key] = struct{}{}
		out = append(out, p)
	}
	return append(out, explicit...), nil
}

// mergeSources resolves the value of a "<<" key: a mapping, or a sequence of
// mappings where earlier mappings win.
func (s *source) mergeSources(v *yaml.Node, aliases int) ([]pair, error) {
	for v.Kind == yaml.AliasNode && v.Alias != nil {
		if aliases >= maxAliasDepth {
			return nil, fmt.Errorf("yaml: line %d: alias nesting too deep", v.Line)
		}
		aliases++
		v = v.Alias
	}
	switch v.Kind {
	case yaml.MappingNode:
		return s.entries(v, aliases)
	case yaml.SequenceNode:
		var out []pair
		for _, c := range v.Content {
			ps, err := s.mergeSources(c, aliases)
			if err != nil {
				return nil, err
			}
			out = append(out, ps...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("yaml: line %d: merge value must be a mapping", v.Line)
}
