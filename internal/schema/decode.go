package schema

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/solidity-ir/engine/internal/ierrors"
)

// jsonUnmarshal is the single choke point through which this package
// talks to goccy/go-json, so every other file can stay agnostic of
// which JSON implementation is in use.
func jsonUnmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// strictDecode decodes data into v, rejecting any field in data that
// v's struct tags don't declare. This is the "forbid-extra-fields"
// half of §4.1; unknown fields are schema violations, not warnings.
func strictDecode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ierrors.Wrap(ierrors.SchemaViolation, "", err)
	}
	return nil
}

// discriminator is decoded first from any raw node object to read
// just its "nodeType" tag before committing to a concrete struct.
type discriminator struct {
	NodeType string `json:"nodeType"`
}

// Node is implemented by every decoded AST node type; Kind reports its
// nodeType discriminator and SrcRange its decoded "src" triple.
type Node interface {
	Kind() string
	SrcRange() Src
}

// DecodeNode decodes a single raw JSON node object, dispatching on its
// "nodeType" field to the concrete schema struct registered for that
// kind. An unrecognized nodeType is an unsupported-construct error
// (spec.md §7), not a schema violation — the JSON itself may be
// perfectly well-formed, just newer than this build knows about.
func DecodeNode(data []byte) (Node, error) {
	var disc discriminator
	if err := jsonUnmarshal(data, &disc); err != nil {
		return nil, ierrors.Wrap(ierrors.SchemaViolation, "", err)
	}

	ctor, ok := nodeConstructors[disc.NodeType]
	if !ok {
		return nil, ierrors.New(ierrors.UnsupportedConstruct, "", "unknown nodeType %q", disc.NodeType)
	}
	return ctor(data)
}

// DecodeNodes decodes a JSON array of raw node objects.
func DecodeNodes(data []byte) ([]Node, error) {
	var raw []jsonRawMessage
	if err := jsonUnmarshal(data, &raw); err != nil {
		return nil, ierrors.Wrap(ierrors.SchemaViolation, "", err)
	}
	out := make([]Node, 0, len(raw))
	for _, r := range raw {
		n, err := DecodeNode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

type jsonRawMessage = json.RawMessage

// nodeConstructor decodes a raw JSON node object into a concrete,
// strictly-typed schema struct.
type nodeConstructor func(data []byte) (Node, error)

// nodeConstructors is populated by an init() in each file that defines
// a concrete node struct, keyed by the compiler's "nodeType" string —
// mirroring the teacher's approach of matching on `nodeType` in
// internal/cst.Parse's language switch, generalized here to one case
// per AST node kind instead of one per source language.
var nodeConstructors = map[string]nodeConstructor{}

func register[T Node](nodeType string, zero func() T) {
	nodeConstructors[nodeType] = func(data []byte) (Node, error) {
		v := zero()
		if err := strictDecode(data, v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", nodeType, err)
		}
		return v, nil
	}
}
