// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package localetree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Possible node kinds.
const (
	KindBranch Kind = iota
	KindText
	KindMessage
	KindOpaque
)

// Kind discriminates the variants of Node.
type Kind int

// String returns the kind's name for logs and errors.
func (k Kind) String() string {
	switch k {
	case KindBranch:
		return "branch"
	case KindText:
		return "text"
	case KindMessage:
		return "message"
	case KindOpaque:
		return "opaque"
	default:
		return ""
	}
}

var (
	errNotAnObject = errors.New("value is not a JSON object")
	errObjectKey   = errors.New("object key is not a string")
	errEmptyValue  = errors.New("empty JSON value")
	errUnknownKind = errors.New("unknown node kind")
)

// Message is the annotated leaf form: the translated text plus a flag
// marking whether a human translator confirmed it.
type Message struct {
	Text          string `json:"text"`
	HumanVerified bool   `json:"humanVerified"`
}

// Node is one position in a locale tree.
//
// Kind selects the variant; only the matching field is meaningful. Opaque
// holds the raw bytes of any JSON value that is neither an object nor a
// string, so unrecognised data survives every transform unchanged.
type Node struct {
	Kind    Kind
	Branch  *Branch
	Text    string
	Message Message
	Opaque  json.RawMessage
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	out := &Node{Kind: n.Kind, Text: n.Text, Message: n.Message}

	if n.Branch != nil {
		out.Branch = n.Branch.Clone()
	}

	if n.Opaque != nil {
		out.Opaque = append(json.RawMessage(nil), n.Opaque...)
	}

	return out
}

// MarshalJSON encodes the node's active variant.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindBranch:
		return n.Branch.MarshalJSON()
	case KindText:
		return json.Marshal(n.Text)
	case KindMessage:
		return json.Marshal(n.Message)
	case KindOpaque:
		return n.Opaque, nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnknownKind, n.Kind)
	}
}

// Branch is an ordered mapping from keys to child nodes.
//
// Keys keep the order they were first set in, matching the document order of
// a decoded file, so re-encoding stays diff-friendly.
type Branch struct {
	keys     []string
	children map[string]*Node
}

// NewBranch returns an empty branch.
func NewBranch() *Branch {
	return &Branch{children: make(map[string]*Node)}
}

// Len returns the number of direct children.
func (b *Branch) Len() int {
	return len(b.keys)
}

// Keys returns the branch's keys in insertion order.
//
// The returned slice is a copy and is safe to retain.
func (b *Branch) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)

	return out
}

// Get returns the child stored at key.
func (b *Branch) Get(key string) (*Node, bool) {
	node, ok := b.children[key]

	return node, ok
}

// Set stores node at key. A new key is appended to the order; setting an
// existing key replaces its value and keeps its position.
func (b *Branch) Set(key string, node *Node) {
	if b.children == nil {
		b.children = make(map[string]*Node)
	}

	if _, ok := b.children[key]; !ok {
		b.keys = append(b.keys, key)
	}

	b.children[key] = node
}

// Clone returns a deep copy of the branch.
func (b *Branch) Clone() *Branch {
	out := &Branch{
		keys:     append([]string(nil), b.keys...),
		children: make(map[string]*Node, len(b.children)),
	}

	for key, child := range b.children {
		out.children[key] = child.Clone()
	}

	return out
}

// MarshalJSON encodes the branch as a JSON object with keys in insertion
// order.
func (b *Branch) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(keyJSON)
		buf.WriteByte(':')

		childJSON, err := b.children[key].MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(childJSON)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the branch, preserving the
// document's key order.
//
// The root of a locale file is always a branch, so no message-shape check
// applies at this level; child objects decode through parseNode, which does
// recognise the annotated leaf shape.
func (b *Branch) UnmarshalJSON(data []byte) error {
	keys, values, err := parseMembers(data)
	if err != nil {
		return err
	}

	b.keys = nil
	b.children = make(map[string]*Node, len(keys))

	return b.setParsed(keys, values)
}

// setParsed decodes raw member values and stores them in order.
func (b *Branch) setParsed(keys []string, values []json.RawMessage) error {
	for i, key := range keys {
		child, err := parseNode(values[i])
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}

		b.Set(key, child)
	}

	return nil
}

// parseMembers splits a JSON object into its keys and raw values, in
// document order.
//
// The token walk is what preserves order; decoding into a map would not.
func parseMembers(data []byte) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errNotAnObject
	}

	var (
		keys   []string
		values []json.RawMessage
	)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, nil, errObjectKey
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}

		keys = append(keys, key)
		values = append(values, value)
	}

	// Consume the closing brace so truncated input is rejected.
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	return keys, values, nil
}

// parseNode decodes one raw JSON value into a node.
func parseNode(data []byte) (*Node, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errEmptyValue
	}

	switch trimmed[0] {
	case '{':
		return parseObjectNode(trimmed)
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return nil, err
		}

		return &Node{Kind: KindText, Text: text}, nil
	default:
		// Arrays, numbers, booleans and null pass through untouched.
		raw := make(json.RawMessage, len(trimmed))
		copy(raw, trimmed)

		return &Node{Kind: KindOpaque, Opaque: raw}, nil
	}
}

// parseObjectNode decodes a JSON object as a Message leaf when it has the
// annotated shape, and as a Branch otherwise.
func parseObjectNode(data []byte) (*Node, error) {
	keys, values, err := parseMembers(data)
	if err != nil {
		return nil, err
	}

	if msg, ok := messageShape(keys, values); ok {
		return &Node{Kind: KindMessage, Message: msg}, nil
	}

	branch := NewBranch()
	if err := branch.setParsed(keys, values); err != nil {
		return nil, err
	}

	return &Node{Kind: KindBranch, Branch: branch}, nil
}

// messageShape reports whether an object's members are exactly a "text"
// string and a "humanVerified" boolean, in either order.
func messageShape(keys []string, values []json.RawMessage) (Message, bool) {
	if len(keys) != 2 {
		return Message{}, false
	}

	var (
		msg     Message
		gotText bool
		gotFlag bool
	)

	for i, key := range keys {
		switch key {
		case "text":
			if gotText || len(values[i]) == 0 || values[i][0] != '"' {
				return Message{}, false
			}

			if err := json.Unmarshal(values[i], &msg.Text); err != nil {
				return Message{}, false
			}

			gotText = true
		case "humanVerified":
			switch string(bytes.TrimSpace(values[i])) {
			case "true":
				msg.HumanVerified = true
			case "false":
				msg.HumanVerified = false
			default:
				return Message{}, false
			}

			gotFlag = true
		default:
			return Message{}, false
		}
	}

	return msg, gotText && gotFlag
}
