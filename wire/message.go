package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBadPayloadRef is returned by Validate when a record points outside
// the buffer list or disagrees with its blob's size.
var ErrBadPayloadRef = errors.New("wire: bad payload reference")

// Message is one dispatched batch: the ordered command records, the
// executor flags, and the side-channel blobs the records index into.
//
// Only Commands, OnlyOnce and Clear are part of the JSON document;
// Buffers travel beside it.
type Message struct {
	Commands []Command
	OnlyOnce bool
	Clear    bool
	Buffers  [][]byte
}

// PayloadBytes returns the total size of all blobs.
func (m *Message) PayloadBytes() int {
	n := 0
	for _, b := range m.Buffers {
		n += len(b)
	}
	return n
}

// Validate checks that every payload reference resolves to a blob of the
// expected size.
func (m *Message) Validate() error {
	for i, c := range m.Commands {
		meta, ok := PayloadOf(c)
		if !ok {
			continue
		}
		if meta.Index < 0 || meta.Index >= len(m.Buffers) {
			return fmt.Errorf("%w: command %d (%s) index %d, have %d buffers",
				ErrBadPayloadRef, i, c.Name(), meta.Index, len(m.Buffers))
		}
		if want, got := meta.Meta().ByteLen(), len(m.Buffers[meta.Index]); want != got {
			return fmt.Errorf("%w: command %d (%s) expects %d bytes, buffer %d has %d",
				ErrBadPayloadRef, i, c.Name(), want, meta.Index, got)
		}
	}
	return nil
}

// MarshalJSON encodes the message document. An empty batch encodes its
// commands as [] rather than null.
func (m Message) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"commands":[`)
	for i, c := range m.Commands {
		if i > 0 {
			buf.WriteByte(',')
		}
		rec, err := MarshalCommand(c)
		if err != nil {
			return nil, err
		}
		buf.Write(rec)
	}
	fmt.Fprintf(&buf, `],"only_once":%t,"clear":%t}`, m.OnlyOnce, m.Clear)
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the message document. Buffers are left untouched.
func (m *Message) UnmarshalJSON(data []byte) error {
	var doc struct {
		Commands []json.RawMessage `json:"commands"`
		OnlyOnce bool              `json:"only_once"`
		Clear    bool              `json:"clear"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("wire: decode message: %w", err)
	}
	cmds := make([]Command, 0, len(doc.Commands))
	for i, raw := range doc.Commands {
		c, err := UnmarshalCommand(raw)
		if err != nil {
			return fmt.Errorf("wire: record %d: %w", i, err)
		}
		cmds = append(cmds, c)
	}
	m.Commands = cmds
	m.OnlyOnce = doc.OnlyOnce
	m.Clear = doc.Clear
	return nil
}
