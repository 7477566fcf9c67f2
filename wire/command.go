package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/gogpu/glbatch/arraybuf"
)

// ErrUnknownCommand is returned when a record names a command that has no
// registered type.
var ErrUnknownCommand = errors.New("wire: unknown command")

// Command is one record of a batch. Each GPU operation has its own struct
// type; Name returns the discriminant stored in the record's "cmd" field.
type Command interface {
	Name() string
}

// Payloader is implemented by commands that reference a side-channel blob.
type Payloader interface {
	Command
	// Payload returns the blob reference, or nil if the command carries none.
	Payload() *BufferMetadata
}

// BufferMetadata points a command at a blob in the message's buffer list.
type BufferMetadata struct {
	Shape []int          `json:"shape"`
	DType arraybuf.DType `json:"dtype"`
	Index int            `json:"index"`
}

// Meta returns the shape and dtype without the index.
func (m *BufferMetadata) Meta() arraybuf.Metadata {
	return arraybuf.Metadata{Shape: m.Shape, DType: m.DType}
}

// IntOrName is a field the executor accepts either as a number or as a
// name it resolves itself, such as an attribute location or an attribute
// name looked up in the bound program.
type IntOrName struct {
	Int  int
	Name string
}

// IsName reports whether the value is a name.
func (v IntOrName) IsName() bool { return v.Name != "" }

// String returns the name or the decimal integer.
func (v IntOrName) String() string {
	if v.IsName() {
		return v.Name
	}
	return strconv.Itoa(v.Int)
}

// MarshalJSON encodes the value as a JSON string or number.
func (v IntOrName) MarshalJSON() ([]byte, error) {
	if v.IsName() {
		return json.Marshal(v.Name)
	}
	return strconv.AppendInt(nil, int64(v.Int), 10), nil
}

// UnmarshalJSON accepts a JSON string or number.
func (v *IntOrName) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		*v = IntOrName{}
		return json.Unmarshal(data, &v.Name)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("wire: expected number or string: %w", err)
	}
	*v = IntOrName{Int: n}
	return nil
}

// MarshalCommand encodes c as a JSON object whose first member is "cmd".
func MarshalCommand(c Command) ([]byte, error) {
	body, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("wire: encode %s: %w", c.Name(), err)
	}
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("wire: command %s does not encode as an object", c.Name())
	}
	name, _ := json.Marshal(c.Name())

	out := make([]byte, 0, len(body)+len(name)+8)
	out = append(out, `{"cmd":`...)
	out = append(out, name...)
	if len(body) > 2 {
		out = append(out, ',')
		out = append(out, body[1:]...)
	} else {
		out = append(out, '}')
	}
	return out, nil
}

// UnmarshalCommand decodes a single record into its registered type.
func UnmarshalCommand(data []byte) (Command, error) {
	var head struct {
		Cmd string `json:"cmd"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("wire: decode record: %w", err)
	}
	decode, ok := decoders[head.Cmd]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, head.Cmd)
	}
	c, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("wire: decode %s: %w", head.Cmd, err)
	}
	return c, nil
}

// CommandNames returns the sorted list of command names UnmarshalCommand
// understands.
func CommandNames() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PayloadOf returns the blob reference of c, if any.
func PayloadOf(c Command) (*BufferMetadata, bool) {
	p, ok := c.(Payloader)
	if !ok {
		return nil, false
	}
	m := p.Payload()
	return m, m != nil
}

func decodeAs[T Command](data []byte) (Command, error) {
	var c T
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}
