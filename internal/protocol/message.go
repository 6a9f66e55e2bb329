package protocol

import (
	"encoding"
	"fmt"
	"strings"

	"github.com/danmuck/structmsg/internal/enums"
)

// Message is a typed struct message body.
//
// UnmarshalBinary never retains data; MarshalBinary returns a fresh buffer.
// String renders one "name: value" line per field in wire order.
type Message interface {
	EMsg() enums.EMsg
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	fmt.Stringer
}

// Factory constructs a zero-state message ready to be decoded into.
type Factory func() Message

// Decode constructs a message with f and decodes data into it.
func Decode(f Factory, data []byte) (Message, error) {
	msg := f()
	if err := msg.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return msg, nil
}

type lines struct {
	b strings.Builder
}

func (l *lines) field(name string, format string, v any) {
	if l.b.Len() > 0 {
		l.b.WriteByte('\n')
	}
	l.b.WriteString(name)
	l.b.WriteString(": ")
	fmt.Fprintf(&l.b, format, v)
}

func (l *lines) raw(s string) {
	if l.b.Len() > 0 {
		l.b.WriteByte('\n')
	}
	l.b.WriteString(s)
}

func (l *lines) String() string {
	return l.b.String()
}
