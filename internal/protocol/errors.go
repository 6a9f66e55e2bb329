package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrBufferUnderrun          = errors.New("protocol: buffer underrun")
	ErrMalformedRecord         = errors.New("protocol: malformed variable record")
	ErrUnknownEnumValue        = errors.New("protocol: unknown enum value")
	ErrUnregisteredMessageType = errors.New("protocol: unregistered message type")
	ErrInvalidText             = errors.New("protocol: text is not valid utf-8")
)

// UnderrunError reports a read that needs more bytes than remain.
type UnderrunError struct {
	Field  string
	Offset int
	Need   int
	Have   int
}

func (e *UnderrunError) Error() string {
	return fmt.Sprintf("protocol: buffer underrun reading %s at offset %d: need %d bytes, have %d",
		e.Field, e.Offset, e.Need, e.Have)
}

func (e *UnderrunError) Unwrap() error {
	return ErrBufferUnderrun
}

// RecordError reports a variable record whose length field cannot be honored.
type RecordError struct {
	Index  int
	Offset int
	Length int64
	Reason string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("protocol: malformed record %d at offset %d (length=%d): %s: %v",
			e.Index, e.Offset, e.Length, e.Reason, e.Err)
	}
	return fmt.Sprintf("protocol: malformed record %d at offset %d (length=%d): %s",
		e.Index, e.Offset, e.Length, e.Reason)
}

func (e *RecordError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedRecord, e.Err}
	}
	return []error{ErrMalformedRecord}
}

// EnumError reports an enum-typed field whose raw value has no symbol.
type EnumError struct {
	Field  string
	Domain string
	Value  uint32
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("protocol: field %s: %d is not a known %s", e.Field, e.Value, e.Domain)
}

func (e *EnumError) Unwrap() error {
	return ErrUnknownEnumValue
}
