package session

import (
	"errors"
	"fmt"

	"github.com/danmuck/structmsg/internal/enums"
	"github.com/danmuck/structmsg/internal/observability"
	"github.com/danmuck/structmsg/internal/protocol"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Inbound is one decoded message body.
type Inbound struct {
	ID      uuid.UUID
	EMsg    enums.EMsg
	Message protocol.Message
}

// Outbound is one encoded message body ready for framing.
type Outbound struct {
	EMsg enums.EMsg
	Body []byte
}

// Handler consumes decoded messages.
type Handler func(Inbound) error

type Option func(*Dispatcher)

func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = logger
	}
}

func WithMetrics(enabled bool) Option {
	return func(d *Dispatcher) {
		d.metrics = enabled
	}
}

// Dispatcher decodes and encodes message bodies through a registry. It
// holds no mutable state and is safe for concurrent use once the registry
// is populated.
type Dispatcher struct {
	registry *protocol.Registry
	log      zerolog.Logger
	metrics  bool
}

// NewDispatcher builds a dispatcher over reg, or over the builtin registry
// when reg is nil.
func NewDispatcher(reg *protocol.Registry, opts ...Option) *Dispatcher {
	if reg == nil {
		reg = protocol.Default()
	}
	d := &Dispatcher{registry: reg, log: log.Logger, metrics: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode decodes body as the message type raw. An unregistered type yields
// an error matching protocol.ErrUnregisteredMessageType.
func (d *Dispatcher) Decode(raw uint32, body []byte) (Inbound, error) {
	id := enums.EMsg(raw)
	msg, ok := d.registry.New(id)
	if !ok {
		d.recordDecode(id, observability.OutcomeUnregistered, len(body))
		d.log.Debug().
			Uint32("emsg", raw).
			Stringer("type", id).
			Int("bytes", len(body)).
			Msg("session: no struct codec registered")
		return Inbound{}, fmt.Errorf("%w: %s", protocol.ErrUnregisteredMessageType, id)
	}
	if err := msg.UnmarshalBinary(body); err != nil {
		d.recordDecode(id, Outcome(err), len(body))
		d.log.Warn().
			Err(err).
			Stringer("type", id).
			Int("bytes", len(body)).
			Msg("session: decode failed")
		return Inbound{}, fmt.Errorf("session: decode %s: %w", id, err)
	}
	in := Inbound{ID: uuid.New(), EMsg: id, Message: msg}
	d.recordDecode(id, observability.OutcomeOK, len(body))
	d.log.Debug().
		Str("id", in.ID.String()).
		Stringer("type", id).
		Int("bytes", len(body)).
		Msg("session: decoded")
	return in, nil
}

// Dispatch decodes body and passes the result to h. Unregistered types are
// logged and skipped; every other failure is returned.
func (d *Dispatcher) Dispatch(raw uint32, body []byte, h Handler) error {
	in, err := d.Decode(raw, body)
	if err != nil {
		if Skippable(err) {
			return nil
		}
		return err
	}
	return h(in)
}

// Encode serializes msg for the transport.
func (d *Dispatcher) Encode(msg protocol.Message) (Outbound, error) {
	if msg == nil {
		return Outbound{}, errors.New("session: encode nil message")
	}
	id := msg.EMsg()
	body, err := msg.MarshalBinary()
	if err != nil {
		d.recordEncode(id, Outcome(err), 0)
		d.log.Warn().Err(err).Stringer("type", id).Msg("session: encode failed")
		return Outbound{}, fmt.Errorf("session: encode %s: %w", id, err)
	}
	d.recordEncode(id, observability.OutcomeOK, len(body))
	return Outbound{EMsg: id, Body: body}, nil
}

// Skippable reports whether err only signals an unregistered message type.
func Skippable(err error) bool {
	return errors.Is(err, protocol.ErrUnregisteredMessageType)
}

// Outcome maps a codec error to its metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeOK
	case errors.Is(err, protocol.ErrUnregisteredMessageType):
		return observability.OutcomeUnregistered
	case errors.Is(err, protocol.ErrMalformedRecord):
		return observability.OutcomeMalformed
	case errors.Is(err, protocol.ErrBufferUnderrun):
		return observability.OutcomeUnderrun
	case errors.Is(err, protocol.ErrUnknownEnumValue):
		return observability.OutcomeUnknownEnum
	case errors.Is(err, protocol.ErrInvalidText):
		return observability.OutcomeInvalidText
	default:
		return observability.OutcomeError
	}
}

func (d *Dispatcher) recordDecode(id enums.EMsg, outcome string, size int) {
	if d.metrics {
		observability.RecordDecode(metricLabel(id), outcome, size)
	}
}

func (d *Dispatcher) recordEncode(id enums.EMsg, outcome string, size int) {
	if d.metrics {
		observability.RecordEncode(metricLabel(id), outcome, size)
	}
}

// unnamed ids share one label to bound series cardinality
func metricLabel(id enums.EMsg) string {
	if !id.Known() {
		return "unnamed"
	}
	return id.String()
}
