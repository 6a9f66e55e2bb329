package protocol

import (
	"fmt"
	"unicode/utf8"

	"github.com/danmuck/structmsg/internal/enums"
)

const (
	marketingHeaderSize = sizeU32 + sizeU32
	// length field + id + flags; the url span (text plus pad byte) is the rest.
	marketingRecordOverhead = sizeU32 + sizeU64 + sizeU32
)

// MarketingMessage is one record of a marketing message list.
type MarketingMessage struct {
	ID    uint64
	URL   string
	Flags uint32
}

func (m MarketingMessage) String() string {
	var l lines
	l.raw("{")
	l.field("    id", "%d", m.ID)
	l.field("    url", "%s", m.URL)
	l.field("    flags", "%d", m.Flags)
	l.raw("}")
	return l.String()
}

// recordLength is the wire length of m, including its own length field.
func (m MarketingMessage) recordLength() int {
	return marketingRecordOverhead + len(m.URL) + 1
}

// ClientMarketingMessageUpdate2 is a header followed by self length
// prefixed records. The header count is advisory: decode tolerates a
// mismatch and encode always writes len(Messages).
type ClientMarketingMessageUpdate2 struct {
	Time     uint32
	Messages []MarketingMessage
}

func NewClientMarketingMessageUpdate2() *ClientMarketingMessageUpdate2 {
	return &ClientMarketingMessageUpdate2{Messages: make([]MarketingMessage, 0)}
}

func (m *ClientMarketingMessageUpdate2) EMsg() enums.EMsg {
	return enums.EMsgClientMarketingMessageUpdate2
}

// Count is the number of records currently held.
func (m *ClientMarketingMessageUpdate2) Count() int {
	return len(m.Messages)
}

func (m *ClientMarketingMessageUpdate2) MarshalBinary() ([]byte, error) {
	size := marketingHeaderSize
	for i, msg := range m.Messages {
		if !utf8.ValidString(msg.URL) {
			return nil, &RecordError{
				Index:  i,
				Offset: size,
				Length: int64(msg.recordLength()),
				Reason: "url",
				Err:    fmt.Errorf("%w: field url", ErrInvalidText),
			}
		}
		size += msg.recordLength()
	}
	w := newWriter(size)
	w.u32(m.Time)
	w.u32(uint32(len(m.Messages)))
	for _, msg := range m.Messages {
		w.u32(uint32(msg.recordLength()))
		w.u64(msg.ID)
		w.raw([]byte(msg.URL))
		w.u8(0)
		w.u32(msg.Flags)
	}
	return w.bytes(), nil
}

func (m *ClientMarketingMessageUpdate2) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.need("ClientMarketingMessageUpdate2", marketingHeaderSize); err != nil {
		return err
	}
	ts, _ := r.u32("time")
	// declared count is advisory
	_, _ = r.u32("count")

	messages := make([]MarketingMessage, 0)
	for r.remaining() > 0 {
		rec, err := readMarketingMessage(r, len(messages))
		if err != nil {
			return err
		}
		messages = append(messages, rec)
	}

	m.Time = ts
	m.Messages = messages
	return nil
}

func readMarketingMessage(r *reader, index int) (MarketingMessage, error) {
	start := r.off
	if r.remaining() < sizeU32 {
		return MarketingMessage{}, &RecordError{
			Index:  index,
			Offset: start,
			Length: -1,
			Reason: fmt.Sprintf("%d trailing bytes cannot hold a length field", r.remaining()),
		}
	}
	rawLen, _ := r.u32("length")
	length := int64(rawLen)

	urlSpan := length - marketingRecordOverhead
	if urlSpan < 1 {
		return MarketingMessage{}, &RecordError{
			Index:  index,
			Offset: start,
			Length: length,
			Reason: fmt.Sprintf("url span %d leaves no room for the pad byte", urlSpan),
		}
	}
	if int64(start)+length > int64(len(r.buf)) {
		return MarketingMessage{}, &RecordError{
			Index:  index,
			Offset: start,
			Length: length,
			Reason: fmt.Sprintf("record ends past buffer length %d", len(r.buf)),
		}
	}

	var rec MarketingMessage
	rec.ID, _ = r.u64("id")
	url, err := r.text("url", int(urlSpan)-1)
	if err != nil {
		return MarketingMessage{}, &RecordError{Index: index, Offset: start, Length: length, Reason: "url", Err: err}
	}
	rec.URL = url
	// pad
	_, _ = r.u8("pad")
	rec.Flags, _ = r.u32("flags")
	return rec, nil
}

func (m *ClientMarketingMessageUpdate2) String() string {
	var l lines
	l.field("time", "%d", m.Time)
	l.field("count", "%d", m.Count())
	for _, msg := range m.Messages {
		l.raw("messages " + msg.String())
	}
	return l.String()
}
