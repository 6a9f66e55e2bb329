package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/structmsg/internal/enums"
	"github.com/danmuck/structmsg/internal/observability"
	"github.com/danmuck/structmsg/internal/protocol"
	"github.com/danmuck/structmsg/internal/testutil/testlog"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func newTestDispatcher(t *testing.T, reg *protocol.Registry) (*Dispatcher, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	return NewDispatcher(reg, WithLogger(logger), WithMetrics(false)), &buf
}

func TestDecodeRegisteredMessage(t *testing.T) {
	testlog.Start(t)
	d, _ := newTestDispatcher(t, nil)

	out, err := d.Encode(&protocol.ClientJoinChat{SteamIDChat: 42, IsVoiceSpeaker: true})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out.EMsg != enums.EMsgClientJoinChat || len(out.Body) != 9 {
		t.Fatalf("unexpected outbound: %+v", out)
	}

	in, err := d.Decode(uint32(out.EMsg), out.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if in.ID == uuid.Nil {
		t.Fatalf("expected correlation id")
	}
	msg, ok := in.Message.(*protocol.ClientJoinChat)
	if !ok || msg.SteamIDChat != 42 || !msg.IsVoiceSpeaker {
		t.Fatalf("unexpected decoded message: %#v", in.Message)
	}
}

func TestDecodeUnregisteredIsSkippable(t *testing.T) {
	testlog.Start(t)
	d, logs := newTestDispatcher(t, nil)

	_, err := d.Decode(uint32(enums.EMsgClientHeartBeat), []byte{1, 2, 3})
	if !errors.Is(err, protocol.ErrUnregisteredMessageType) {
		t.Fatalf("expected ErrUnregisteredMessageType, got %v", err)
	}
	if !Skippable(err) {
		t.Fatalf("expected unregistered error to be skippable")
	}
	if !strings.Contains(logs.String(), "no struct codec registered") {
		t.Fatalf("expected skip to be logged, got %q", logs.String())
	}

	called := false
	err = d.Dispatch(uint32(enums.EMsgClientHeartBeat), nil, func(Inbound) error {
		called = true
		return nil
	})
	if err != nil || called {
		t.Fatalf("expected silent skip, err=%v called=%v", err, called)
	}
}

func TestDispatchSurfacesMalformedInput(t *testing.T) {
	testlog.Start(t)
	d, _ := newTestDispatcher(t, nil)

	body := []byte{100, 0, 0, 0, 1, 0, 0, 0, 10, 0, 0, 0}
	err := d.Dispatch(uint32(enums.EMsgClientMarketingMessageUpdate2), body, func(Inbound) error {
		t.Fatalf("handler must not run on malformed input")
		return nil
	})
	if !errors.Is(err, protocol.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
	if Skippable(err) {
		t.Fatalf("malformed input must not be skippable")
	}
}

func TestDispatchPassesHandlerError(t *testing.T) {
	testlog.Start(t)
	d, _ := newTestDispatcher(t, nil)
	out, _ := d.Encode(&protocol.ClientVACBanStatus{SteamIDChat: 3})
	want := errors.New("handler failed")
	if err := d.Dispatch(uint32(out.EMsg), out.Body, func(Inbound) error { return want }); !errors.Is(err, want) {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestCustomRegistryOverridesBuiltin(t *testing.T) {
	testlog.Start(t)
	reg := protocol.NewRegistry()
	protocol.RegisterBuiltins(reg)
	reg.Register(enums.EMsgClientVACBanStatus, func() protocol.Message { return &protocol.ChannelEncryptResult{} })

	d, _ := newTestDispatcher(t, reg)
	in, err := d.Decode(uint32(enums.EMsgClientVACBanStatus), []byte{1, 0, 0, 0})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := in.Message.(*protocol.ChannelEncryptResult); !ok {
		t.Fatalf("expected override codec, got %T", in.Message)
	}
}

func TestEncodeNilMessage(t *testing.T) {
	testlog.Start(t)
	d, _ := newTestDispatcher(t, nil)
	if _, err := d.Encode(nil); err == nil {
		t.Fatalf("expected error for nil message")
	}
}

func TestOutcomeLabels(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		err  error
		want string
	}{
		{nil, observability.OutcomeOK},
		{&protocol.UnderrunError{Field: "x", Need: 4}, observability.OutcomeUnderrun},
		{&protocol.RecordError{Reason: "x", Err: protocol.ErrInvalidText}, observability.OutcomeMalformed},
		{&protocol.EnumError{Field: "x"}, observability.OutcomeUnknownEnum},
		{protocol.ErrInvalidText, observability.OutcomeInvalidText},
		{protocol.ErrUnregisteredMessageType, observability.OutcomeUnregistered},
		{errors.New("other"), observability.OutcomeError},
	}
	for _, tc := range cases {
		if got := Outcome(tc.err); got != tc.want {
			t.Fatalf("Outcome(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestMetricLabelBoundsUnnamedIDs(t *testing.T) {
	testlog.Start(t)
	if got := metricLabel(enums.EMsg(0x7ffff001)); got != "unnamed" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := metricLabel(enums.EMsgClientChatMsg); got != "ClientChatMsg" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestDispatcherRecordsMetrics(t *testing.T) {
	testlog.Start(t)
	okCounter := observability.DecodeCounter("ClientVACBanStatus", observability.OutcomeOK)
	underrunCounter := observability.DecodeCounter("ClientVACBanStatus", observability.OutcomeUnderrun)
	okBefore := testutil.ToFloat64(okCounter)
	underrunBefore := testutil.ToFloat64(underrunCounter)

	d := NewDispatcher(nil, WithLogger(zerolog.Nop()))
	if _, err := d.Decode(uint32(enums.EMsgClientVACBanStatus), []byte{1, 0, 0, 0}); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := d.Decode(uint32(enums.EMsgClientVACBanStatus), []byte{1}); err == nil {
		t.Fatalf("expected underrun")
	}

	if got := testutil.ToFloat64(okCounter) - okBefore; got != 1 {
		t.Fatalf("expected one ok decode recorded, got %v", got)
	}
	if got := testutil.ToFloat64(underrunCounter) - underrunBefore; got != 1 {
		t.Fatalf("expected one underrun decode recorded, got %v", got)
	}

	quiet := NewDispatcher(nil, WithLogger(zerolog.Nop()), WithMetrics(false))
	if _, err := quiet.Decode(uint32(enums.EMsgClientVACBanStatus), []byte{1, 0, 0, 0}); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := testutil.ToFloat64(okCounter) - okBefore; got != 1 {
		t.Fatalf("disabled metrics still recorded, delta %v", got)
	}
}
