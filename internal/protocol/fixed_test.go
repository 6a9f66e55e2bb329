package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/danmuck/structmsg/internal/enums"
	"github.com/danmuck/structmsg/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
)

func TestFixedLayoutRoundTrip(t *testing.T) {
	testlog.Start(t)
	fullKey := bytes.Repeat([]byte{0xff}, KeyBufferSize)
	cases := []struct {
		name string
		msg  Message
		size int
	}{
		{"encrypt request zero", &ChannelEncryptRequest{}, 8},
		{"encrypt request challenge", &ChannelEncryptRequest{
			ProtocolVersion: math.MaxUint32,
			Universe:        enums.EUniversePublic,
			Challenge:       []byte("0123456789abcdef"),
		}, 24},
		{"encrypt response zero", &ChannelEncryptResponse{Key: make([]byte, KeyBufferSize)}, 144},
		{"encrypt response max", &ChannelEncryptResponse{
			ProtocolVersion: math.MaxUint32,
			KeySize:         math.MaxUint32,
			Key:             fullKey,
			CRC:             math.MaxUint32,
		}, 144},
		{"encrypt result zero", &ChannelEncryptResult{}, 4},
		{"encrypt result ok", &ChannelEncryptResult{Result: enums.EResultOK}, 4},
		{"logon response", &ClientLogOnResponse{Result: enums.EResultAccountLoginDeniedNeedTwoFactor}, 4},
		{"vac ban status zero", &ClientVACBanStatus{}, 4},
		{"vac ban status max", &ClientVACBanStatus{SteamIDChat: math.MaxUint32}, 4},
		{"chat msg zero", &ClientChatMsg{}, 21},
		{"chat msg max", &ClientChatMsg{
			SteamIDChatter:  math.MaxUint64,
			SteamIDChatRoom: math.MaxUint64,
			ChatMsgType:     math.MaxUint32,
			Text:            "hello",
		}, 26},
		{"join chat zero", &ClientJoinChat{}, 9},
		{"join chat max", &ClientJoinChat{SteamIDChat: math.MaxUint64, IsVoiceSpeaker: true}, 9},
		{"chat member info zero", &ClientChatMemberInfo{}, 32},
		{"chat member info max", &ClientChatMemberInfo{
			SteamIDChat:        math.MaxUint64,
			Type:               math.MaxUint32,
			SteamIDUserActedOn: math.MaxUint64,
			ChatAction:         math.MaxUint32,
			SteamIDUserActedBy: math.MaxUint64,
		}, 32},
	}

	for _, tc := range cases {
		data, err := tc.msg.MarshalBinary()
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}
		if len(data) != tc.size {
			t.Fatalf("%s: encoded %d bytes, want %d", tc.name, len(data), tc.size)
		}
		f, ok := LookupStruct(tc.msg.EMsg())
		if !ok {
			t.Fatalf("%s: no codec for %s", tc.name, tc.msg.EMsg())
		}
		got, err := Decode(f, data)
		if err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.msg, got); diff != "" {
			t.Fatalf("%s: round trip mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestFixedLayoutShortBufferUnderruns(t *testing.T) {
	testlog.Start(t)
	minSizes := map[enums.EMsg]int{
		enums.EMsgChannelEncryptRequest:         8,
		enums.EMsgChannelEncryptResponse:        144,
		enums.EMsgChannelEncryptResult:          4,
		enums.EMsgClientLogOnResponse:           4,
		enums.EMsgClientVACBanStatus:            4,
		enums.EMsgClientChatMsg:                 21,
		enums.EMsgClientJoinChat:                9,
		enums.EMsgClientChatMemberInfo:          32,
		enums.EMsgClientMarketingMessageUpdate2: 8,
	}
	for id, size := range minSizes {
		f, ok := LookupStruct(id)
		if !ok {
			t.Fatalf("no codec for %s", id)
		}
		for _, n := range []int{0, size - 1} {
			_, err := Decode(f, make([]byte, n))
			if !errors.Is(err, ErrBufferUnderrun) {
				t.Fatalf("%s with %d bytes: expected ErrBufferUnderrun, got %v", id, n, err)
			}
			var under *UnderrunError
			if !errors.As(err, &under) || under.Have != n {
				t.Fatalf("%s with %d bytes: unexpected underrun detail %+v", id, n, under)
			}
		}
	}
}

func TestEnumFieldsRejectUnknownValues(t *testing.T) {
	testlog.Start(t)
	req := make([]byte, 8)
	binary.LittleEndian.PutUint32(req[0:4], 1)
	binary.LittleEndian.PutUint32(req[4:8], 99)

	var m ChannelEncryptRequest
	err := m.UnmarshalBinary(req)
	if !errors.Is(err, ErrUnknownEnumValue) {
		t.Fatalf("expected ErrUnknownEnumValue, got %v", err)
	}
	var enumErr *EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("expected EnumError, got %T", err)
	}
	if enumErr.Field != "universe" || enumErr.Domain != "EUniverse" || enumErr.Value != 99 {
		t.Fatalf("unexpected enum error: %+v", enumErr)
	}

	res := make([]byte, 4)
	binary.LittleEndian.PutUint32(res, 4242)
	for _, msg := range []Message{&ChannelEncryptResult{}, &ClientLogOnResponse{}} {
		if err := msg.UnmarshalBinary(res); !errors.Is(err, ErrUnknownEnumValue) {
			t.Fatalf("%s: expected ErrUnknownEnumValue, got %v", msg.EMsg(), err)
		}
	}
}

func TestEncryptResponseKeyPadAndTruncate(t *testing.T) {
	testlog.Start(t)
	short := &ChannelEncryptResponse{ProtocolVersion: 1, KeySize: 3, Key: []byte{1, 2, 3}, CRC: 7}
	data, err := short.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(data) != encryptResponseSize {
		t.Fatalf("unexpected size %d", len(data))
	}
	if !bytes.Equal(data[8:11], []byte{1, 2, 3}) || !bytes.Equal(data[11:136], make([]byte, 125)) {
		t.Fatalf("key not zero padded")
	}
	if binary.LittleEndian.Uint32(data[136:140]) != 7 || binary.LittleEndian.Uint32(data[140:144]) != 0 {
		t.Fatalf("crc or reserved field misplaced")
	}

	long := &ChannelEncryptResponse{Key: bytes.Repeat([]byte{0xab}, 200)}
	data, err = long.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(data) != encryptResponseSize {
		t.Fatalf("long key changed layout size: %d", len(data))
	}
	var got ChannelEncryptResponse
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !bytes.Equal(got.Key, bytes.Repeat([]byte{0xab}, KeyBufferSize)) {
		t.Fatalf("expected key truncated to %d bytes", KeyBufferSize)
	}
}

func TestDecodeCopiesOutOfInputBuffer(t *testing.T) {
	testlog.Start(t)
	req := &ChannelEncryptRequest{ProtocolVersion: 1, Universe: enums.EUniversePublic, Challenge: []byte{9, 9, 9}}
	data, _ := req.MarshalBinary()

	var got ChannelEncryptRequest
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i := range data {
		data[i] = 0
	}
	if !bytes.Equal(got.Challenge, []byte{9, 9, 9}) {
		t.Fatalf("challenge aliases the input buffer: %v", got.Challenge)
	}
}

func TestJoinChatAnyNonZeroFlagIsTrue(t *testing.T) {
	testlog.Start(t)
	data := make([]byte, joinChatSize)
	data[8] = 0x02
	var m ClientJoinChat
	if err := m.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !m.IsVoiceSpeaker {
		t.Fatalf("expected non-zero flag to decode as true")
	}
}

func TestFixedLayoutRendering(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		msg  Message
		want string
	}{
		{&ChannelEncryptResult{Result: enums.EResultOK}, "result: OK"},
		{&ClientLogOnResponse{Result: enums.EResult(4242)}, "eresult: EResult(4242)"},
		{&ClientVACBanStatus{SteamIDChat: 7}, "steamIdChat: 7"},
		{&ChannelEncryptRequest{ProtocolVersion: 1, Universe: enums.EUniversePublic, Challenge: []byte{0xde, 0xad}},
			"protocolVersion: 1\nuniverse: Public\nchallenge: dead"},
		{&ClientJoinChat{SteamIDChat: 5, IsVoiceSpeaker: true}, "steamIdChat: 5\nisVoiceSpeaker: true"},
		{&ClientChatMemberInfo{SteamIDChat: 1, Type: 2, SteamIDUserActedOn: 3, ChatAction: 4, SteamIDUserActedBy: 5},
			"steamIdChat: 1\ntype: 2\nsteamIdUserActedOn: 3\nchatAction: 4\nsteamIdUserActedBy: 5"},
	}
	for _, tc := range cases {
		if got := tc.msg.String(); got != tc.want {
			t.Fatalf("%s rendering:\ngot  %q\nwant %q", tc.msg.EMsg(), got, tc.want)
		}
	}
}

func TestConstructorDefaults(t *testing.T) {
	testlog.Start(t)
	req := NewChannelEncryptRequest()
	if req.ProtocolVersion != 1 || req.Universe != enums.EUniverseInvalid {
		t.Fatalf("unexpected request defaults: %+v", req)
	}
	resp := NewChannelEncryptResponse()
	if resp.ProtocolVersion != 1 || resp.KeySize != KeyBufferSize {
		t.Fatalf("unexpected response defaults: %+v", resp)
	}
}

func TestLogOnResponseDecodesFullResultDomain(t *testing.T) {
	testlog.Start(t)
	cases := map[uint32]enums.EResult{
		28: enums.EResultAlreadyRedeemed,
		29: enums.EResultDuplicateRequest,
		63: enums.EResultAccountLogonDenied,
		65: enums.EResultInvalidLoginAuthCode,
		88: enums.EResultTwoFactorCodeMismatch,
	}
	for raw, want := range cases {
		var m ClientLogOnResponse
		if err := m.UnmarshalBinary(binary.LittleEndian.AppendUint32(nil, raw)); err != nil {
			t.Fatalf("result %d: unmarshal: %v", raw, err)
		}
		if m.Result != want {
			t.Fatalf("result %d decoded as %s, want %s", raw, m.Result, want)
		}
	}
	if got := (&ClientLogOnResponse{Result: enums.EResultAccountLogonDenied}).String(); got != "eresult: AccountLogonDenied" {
		t.Fatalf("unexpected rendering %q", got)
	}

	var m ClientLogOnResponse
	if err := m.UnmarshalBinary(binary.LittleEndian.AppendUint32(nil, 4)); !errors.Is(err, ErrUnknownEnumValue) {
		t.Fatalf("expected unassigned result 4 to be rejected, got %v", err)
	}
}

func TestEncryptRequestAcceptsMaxUniverse(t *testing.T) {
	testlog.Start(t)
	data := binary.LittleEndian.AppendUint32(nil, 1)
	data = binary.LittleEndian.AppendUint32(data, 5)
	var m ChannelEncryptRequest
	if err := m.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Universe != enums.EUniverseMax {
		t.Fatalf("unexpected universe %s", m.Universe)
	}
}
