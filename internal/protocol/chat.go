package protocol

import (
	"fmt"
	"unicode/utf8"

	"github.com/danmuck/structmsg/internal/enums"
)

const (
	chatMsgPrefix      = sizeU64 + sizeU64 + sizeU32
	joinChatSize       = sizeU64 + sizeU8
	chatMemberInfoSize = sizeU64 + sizeU32 + sizeU64 + sizeU32 + sizeU64
)

// ClientChatMsg is a chat room message. Text travels as UTF-8 followed by a
// single zero byte.
type ClientChatMsg struct {
	SteamIDChatter  uint64
	SteamIDChatRoom uint64
	ChatMsgType     uint32
	Text            string
}

func (m *ClientChatMsg) EMsg() enums.EMsg { return enums.EMsgClientChatMsg }

func (m *ClientChatMsg) MarshalBinary() ([]byte, error) {
	if !utf8.ValidString(m.Text) {
		return nil, fmt.Errorf("%w: field text", ErrInvalidText)
	}
	w := newWriter(chatMsgPrefix + len(m.Text) + 1)
	w.u64(m.SteamIDChatter)
	w.u64(m.SteamIDChatRoom)
	w.u32(m.ChatMsgType)
	w.raw([]byte(m.Text))
	w.u8(0)
	return w.bytes(), nil
}

func (m *ClientChatMsg) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.need("ClientChatMsg", chatMsgPrefix+1); err != nil {
		return err
	}
	chatter, _ := r.u64("steamIdChatter")
	room, _ := r.u64("steamIdChatRoom")
	kind, _ := r.u32("chatMsgType")
	text, err := r.text("text", len(data)-chatMsgPrefix-1)
	if err != nil {
		return err
	}
	m.SteamIDChatter = chatter
	m.SteamIDChatRoom = room
	m.ChatMsgType = kind
	m.Text = text
	return nil
}

func (m *ClientChatMsg) String() string {
	var l lines
	l.field("steamIdChatter", "%d", m.SteamIDChatter)
	l.field("steamIdChatRoom", "%d", m.SteamIDChatRoom)
	l.field("chatMsgType", "%d", m.ChatMsgType)
	l.field("text", "%q", m.Text)
	return l.String()
}

// ClientJoinChat requests entry into a chat room.
type ClientJoinChat struct {
	SteamIDChat    uint64
	IsVoiceSpeaker bool
}

func (m *ClientJoinChat) EMsg() enums.EMsg { return enums.EMsgClientJoinChat }

func (m *ClientJoinChat) MarshalBinary() ([]byte, error) {
	w := newWriter(joinChatSize)
	w.u64(m.SteamIDChat)
	w.u8(boolByte(m.IsVoiceSpeaker))
	return w.bytes(), nil
}

func (m *ClientJoinChat) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.need("ClientJoinChat", joinChatSize); err != nil {
		return err
	}
	m.SteamIDChat, _ = r.u64("steamIdChat")
	flag, _ := r.u8("isVoiceSpeaker")
	m.IsVoiceSpeaker = flag != 0
	return nil
}

func (m *ClientJoinChat) String() string {
	var l lines
	l.field("steamIdChat", "%d", m.SteamIDChat)
	l.field("isVoiceSpeaker", "%t", m.IsVoiceSpeaker)
	return l.String()
}

// ClientChatMemberInfo describes a membership change in a chat room.
type ClientChatMemberInfo struct {
	SteamIDChat        uint64
	Type               uint32
	SteamIDUserActedOn uint64
	ChatAction         uint32
	SteamIDUserActedBy uint64
}

func (m *ClientChatMemberInfo) EMsg() enums.EMsg { return enums.EMsgClientChatMemberInfo }

func (m *ClientChatMemberInfo) MarshalBinary() ([]byte, error) {
	w := newWriter(chatMemberInfoSize)
	w.u64(m.SteamIDChat)
	w.u32(m.Type)
	w.u64(m.SteamIDUserActedOn)
	w.u32(m.ChatAction)
	w.u64(m.SteamIDUserActedBy)
	return w.bytes(), nil
}

func (m *ClientChatMemberInfo) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.need("ClientChatMemberInfo", chatMemberInfoSize); err != nil {
		return err
	}
	m.SteamIDChat, _ = r.u64("steamIdChat")
	m.Type, _ = r.u32("type")
	m.SteamIDUserActedOn, _ = r.u64("steamIdUserActedOn")
	m.ChatAction, _ = r.u32("chatAction")
	m.SteamIDUserActedBy, _ = r.u64("steamIdUserActedBy")
	return nil
}

func (m *ClientChatMemberInfo) String() string {
	var l lines
	l.field("steamIdChat", "%d", m.SteamIDChat)
	l.field("type", "%d", m.Type)
	l.field("steamIdUserActedOn", "%d", m.SteamIDUserActedOn)
	l.field("chatAction", "%d", m.ChatAction)
	l.field("steamIdUserActedBy", "%d", m.SteamIDUserActedBy)
	return l.String()
}
