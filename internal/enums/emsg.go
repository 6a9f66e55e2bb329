package enums

// EMsg identifies a protocol message kind.
type EMsg uint32

// Subset of the message type table covering the struct-encoded messages.
const (
	EMsgInvalid                       EMsg = 0
	EMsgMulti                         EMsg = 1
	EMsgClientLogOnResponse           EMsg = 751
	EMsgClientVACBanStatus            EMsg = 782
	EMsgClientChatMsg                 EMsg = 823
	EMsgClientJoinChat                EMsg = 824
	EMsgClientChatMemberInfo          EMsg = 826
	EMsgChannelEncryptRequest         EMsg = 1303
	EMsgChannelEncryptResponse        EMsg = 1304
	EMsgChannelEncryptResult          EMsg = 1305
	EMsgClientHeartBeat               EMsg = 703
	EMsgClientMarketingMessageUpdate2 EMsg = 5510
)

var emsgTable = newTable("EMsg", map[EMsg]string{
	EMsgInvalid:                       "Invalid",
	EMsgMulti:                         "Multi",
	EMsgClientLogOnResponse:           "ClientLogOnResponse",
	EMsgClientVACBanStatus:            "ClientVACBanStatus",
	EMsgClientChatMsg:                 "ClientChatMsg",
	EMsgClientJoinChat:                "ClientJoinChat",
	EMsgClientChatMemberInfo:          "ClientChatMemberInfo",
	EMsgChannelEncryptRequest:         "ChannelEncryptRequest",
	EMsgChannelEncryptResponse:        "ChannelEncryptResponse",
	EMsgChannelEncryptResult:          "ChannelEncryptResult",
	EMsgClientHeartBeat:               "ClientHeartBeat",
	EMsgClientMarketingMessageUpdate2: "ClientMarketingMessageUpdate2",
})

// MsgDomain resolves message type identifiers.
var MsgDomain Domain = emsgTable

func (m EMsg) String() string {
	return emsgTable.format(m)
}

// Known reports whether m has a symbolic name.
func (m EMsg) Known() bool {
	_, ok := emsgTable.names[m]
	return ok
}
