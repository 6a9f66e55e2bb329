package protocol

import "github.com/danmuck/structmsg/internal/enums"

var builtins = []struct {
	id enums.EMsg
	f  Factory
}{
	{enums.EMsgChannelEncryptRequest, func() Message { return NewChannelEncryptRequest() }},
	{enums.EMsgChannelEncryptResponse, func() Message { return NewChannelEncryptResponse() }},
	{enums.EMsgChannelEncryptResult, func() Message { return &ChannelEncryptResult{} }},
	{enums.EMsgClientLogOnResponse, func() Message { return &ClientLogOnResponse{} }},
	{enums.EMsgClientVACBanStatus, func() Message { return &ClientVACBanStatus{} }},
	{enums.EMsgClientChatMsg, func() Message { return &ClientChatMsg{} }},
	{enums.EMsgClientJoinChat, func() Message { return &ClientJoinChat{} }},
	{enums.EMsgClientChatMemberInfo, func() Message { return &ClientChatMemberInfo{} }},
	{enums.EMsgClientMarketingMessageUpdate2, func() Message { return NewClientMarketingMessageUpdate2() }},
}

// RegisterBuiltins installs every struct message codec in r.
func RegisterBuiltins(r *Registry) {
	for _, b := range builtins {
		r.Register(b.id, b.f)
	}
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}

// Default returns the package registry holding the builtin codecs. It is
// built during package initialization and must be treated as read-only.
func Default() *Registry {
	return defaultRegistry
}

// LookupStruct returns the builtin factory for id.
func LookupStruct(id enums.EMsg) (Factory, bool) {
	return defaultRegistry.Lookup(id)
}
