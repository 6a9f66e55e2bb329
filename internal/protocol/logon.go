package protocol

import "github.com/danmuck/structmsg/internal/enums"

// ClientLogOnResponse reports the outcome of a logon attempt.
type ClientLogOnResponse struct {
	Result enums.EResult
}

func (m *ClientLogOnResponse) EMsg() enums.EMsg { return enums.EMsgClientLogOnResponse }

func (m *ClientLogOnResponse) MarshalBinary() ([]byte, error) {
	return marshalResult(m.Result), nil
}

func (m *ClientLogOnResponse) UnmarshalBinary(data []byte) error {
	res, err := unmarshalResult("ClientLogOnResponse", data)
	if err != nil {
		return err
	}
	m.Result = res
	return nil
}

func (m *ClientLogOnResponse) String() string {
	var l lines
	l.field("eresult", "%s", m.Result)
	return l.String()
}

// ClientVACBanStatus carries a chat identifier truncated to 32 bits on the
// wire, unlike the 64-bit chat identifiers used elsewhere.
type ClientVACBanStatus struct {
	SteamIDChat uint32
}

func (m *ClientVACBanStatus) EMsg() enums.EMsg { return enums.EMsgClientVACBanStatus }

func (m *ClientVACBanStatus) MarshalBinary() ([]byte, error) {
	w := newWriter(sizeU32)
	w.u32(m.SteamIDChat)
	return w.bytes(), nil
}

func (m *ClientVACBanStatus) UnmarshalBinary(data []byte) error {
	v, err := newReader(data).u32("steamIdChat")
	if err != nil {
		return err
	}
	m.SteamIDChat = v
	return nil
}

func (m *ClientVACBanStatus) String() string {
	var l lines
	l.field("steamIdChat", "%d", m.SteamIDChat)
	return l.String()
}
