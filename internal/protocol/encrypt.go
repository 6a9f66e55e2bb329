package protocol

import "github.com/danmuck/structmsg/internal/enums"

const (
	// KeyBufferSize is the fixed width of the session key buffer.
	KeyBufferSize = 128

	defaultProtocolVersion = 1

	encryptRequestPrefix = sizeU32 + sizeU32
	encryptResponseSize  = sizeU32 + sizeU32 + KeyBufferSize + sizeU32 + sizeU32
	resultSize           = sizeU32
)

// ChannelEncryptRequest opens the encryption handshake.
type ChannelEncryptRequest struct {
	ProtocolVersion uint32
	Universe        enums.EUniverse
	Challenge       []byte
}

func NewChannelEncryptRequest() *ChannelEncryptRequest {
	return &ChannelEncryptRequest{ProtocolVersion: defaultProtocolVersion, Universe: enums.EUniverseInvalid}
}

func (m *ChannelEncryptRequest) EMsg() enums.EMsg { return enums.EMsgChannelEncryptRequest }

func (m *ChannelEncryptRequest) MarshalBinary() ([]byte, error) {
	w := newWriter(encryptRequestPrefix + len(m.Challenge))
	w.u32(m.ProtocolVersion)
	w.u32(uint32(m.Universe))
	w.raw(m.Challenge)
	return w.bytes(), nil
}

func (m *ChannelEncryptRequest) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.need("ChannelEncryptRequest", encryptRequestPrefix); err != nil {
		return err
	}
	version, _ := r.u32("protocolVersion")
	universe, _ := r.u32("universe")
	if err := resolveEnum("universe", enums.UniverseDomain, universe); err != nil {
		return err
	}
	m.ProtocolVersion = version
	m.Universe = enums.EUniverse(universe)
	m.Challenge = nil
	if r.remaining() > 0 {
		m.Challenge = r.rest()
	}
	return nil
}

func (m *ChannelEncryptRequest) String() string {
	var l lines
	l.field("protocolVersion", "%d", m.ProtocolVersion)
	l.field("universe", "%s", m.Universe)
	l.field("challenge", "%x", m.Challenge)
	return l.String()
}

// ChannelEncryptResponse carries the encrypted session key.
//
// Key is written truncated or zero padded to KeyBufferSize; decode always
// yields the full buffer.
type ChannelEncryptResponse struct {
	ProtocolVersion uint32
	KeySize         uint32
	Key             []byte
	CRC             uint32
}

func NewChannelEncryptResponse() *ChannelEncryptResponse {
	return &ChannelEncryptResponse{ProtocolVersion: defaultProtocolVersion, KeySize: KeyBufferSize}
}

func (m *ChannelEncryptResponse) EMsg() enums.EMsg { return enums.EMsgChannelEncryptResponse }

func (m *ChannelEncryptResponse) MarshalBinary() ([]byte, error) {
	w := newWriter(encryptResponseSize)
	w.u32(m.ProtocolVersion)
	w.u32(m.KeySize)
	w.fixed(m.Key, KeyBufferSize)
	w.u32(m.CRC)
	w.u32(0)
	return w.bytes(), nil
}

func (m *ChannelEncryptResponse) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.need("ChannelEncryptResponse", encryptResponseSize); err != nil {
		return err
	}
	m.ProtocolVersion, _ = r.u32("protocolVersion")
	m.KeySize, _ = r.u32("keySize")
	m.Key, _ = r.bytes("key", KeyBufferSize)
	m.CRC, _ = r.u32("crc")
	_, _ = r.u32("reserved")
	return nil
}

func (m *ChannelEncryptResponse) String() string {
	var l lines
	l.field("protocolVersion", "%d", m.ProtocolVersion)
	l.field("keySize", "%d", m.KeySize)
	l.field("key", "%x", m.Key)
	l.field("crc", "%d", m.CRC)
	return l.String()
}

// ChannelEncryptResult closes the encryption handshake.
type ChannelEncryptResult struct {
	Result enums.EResult
}

func (m *ChannelEncryptResult) EMsg() enums.EMsg { return enums.EMsgChannelEncryptResult }

func (m *ChannelEncryptResult) MarshalBinary() ([]byte, error) {
	return marshalResult(m.Result), nil
}

func (m *ChannelEncryptResult) UnmarshalBinary(data []byte) error {
	res, err := unmarshalResult("ChannelEncryptResult", data)
	if err != nil {
		return err
	}
	m.Result = res
	return nil
}

func (m *ChannelEncryptResult) String() string {
	var l lines
	l.field("result", "%s", m.Result)
	return l.String()
}

func marshalResult(res enums.EResult) []byte {
	w := newWriter(resultSize)
	w.u32(uint32(res))
	return w.bytes()
}

func unmarshalResult(name string, data []byte) (enums.EResult, error) {
	r := newReader(data)
	if err := r.need(name, resultSize); err != nil {
		return enums.EResultInvalid, err
	}
	raw, _ := r.u32("eresult")
	if err := resolveEnum("eresult", enums.ResultDomain, raw); err != nil {
		return enums.EResultInvalid, err
	}
	return enums.EResult(raw), nil
}
