package dfg

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// DefSet serializes as a sorted identifier list in both msgpack and JSON,
// so encoded reports are deterministic and readable.

var (
	_ msgpack.CustomEncoder = (DefSet)(nil)
	_ msgpack.CustomDecoder = (*DefSet)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (s DefSet) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(s.Sorted())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (s *DefSet) DecodeMsgpack(dec *msgpack.Decoder) error {
	var ids []string
	if err := dec.Decode(&ids); err != nil {
		return err
	}
	*s = NewDefSet(ids...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s DefSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *DefSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewDefSet(ids...)
	return nil
}
