package utils

import "github.com/goccy/go-json"

// StructToBytes serializes a value with the same JSON codec the HTTP
// client uses, so persisted payloads and wire payloads never diverge.
func StructToBytes(s interface{}) ([]byte, error) {
	return json.Marshal(s)
}

func BytesToStruct(data []byte, s interface{}) error {
	return json.Unmarshal(data, s)
}
