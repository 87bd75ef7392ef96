package sharefile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// wireValue is the JSON form of EncodedValue. Base and value may be written
// either as strings or as bare numbers.
type wireValue struct {
	Base  scalar `json:"base"`
	Value scalar `json:"value"`
}

func (v wireValue) encoded() EncodedValue {
	return EncodedValue{Base: string(v.Base), Value: string(v.Value)}
}

type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = scalar(num.String())
	return nil
}
