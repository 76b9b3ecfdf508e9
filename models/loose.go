package models

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// LooseText holds a JSON scalar that upstream sends either quoted or bare,
// e.g. "timeslot": 3 and "timeslot": "3" both decode to "3".
type LooseText string

func (t *LooseText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = LooseText(s)
		return nil
	}
	*t = LooseText(data)
	return nil
}

func (t LooseText) String() string {
	return string(t)
}
