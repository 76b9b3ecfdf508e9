package models

import (
	"testing"

	"github.com/bytedance/sonic"
)

func TestLooseTextAcceptsStringsAndNumbers(t *testing.T) {
	var rows []struct {
		V LooseText `json:"v"`
	}
	payload := []byte(`[{"v":"3"},{"v":3},{"v":21.75},{"v":null},{"v":"n/a"},{}]`)
	if err := sonic.Unmarshal(payload, &rows); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	want := []LooseText{"3", "3", "21.75", "", "n/a", ""}
	for i, w := range want {
		if rows[i].V != w {
			t.Fatalf("row %d: expected %q, got %q", i, w, rows[i].V)
		}
	}
}
