package core

import "testing"

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionNone, false},
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionConfirm, false},
		{ActionPause, false},
		{ActionQuit, false},
	}

	for _, tt := range tests {
		if got := tt.action.IsDirection(); got != tt.want {
			t.Errorf("%v.IsDirection() = %v, expected %v", tt.action, got, tt.want)
		}
	}
}
