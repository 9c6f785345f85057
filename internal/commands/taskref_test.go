package commands

import (
	"testing"
)

func TestParseTaskNumber_Numeric(t *testing.T) {
	num, err := ParseTaskNumber([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 5 {
		t.Errorf("expected 5, got %d", num)
	}
}

func TestParseTaskNumber_LeadingZeros(t *testing.T) {
	num, err := ParseTaskNumber([]string{"007"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 7 {
		t.Errorf("expected 7, got %d", num)
	}
}

func TestParseTaskNumber_Zero(t *testing.T) {
	num, err := ParseTaskNumber([]string{"0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 0 {
		t.Errorf("expected 0, got %d", num)
	}
}

func TestParseTaskNumber_NoArgs(t *testing.T) {
	_, err := ParseTaskNumber(nil)
	if err != ErrTaskNumberRequired {
		t.Errorf("expected ErrTaskNumberRequired, got %v", err)
	}
}

func TestParseTaskNumber_Invalid(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"abc"}, "invalid task number: abc"},
		{[]string{"-1"}, "invalid task number: -1"},
		{[]string{"+2"}, "invalid task number: +2"},
		{[]string{"1.5"}, "invalid task number: 1.5"},
		{[]string{"１"}, "invalid task number: １"},
		{[]string{"1", "2"}, "invalid task number: 1 2"},
		{[]string{"99999999999999999999999"}, "invalid task number: 99999999999999999999999"},
	}

	for _, tt := range tests {
		_, err := ParseTaskNumber(tt.args)
		if err == nil {
			t.Errorf("%v: expected error", tt.args)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.args, tt.want, err.Error())
		}
	}
}
