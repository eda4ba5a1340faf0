package models

import (
	"encoding/json"
	"testing"
)

func TestSemesterUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Semester
	}{
		{"string", `"3"`, "3"},
		{"number", `3`, "3"},
		{"float", `3.0`, "3"},
		{"null", `null`, ""},
		{"word", `"Fall"`, "Fall"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Semester
			if err := json.Unmarshal([]byte(tt.in), &s); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if s != tt.want {
				t.Errorf("got %q, want %q", s, tt.want)
			}
		})
	}
}

func TestSemesterEqual(t *testing.T) {
	if !Semester("3").Equal(Semester("3")) {
		t.Error("identical strings should match")
	}
	if !Semester(" 3 ").Equal(Semester("3")) {
		t.Error("trimmed forms should match")
	}
	if Semester("3").Equal(Semester("4")) {
		t.Error("different terms should not match")
	}
}

func TestSemesterNum(t *testing.T) {
	if got := Semester("7").Num(); got != 7 {
		t.Errorf("Num(7) = %d", got)
	}
	if got := Semester("Fall").Num(); got != 0 {
		t.Errorf("non-numeric semester should order as 0, got %d", got)
	}
}

func TestMoneyUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Money
	}{
		{"number", `45000`, 45000},
		{"numeric string", `"45000"`, 45000},
		{"junk string", `"N/A"`, 0},
		{"null", `null`, 0},
		{"object", `{"amount":1}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			if err := json.Unmarshal([]byte(tt.in), &m); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if m != tt.want {
				t.Errorf("got %v, want %v", m, tt.want)
			}
		})
	}
}

func TestMoneyScan(t *testing.T) {
	var m Money
	if err := m.Scan([]byte("1200.50")); err != nil || m != 1200.50 {
		t.Errorf("Scan bytes: %v, %v", m, err)
	}
	if err := m.Scan(nil); err != nil || m != 0 {
		t.Errorf("Scan nil: %v, %v", m, err)
	}
	if err := m.Scan("garbage"); err != nil || m != 0 {
		t.Errorf("Scan garbage should coerce to 0: %v, %v", m, err)
	}
}
