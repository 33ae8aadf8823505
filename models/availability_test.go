package models

import (
	"reflect"
	"testing"
)

func TestWithoutSlot(t *testing.T) {
	tests := []struct {
		name    string
		slots   []string
		slot    string
		want    []string
		removed bool
	}{
		{"first", []string{"T1", "T2", "T3"}, "T1", []string{"T2", "T3"}, true},
		{"middle", []string{"T1", "T2", "T3"}, "T2", []string{"T1", "T3"}, true},
		{"last", []string{"T1", "T2", "T3"}, "T3", []string{"T1", "T2"}, true},
		{"only first duplicate", []string{"T1", "T2", "T1"}, "T1", []string{"T2", "T1"}, true},
		{"absent", []string{"T1"}, "T9", []string{"T1"}, false},
		{"empty", nil, "T1", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := append([]string(nil), tt.slots...)
			got, removed := WithoutSlot(tt.slots, tt.slot)
			if removed != tt.removed {
				t.Fatalf("removed = %v, want %v", removed, tt.removed)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(tt.slots, original) {
				t.Errorf("input mutated: %v", tt.slots)
			}
		})
	}
}

func TestAvailability_SlotIndex(t *testing.T) {
	a := &Availability{AvailableSlots: []string{"T1", "T2"}}
	if a.SlotIndex("T2") != 1 || !a.HasSlot("T1") || a.HasSlot("T3") {
		t.Fatalf("unexpected lookup results for %v", a.AvailableSlots)
	}
}

func TestValidRole(t *testing.T) {
	for role, want := range map[string]bool{"student": true, "professor": true, "admin": false, "": false} {
		if got := ValidRole(role); got != want {
			t.Errorf("ValidRole(%q) = %v, want %v", role, got, want)
		}
	}
}
