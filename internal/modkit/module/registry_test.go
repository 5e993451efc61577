package module

import (
	"reflect"
	"testing"
)

func TestRegistry_NamesSorted(t *testing.T) {
	Reset()
	defer Reset()

	Register("journal", struct{}{})
	Register("entries", struct{}{})
	Register("meta", nil)

	got := Names()
	want := []string{"entries", "journal", "meta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRegistry_Reset(t *testing.T) {
	Register("entries", struct{}{})
	Reset()
	if n := len(Names()); n != 0 {
		t.Fatalf("expected empty registry after reset, got %d names", n)
	}
}
