package exchangeset_test

import (
	"reflect"
	"testing"

	"github.com/dalemusser/tradedesk/internal/app/system/exchangeset"
)

func TestParse(t *testing.T) {
	s := exchangeset.Parse(" Kraken, Bitstamp,,kraken ,GDAX")
	want := []string{"Kraken", "Bitstamp", "GDAX"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names: got %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len: got %d", s.Len())
	}
}

func TestCanonical(t *testing.T) {
	s := exchangeset.New("Kraken")
	name, ok := s.Canonical(" KRAKEN ")
	if !ok || name != "Kraken" {
		t.Errorf("Canonical: got %q, %v", name, ok)
	}
	if _, ok := s.Canonical("Poloniex"); ok {
		t.Error("Poloniex should not be enabled")
	}
}

func TestParse_Empty(t *testing.T) {
	s := exchangeset.Parse("")
	if s.Len() != 0 || len(s.Names()) != 0 {
		t.Errorf("expected empty set, got %v", s.Names())
	}
}
