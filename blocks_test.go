package isoterra

import (
	"image/color"
	"testing"
)

func TestParseBlock(t *testing.T) {
	cases := []struct {
		in   string
		want Block
	}{
		{"rock", Rock},
		{"Rock", Rock},
		{"WATER", Water},
		{"grass", Grass},
		{"soil", Soil},
		{"empty", Empty},
	}
	for _, c := range cases {
		got, err := ParseBlock(c.in)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parsed %q as %q, expected %q", c.in, got, c.want)
		}
	}

	_, err := ParseBlock("lava")
	if err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestBlockIDRoundTrip(t *testing.T) {
	for _, b := range AllBlocks() {
		if blockForID(b.ID()) != b {
			t.Fatalf("block %q does not survive the id round trip", b)
		}
	}

	if blockForID(99) != Empty {
		t.Fatal("unknown ids should map to Empty")
	}
	if Block("lava").ID() != 0 {
		t.Fatal("unknown blocks should map to id 0")
	}
}

func TestBlockUnmarshalText(t *testing.T) {
	var b Block
	if err := b.UnmarshalText([]byte("Grass")); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if b != Grass {
		t.Fatalf("expected grass, got %q", b)
	}

	if err := b.UnmarshalText([]byte("lava")); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestBlockColour(t *testing.T) {
	if Empty.Colour() != (color.RGBA{}) {
		t.Fatal("empty should have no colour")
	}
	for _, b := range []Block{Rock, Grass, Soil, Water} {
		if b.Colour().A != 255 {
			t.Fatalf("expected %q to be opaque", b)
		}
	}
}
