package graphics

import "testing"

func TestColor_Channels(t *testing.T) {
	c := RGBA8(0x11, 0x22, 0x33, 0x44)
	r, g, b, a := c.Channels()
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("expected 11 22 33 44, got %x %x %x %x", r, g, b, a)
	}
	if uint32(c) != 0x44112233 {
		t.Errorf("expected ARGB layout 0x44112233, got 0x%08X", uint32(c))
	}
}

func TestColor_LightenSaturates(t *testing.T) {
	got := RGB(0xA0, 0x00, 0x10).Lighten()
	// (160+50)*1.2 = 252, (0+50)*1.2 = 60, (16+50)*1.2 = 79
	if want := RGB(252, 60, 79); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := RGB(0xFF, 0xFF, 0xFF).Lighten(); got != ColorWhite {
		t.Errorf("expected white to saturate, got %v", got)
	}
}

func TestColor_Darken(t *testing.T) {
	got := RGBA8(100, 200, 0, 0x80).Darken()
	if want := RGBA8(80, 160, 0, 0x80); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#a0a0a0", ColorGray, false},
		{"ff000080", RGBA8(0xFF, 0, 0, 0x80), false},
		{" #000000 ", ColorBlack, false},
		{"#fff", 0, true},
		{"#gggggg", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColor_ImplementsColorColor(t *testing.T) {
	r, _, _, a := ColorRed.RGBA()
	if r != 0xFFFF || a != 0xFFFF {
		t.Errorf("expected opaque red, got r=%x a=%x", r, a)
	}
}
