package labyrinth

import "testing"

func TestReverseSingleDirections(t *testing.T) {
	tests := []struct {
		in, want Direction
	}{
		{DirNone, DirNone},
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := Reverse(tt.in); got != tt.want {
				t.Errorf("Reverse(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got := Reverse(Reverse(tt.in)); got != tt.in {
				t.Errorf("Reverse(Reverse(%v)) = %v", tt.in, got)
			}
		})
	}
}

func TestReverseMasksSwapPairsIndependently(t *testing.T) {
	for m := Direction(0); m <= DirAll; m++ {
		got := m.Reverse()
		if got.Has(DirUp) != m.Has(DirDown) || got.Has(DirDown) != m.Has(DirUp) {
			t.Errorf("Reverse(%v) = %v: vertical pair not swapped", m, got)
		}
		if got.Has(DirLeft) != m.Has(DirRight) || got.Has(DirRight) != m.Has(DirLeft) {
			t.Errorf("Reverse(%v) = %v: horizontal pair not swapped", m, got)
		}
		if got.Reverse() != m {
			t.Errorf("Reverse is not involutive on %v", m)
		}
	}
}

func TestDirectionIsSingle(t *testing.T) {
	tests := []struct {
		d    Direction
		want bool
	}{
		{DirNone, false},
		{DirUp, true},
		{DirDown, true},
		{DirLeft, true},
		{DirRight, true},
		{DirUp | DirLeft, false},
		{DirAll, false},
		{DirMax, false},
	}
	for _, tt := range tests {
		if got := tt.d.IsSingle(); got != tt.want {
			t.Errorf("%v.IsSingle() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDirectionDeltaOppositeOfReverse(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		a, b := d.Delta(), d.Reverse().Delta()
		if a.Add(b) != (Vec2i{}) {
			t.Errorf("%v.Delta() + reverse = %v, want zero", d, a.Add(b))
		}
	}
	if (DirUp | DirRight).Delta() != (Vec2i{}) {
		t.Error("mask Delta should be zero")
	}
}

func TestDirectionStringParseRoundtrip(t *testing.T) {
	for m := Direction(0); m <= DirAll; m++ {
		got, err := ParseDirection(m.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseDirection(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", DirUp, false},
		{"  Left ", DirLeft, false},
		{"up|down", DirUp | DirDown, false},
		{"", DirNone, false},
		{"none", DirNone, false},
		{"north", DirNone, true},
		{"up|sideways", DirNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
