package geom

import "testing"

func TestCanon(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want Rect
	}{
		{
			name: "already valid",
			rect: Rect{X: 1, Y: 2, Width: 3, Height: 4},
			want: Rect{X: 1, Y: 2, Width: 3, Height: 4},
		},
		{
			name: "negative width",
			rect: Rect{X: 10, Y: 10, Width: -5, Height: 4},
			want: Rect{X: 10, Y: 10, Width: 0, Height: 4},
		},
		{
			name: "negative height",
			rect: Rect{X: 10, Y: 10, Width: 5, Height: -4},
			want: Rect{X: 10, Y: 10, Width: 5, Height: 0},
		},
		{
			name: "both negative",
			rect: Rect{Width: -1, Height: -1},
			want: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Canon(); got != tt.want {
				t.Errorf("Canon() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	if got := r.MinX(); got != 10 {
		t.Errorf("MinX() = %v, want 10", got)
	}
	if got := r.MaxX(); got != 40 {
		t.Errorf("MaxX() = %v, want 40", got)
	}
	if got := r.MinY(); got != 20 {
		t.Errorf("MinY() = %v, want 20", got)
	}
	if got := r.MaxY(); got != 60 {
		t.Errorf("MaxY() = %v, want 60", got)
	}
	if got := r.CenterX(); got != 25 {
		t.Errorf("CenterX() = %v, want 25", got)
	}
	if got := r.CenterY(); got != 40 {
		t.Errorf("CenterY() = %v, want 40", got)
	}
}

func TestRectAt(t *testing.T) {
	r := RectAt(Point{X: 50, Y: 50})

	if want := (Rect{X: 50, Y: 50}); r != want {
		t.Errorf("RectAt() = %+v, want %+v", r, want)
	}
	if !r.IsEmpty() {
		t.Error("point rect should have zero area")
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 5, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 20, Y: 20, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "edge touching",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 10, Y: 0, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 40, Y: 40, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "zero area never overlaps",
			a:    Rect{X: 5, Y: 5},
			b:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlap() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlap(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlap() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	boundary := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{
			name: "fully inside",
			rect: Rect{X: 10, Y: 10, Width: 20, Height: 20},
			want: true,
		},
		{
			name: "flush to edges",
			rect: Rect{X: 0, Y: 0, Width: 100, Height: 100},
			want: true,
		},
		{
			name: "protrudes right",
			rect: Rect{X: 90, Y: 10, Width: 20, Height: 20},
			want: false,
		},
		{
			name: "protrudes top",
			rect: Rect{X: 10, Y: -5, Width: 20, Height: 20},
			want: false,
		},
		{
			name: "zero area inside",
			rect: Rect{X: 50, Y: 50},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(boundary, tt.rect); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverflow(t *testing.T) {
	boundary := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name string
		rect Rect
		want OverflowEdges
	}{
		{
			name: "centered with slack",
			rect: Rect{X: 40, Y: 40, Width: 20, Height: 20},
			want: OverflowEdges{Top: -40, Right: -40, Bottom: -40, Left: -40},
		},
		{
			name: "overflows bottom right",
			rect: Rect{X: 90, Y: 90, Width: 20, Height: 20},
			want: OverflowEdges{Top: -90, Right: 10, Bottom: 10, Left: -90},
		},
		{
			name: "overflows top left",
			rect: Rect{X: -10, Y: -10, Width: 20, Height: 20},
			want: OverflowEdges{Top: 10, Right: -90, Bottom: -90, Left: 10},
		},
		{
			name: "flush has zero overflow",
			rect: Rect{X: 0, Y: 0, Width: 100, Height: 100},
			want: OverflowEdges{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overflow(tt.rect, boundary)
			if got != tt.want {
				t.Errorf("Overflow() = %+v, want %+v", got, tt.want)
			}
			if wantAny := tt.want.Top > 0 || tt.want.Right > 0 || tt.want.Bottom > 0 || tt.want.Left > 0; got.Any() != wantAny {
				t.Errorf("Any() = %v, want %v", got.Any(), wantAny)
			}
		})
	}
}
