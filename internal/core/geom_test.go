package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "zero width never intersects",
			a:        NewRect(5, 0, 0, 10),
			b:        NewRect(0, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := tc.a.Intersects(tc.b); result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			if result := tc.b.Intersects(tc.a); result != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := r.Contains(tc.x, tc.y); result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(100, 100, 45, 45).Inset(2)
	if r != NewRect(102, 102, 41, 41) {
		t.Errorf("Inset(2) = %+v", r)
	}

	grown := NewRect(0, 0, 10, 10).Inset(-1)
	if grown != NewRect(-1, -1, 12, 12) {
		t.Errorf("Inset(-1) = %+v", grown)
	}

	if !NewRect(0, 0, 4, 4).Inset(2).Empty() {
		t.Error("fully inset rect should be empty")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}

	moved := r.MoveTo(0, 0)
	if moved.X != 0 || moved.Y != 0 || moved.W != 20 || moved.H != 15 {
		t.Errorf("MoveTo() = %+v", moved)
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(10, 10, 20, 20)
	b := NewRect(0, 25, 5, 30)

	if got, want := a.Union(b), NewRect(0, 10, 30, 45); got != want {
		t.Errorf("Union() = %+v, expected %+v", got, want)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union(empty) = %+v, expected %+v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty.Union() = %+v, expected %+v", got, b)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{90, 45, 2},
		{40, 45, 1},
		{130, 45, 3},
		{0, 45, 0},
		{-5, 45, 0},
	}

	for _, tc := range tests {
		if result := CeilDiv(tc.a, tc.b); result != tc.expected {
			t.Errorf("CeilDiv(%d, %d) = %d, expected %d", tc.a, tc.b, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
