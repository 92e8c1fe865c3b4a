package matrix

import (
	"errors"
	"testing"
)

func assertShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func assertElement[T Element](t *testing.T, m *Matrix[T], i, j int, expected T) {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d, %d) failed: %v", i, j, err)
	}
	if v != expected {
		t.Errorf("At(%d, %d) = %v, want %v", i, j, v, expected)
	}
}

func mustFromRows[T Element](t *testing.T, rows [][]T) *Matrix[T] {
	t.Helper()
	m, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	return m
}

// Shape Tests

func TestShapeSize(t *testing.T) {
	tests := []struct {
		shape Shape
		size  int
	}{
		{NewShape(2, 3), 6},
		{NewShape(1, 1), 1},
		{NewShape(0, 5), 0},
		{NewShape(5, 0), 0},
		{NewShape(0, 0), 0},
	}
	for _, tt := range tests {
		if got := tt.shape.Size(); got != tt.size {
			t.Errorf("Shape%v.Size() = %d, want %d", tt.shape, got, tt.size)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := NewShape(2, 3).Validate(); err != nil {
		t.Errorf("expected (2, 3) to be valid, got: %v", err)
	}
	if err := NewShape(0, 0).Validate(); err != nil {
		t.Errorf("expected (0, 0) to be valid, got: %v", err)
	}
	if err := NewShape(-1, 3).Validate(); !errors.Is(err, ErrNegativeDimension) {
		t.Errorf("expected ErrNegativeDimension for (-1, 3), got: %v", err)
	}
	if err := NewShape(2, -4).Validate(); !errors.Is(err, ErrNegativeDimension) {
		t.Errorf("expected ErrNegativeDimension for (2, -4), got: %v", err)
	}
}

func TestShapeString(t *testing.T) {
	if got := NewShape(2, 3).String(); got != "(2, 3)" {
		t.Errorf("String() = %q, want %q", got, "(2, 3)")
	}
}

// Construction Tests

func TestNewZeroFilled(t *testing.T) {
	m, err := New[float64](NewShape(3, 4))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	assertShape(t, NewShape(3, 4), m.Shape(), "New shape")
	if m.Size() != 12 {
		t.Errorf("Size() = %d, want 12", m.Size())
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			assertElement(t, m, i, j, 0.0)
		}
	}
}

func TestNewNegativeDimension(t *testing.T) {
	if _, err := New[int](NewShape(-2, 3)); !errors.Is(err, ErrNegativeDimension) {
		t.Errorf("expected ErrNegativeDimension, got: %v", err)
	}
}

func TestNewZeroSized(t *testing.T) {
	m, err := New[int](NewShape(0, 3))
	if err != nil {
		t.Fatalf("New(0, 3) failed: %v", err)
	}
	if !m.IsEmpty() {
		t.Error("expected a (0, 3) matrix to be empty")
	}
	assertShape(t, NewShape(0, 3), m.Shape(), "zero-row shape")
}

func TestFull(t *testing.T) {
	m, err := Full(NewShape(2, 2), 7)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assertElement(t, m, i, j, 7)
		}
	}
}

func TestFromRows(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})

	assertShape(t, NewShape(2, 3), m.Shape(), "FromRows shape")
	assertElement(t, m, 0, 0, 0)
	assertElement(t, m, 0, 2, 2)
	assertElement(t, m, 1, 0, 3)
	assertElement(t, m, 1, 2, 5)
}

func TestFromRowsSingleRow(t *testing.T) {
	m := mustFromRows(t, [][]float32{{1.5, 2.5}})
	assertShape(t, NewShape(1, 2), m.Shape(), "single-row shape")
	assertElement(t, m, 0, 1, 2.5)
}

func TestFromRowsEmpty(t *testing.T) {
	if _, err := FromRows([][]int{}); !errors.Is(err, ErrEmptyRows) {
		t.Errorf("expected ErrEmptyRows, got: %v", err)
	}
	if _, err := FromRows[int](nil); !errors.Is(err, ErrEmptyRows) {
		t.Errorf("expected ErrEmptyRows for nil rows, got: %v", err)
	}
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]int{{0, 1, 2}, {3, 4}})
	if !errors.Is(err, ErrRaggedRows) {
		t.Errorf("expected ErrRaggedRows, got: %v", err)
	}
}

func TestFromRowsEmptyInnerRows(t *testing.T) {
	// Rows of length zero are consistent, so this is a legal (2, 0) matrix.
	m, err := FromRows([][]int{{}, {}})
	if err != nil {
		t.Fatalf("FromRows of empty rows failed: %v", err)
	}
	assertShape(t, NewShape(2, 0), m.Shape(), "empty-inner-rows shape")
	if !m.IsEmpty() {
		t.Error("expected a (2, 0) matrix to be empty")
	}
}

func TestFromSlice(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5}
	m, err := FromSlice(data, NewShape(2, 3))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	assertElement(t, m, 1, 1, 4)

	// The matrix owns a copy, not the caller's slice.
	data[0] = 99
	assertElement(t, m, 0, 0, 0)
}

func TestFromSliceSizeMismatch(t *testing.T) {
	_, err := FromSlice([]int{1, 2, 3}, NewShape(2, 2))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got: %v", err)
	}
}

func TestEye(t *testing.T) {
	m, err := Eye[float64](3)
	if err != nil {
		t.Fatalf("Eye failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assertElement(t, m, i, j, want)
		}
	}
}

// Indexing Tests

func TestAtOutOfBounds(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})

	tests := []struct{ i, j int }{
		{2, 0},  // row == rows
		{0, 3},  // col == cols
		{-1, 0}, // negative row
		{0, -1}, // negative col
		{5, 5},
	}
	for _, tt := range tests {
		if _, err := m.At(tt.i, tt.j); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("At(%d, %d): expected ErrIndexOutOfBounds, got: %v", tt.i, tt.j, err)
		}
	}
}

func TestSet(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1}, {2, 3}})
	if err := m.Set(1, 0, 42); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	assertElement(t, m, 1, 0, 42)

	if err := m.Set(2, 0, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got: %v", err)
	}
}

func TestMustAtPanics(t *testing.T) {
	m := mustFromRows(t, [][]int{{1}})
	defer func() {
		if recover() == nil {
			t.Error("MustAt on an out-of-bounds index should panic")
		}
	}()
	m.MustAt(1, 0)
}

func TestClone(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	c := m.Clone()

	if !m.Equal(c) {
		t.Error("clone should equal its source")
	}

	// Mutating the clone must not touch the original.
	if err := c.Set(0, 0, 99); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	assertElement(t, m, 0, 0, 1)
}

func TestString(t *testing.T) {
	m := mustFromRows(t, [][]int{{0, 1, 2}, {3, 4, 5}})
	want := "[[0 1 2] [3 4 5]]"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
