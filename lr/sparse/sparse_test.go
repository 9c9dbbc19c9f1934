package sparse

import "testing"

func TestMatrixSetValue(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711)
	M.Set(0, 9, 1)
	M.Set(2, 1, 7)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if v := M.Value(5, 5); v != M.NullValue() {
		t.Errorf("expected M(5,5) to be null, is %d", v)
	}
	M.Set(2, 3, 42)
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values, have %d", M.ValueCount())
	}
	if v := M.Value(2, 3); v != 42 {
		t.Errorf("expected M(2,3) = 42 after overwrite, is %d", v)
	}
}

func TestMatrixKeepsRowMajorOrder(t *testing.T) {
	M := NewIntMatrix(4, 4, -1)
	M.Set(3, 0, 1).Set(0, 3, 2).Set(1, 1, 3).Set(0, 0, 4)
	for k := 1; k < len(M.values); k++ {
		if !M.values[k-1].storedLeftOf(M.values[k].row, M.values[k].col) {
			t.Errorf("entries %d and %d out of order", k-1, k)
		}
	}
	if M.Value(3, 0) != 1 || M.Value(0, 0) != 4 || M.ValueCount() != 4 {
		t.Errorf("unexpected matrix content")
	}
}

func TestMatrixSetOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set out of range to panic")
		}
	}()
	NewIntMatrix(2, 2, -1).Set(2, 0, 1)
}
