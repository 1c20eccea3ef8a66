package sparse

import "testing"

func TestSetAndValue(t *testing.T) {
	M := NewIntMatrix(3, 3, DefaultNullValue)
	M.Set(2, 1, 7).Set(0, 0, 1).Set(1, 2, 5)
	if v := M.Value(2, 1); v != 7 {
		t.Errorf("expected M(2,1) to be 7, is %d", v)
	}
	if v := M.Value(0, 0); v != 1 {
		t.Errorf("expected M(0,0) to be 1, is %d", v)
	}
	if v := M.Value(1, 1); v != M.NullValue() {
		t.Errorf("expected M(1,1) to be null, is %d", v)
	}
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values, have %d", M.ValueCount())
	}
}

func TestOverwrite(t *testing.T) {
	M := NewIntMatrix(1, 1, -1)
	M.Set(0, 0, 4711)
	M.Set(0, 0, 123)
	if v := M.Value(0, 0); v != 123 {
		t.Errorf("expected overwritten value 123, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 value after overwrite, have %d", M.ValueCount())
	}
}

func TestGrowAndOrder(t *testing.T) {
	M := NewIntMatrix(0, 0, -1)
	M.Set(4, 9, 3).Set(4, 2, 2).Set(0, 5, 1)
	if M.M() != 5 || M.N() != 10 {
		t.Errorf("expected extent 5 x 10, is %d x %d", M.M(), M.N())
	}
	var seen []int32
	M.Each(func(i, j int, v int32) {
		seen = append(seen, v)
	})
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Errorf("expected entries in row-major order [1 2 3], have %v", seen)
	}
	if v := M.Value(100, 100); v != -1 {
		t.Errorf("expected null-value outside of extent, is %d", v)
	}
}
