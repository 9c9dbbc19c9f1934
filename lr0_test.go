package lr0

import "testing"

func TestSpan(t *testing.T) {
	s := Span{2, 7}
	if s.From() != 2 {
		t.Errorf("expected span (2…7), is %v", s)
	}
	if s.Len() != 5 {
		t.Errorf("expected length 5, is %d", s.Len())
	}
	if s.String() != "(2…7)" {
		t.Errorf("unexpected span format %s", s)
	}
}

func TestPositionString(t *testing.T) {
	if p := (Position{Line: 3, Column: 14}); p.String() != "3:14" {
		t.Errorf("expected 3:14, is %s", p)
	}
}
