package utils

import (
	"math"
	"testing"
)

func stepTest(t *testing.T, raw float64, expected float64) {
	s := NiceStep(raw)
	if math.Abs(s-expected) > expected*1e-12 {
		t.Fatalf("NiceStep(%f) != %f (got %f)\n", raw, expected, s)
	}
}

func tickTest(t *testing.T, v, step float64, expected string) {
	s := FormatTick(v, step)
	if s != expected {
		t.Fatalf("FormatTick(%f, %f) != '%s' (got '%s')\n", v, step, expected, s)
	}
}

func TestNiceStep(t *testing.T) {
	stepTest(t, 1.0, 1.0)
	stepTest(t, 0.7, 1.0)
	stepTest(t, 1.3, 2.0)
	stepTest(t, 2.2, 2.5)
	stepTest(t, 3.0, 5.0)
	stepTest(t, 7.5, 10.0)
	stepTest(t, 0.013, 0.02)
	stepTest(t, 4200, 5000)
	stepTest(t, 0, 1)
	stepTest(t, math.NaN(), 1)
}

func TestNiceTicks(t *testing.T) {
	ticks, step := NiceTicks(0, 10, 6)
	if step != 2 {
		t.Fatalf("step != 2 (got %f)", step)
	}
	expected := []float64{0, 2, 4, 6, 8, 10}
	if len(ticks) != len(expected) {
		t.Fatalf("ticks != %v (got %v)", expected, ticks)
	}
	for i := range ticks {
		if math.Abs(ticks[i]-expected[i]) > 1e-9 {
			t.Fatalf("ticks != %v (got %v)", expected, ticks)
		}
	}

	ticks, _ = NiceTicks(-1234, 987, 5)
	for _, v := range ticks {
		if v < -1234 || v > 987 {
			t.Fatalf("tick %f outside range", v)
		}
	}
	if len(ticks) < 3 {
		t.Fatalf("too few ticks: %v", ticks)
	}
	expectedPCM := []float64{-1000, -500, 0, 500}
	if len(ticks) != len(expectedPCM) {
		t.Fatalf("ticks != %v (got %v)", expectedPCM, ticks)
	}

	for _, span := range []float64{1, 7, 13, 2221, 65535, 0.37} {
		ticks, _ = NiceTicks(0, span, 5)
		if len(ticks) < 3 || len(ticks) > 8 {
			t.Fatalf("NiceTicks(0, %f, 5) gave %d ticks: %v", span, len(ticks), ticks)
		}
	}

	ticks, _ = NiceTicks(5, 5, 5)
	if len(ticks) == 0 {
		t.Fatalf("no ticks for a degenerate range")
	}
}

func TestNiceBounds(t *testing.T) {
	lo, hi := NiceBounds(-30000, 29000, 5)
	if lo > -30000 || hi < 29000 {
		t.Fatalf("bounds [%f, %f] don't cover the data", lo, hi)
	}

	lo, hi = NiceBounds(3, 3, 5)
	if lo != 2.5 || hi != 3.5 {
		t.Fatalf("degenerate bounds != [2.5, 3.5] (got [%f, %f])", lo, hi)
	}
}

func TestFormatTick(t *testing.T) {
	tickTest(t, 0, 1, "0")
	tickTest(t, 1500, 500, "1500")
	tickTest(t, 0.25, 0.25, "0.25")
	tickTest(t, 0.5, 0.25, "0.50")
	tickTest(t, -0.0000001, 0.1, "0.0")
	tickTest(t, -20, 10, "-20")
	tickTest(t, 1.2, 0.2, "1.2")
}

func TestAssert(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("Assert(false) didn't panic")
		}
	}()
	Assert(true, "not reached")
	Assert(false, "failing %d", 1)
}
