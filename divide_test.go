package nosandbox

import (
	"math"
	"testing"
)

func i32(v int32) uint32 { return uint32(v) }
func i64(v int64) uint64 { return uint64(v) }

func TestSignedDivisionTruncates(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want int32
	}{
		{"div_s(-7, 2)", I32DivS(i32(-7), 2), -3},
		{"rem_s(-7, 2)", I32RemS(i32(-7), 2), -1},
		{"div_s(7, -2)", I32DivS(7, i32(-2)), -3},
		{"rem_s(7, -2)", I32RemS(7, i32(-2)), 1},
		{"div_s(-7, -2)", I32DivS(i32(-7), i32(-2)), 3},
		{"rem_s(-7, -2)", I32RemS(i32(-7), i32(-2)), -1},
		{"rem_s(min, -1)", I32RemS(i32(math.MinInt32), i32(-1)), 0},
	}

	for _, tt := range tests {
		if int32(tt.got) != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, int32(tt.got), tt.want)
		}
	}

	if got := int64(I64DivS(i64(-7), 2)); got != -3 {
		t.Errorf("i64 div_s(-7, 2) = %d", got)
	}
	if got := int64(I64RemS(i64(-7), 2)); got != -1 {
		t.Errorf("i64 rem_s(-7, 2) = %d", got)
	}
	if got := int64(I64DivS(i64(math.MinInt64), 2)); got != math.MinInt64/2 {
		t.Errorf("i64 div_s(min, 2) = %d", got)
	}
}

func TestUnsignedDivision(t *testing.T) {
	if got := I32DivU(0xFFFFFFFF, 2); got != 0x7FFFFFFF {
		t.Errorf("div_u32(0xFFFFFFFF, 2) = %#x", got)
	}
	if got := I32RemU(0xFFFFFFFF, 2); got != 1 {
		t.Errorf("rem_u32(0xFFFFFFFF, 2) = %d", got)
	}
	if got := I32DivU(i32(-7), 2); got != 0x7FFFFFFC {
		t.Errorf("div_u32(-7, 2) = %#x", got)
	}
	if got := I64DivU(math.MaxUint64, 2); got != math.MaxInt64 {
		t.Errorf("div_u64(max, 2) = %#x", got)
	}
	if got := I64RemU(math.MaxUint64, 10); got != 5 {
		t.Errorf("rem_u64(max, 10) = %d", got)
	}
}

func TestZeroDivisorIsNotChecked(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected the host runtime to fault on a zero divisor")
		}
	}()
	var zero uint32
	_ = I32DivU(1, zero)
}
