package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:     PhaseEvaluate,
				Kind:      KindUndefined,
				Intrinsic: "i32.div_s",
				ValType:   "i32",
				Detail:    "zero divisor",
			},
			contains: []string{"[evaluate]", "undefined_behavior", "in i32.div_s", "(i32)", "zero divisor"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseMap,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[map]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCompile,
				Kind:   KindCompile,
				Detail: "reference module",
				Cause:  errors.New("invalid opcode"),
			},
			contains: []string{"[compile]", "compile", "reference module", "caused by", "invalid opcode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseInstantiate, KindInstantiation, cause, "reference module")

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:     PhaseEvaluate,
		Kind:      KindNotFound,
		Intrinsic: "foo",
	}

	if !err.Is(&Error{Phase: PhaseEvaluate, Kind: KindNotFound}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseMap, Kind: KindNotFound}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseEvaluate, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	var target *Error
	if !errors.As(error(err), &target) || target.Intrinsic != "foo" {
		t.Error("errors.As should extract *Error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEvaluate, KindUndefined).
		Intrinsic("i64.div_s").
		ValType("i64").
		Value([]uint64{1, 0}).
		Cause(cause).
		Detail("divisor %d", 0).
		Build()

	if err.Phase != PhaseEvaluate || err.Kind != KindUndefined {
		t.Errorf("Phase/Kind = %v/%v", err.Phase, err.Kind)
	}
	if err.Intrinsic != "i64.div_s" || err.ValType != "i64" {
		t.Errorf("Intrinsic/ValType = %v/%v", err.Intrinsic, err.ValType)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v", err.Cause)
	}
	if err.Detail != "divisor 0" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if New(PhaseConfig, KindInvalidInput).Detail("100%").Build().Detail != "100%" {
		t.Error("Detail without args must not be formatted")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseMap, 65535, 4, 65536)
		if err.Kind != KindOutOfBounds || err.Value != uint64(65535) {
			t.Errorf("got %+v", err)
		}
		if !strings.Contains(err.Detail, "4 bytes at offset 65535") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("NilPointer", func(t *testing.T) {
		if err := NilPointer(PhaseMap, "memory"); err.Detail != "nil memory" {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseEvaluate, "intrinsic", "v128.load")
		if err.Kind != KindNotFound || !strings.Contains(err.Detail, `"v128.load"`) {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("Undefined", func(t *testing.T) {
		err := Undefined(PhaseEvaluate, "i32.rem_u", []uint64{3, 0})
		if err.Kind != KindUndefined || err.Intrinsic != "i32.rem_u" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("Execution", func(t *testing.T) {
		cause := errors.New("trap")
		err := Execution("i32.load", "i32", cause)
		if err.Kind != KindExecution || !errors.Is(err, cause) {
			t.Errorf("got %+v", err)
		}
		if err.ValType != "i32" || !strings.Contains(err.Error(), "in i32.load (i32)") {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		if err := InvalidInput(PhaseConfig, "pages must be positive"); err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v", err.Kind)
		}
	})
}
