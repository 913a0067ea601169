package wasmgen

import (
	"bytes"
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

const (
	i32 byte = 0x7F
	i64 byte = 0x7E
)

func TestEncodeU32(t *testing.T) {
	tests := []struct {
		in   uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{624485, []byte{0xe5, 0x8e, 0x26}},
		{0xFFFFFFFF, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, tt := range tests {
		if got := EncodeU32(tt.in); !bytes.Equal(got, tt.want) {
			t.Errorf("EncodeU32(%d) = %x, want %x", tt.in, got, tt.want)
		}
	}
}

func TestEncode_Empty(t *testing.T) {
	var m Module
	want := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	if got := m.Encode(); !bytes.Equal(got, want) {
		t.Errorf("empty module = %x", got)
	}
}

func TestEncode_MemoryOnly(t *testing.T) {
	var m Module
	m.Memory("memory", 1)
	want := []byte{
		0x00, 0x61, 0x73, 0x6d,
		0x01, 0x00, 0x00, 0x00,
		0x05, 0x03, 0x01, 0x00, 0x01,
		0x07, 0x0a, 0x01,
		0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79,
		0x02, 0x00,
	}
	if got := m.Encode(); !bytes.Equal(got, want) {
		t.Errorf("memory module = %x\nwant            %x", got, want)
	}
}

func TestTypeDedup(t *testing.T) {
	var m Module
	bin := FuncType{Params: []byte{i32, i32}, Results: []byte{i32}}
	m.Func("a", bin, Body(LocalGet(0), LocalGet(1), []byte{0x77}))
	m.Func("b", bin, Body(LocalGet(0), LocalGet(1), []byte{0x78}))
	m.Func("c", FuncType{Params: []byte{i64}, Results: []byte{i64}}, Body(LocalGet(0), []byte{0x79}))

	if len(m.types) != 2 {
		t.Errorf("types = %d, want 2", len(m.types))
	}
	if m.NumFuncs() != 3 {
		t.Errorf("funcs = %d, want 3", m.NumFuncs())
	}
}

func TestMemOp(t *testing.T) {
	if got := MemOp(0x28, 0, 200); !bytes.Equal(got, []byte{0x28, 0x00, 0xc8, 0x01}) {
		t.Errorf("MemOp = %x", got)
	}
	if got := LocalGet(300); !bytes.Equal(got, []byte{0x20, 0xac, 0x02}) {
		t.Errorf("LocalGet = %x", got)
	}
}

func TestEncode_RunsInWazero(t *testing.T) {
	var m Module
	m.Memory("memory", 1)
	m.Func("rotl", FuncType{Params: []byte{i32, i32}, Results: []byte{i32}},
		Body(LocalGet(0), LocalGet(1), []byte{0x77}))
	m.Func("load8_s", FuncType{Params: []byte{i32}, Results: []byte{i32}},
		Body(LocalGet(0), MemOp(0x2C, 0, 0)))
	m.Func("store", FuncType{Params: []byte{i32, i64}},
		Body(LocalGet(0), LocalGet(1), MemOp(0x37, 0, 0)))

	ctx := context.Background()
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer rt.Close(ctx)

	mod, err := rt.Instantiate(ctx, m.Encode())
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}

	res, err := mod.ExportedFunction("rotl").Call(ctx, api.EncodeU32(0x80000000), 1)
	if err != nil {
		t.Fatalf("rotl: %v", err)
	}
	if uint32(res[0]) != 1 {
		t.Errorf("rotl = %#x", res[0])
	}

	mem := mod.ExportedMemory("memory")
	mem.WriteByte(7, 0xFF)
	res, err = mod.ExportedFunction("load8_s").Call(ctx, 7)
	if err != nil {
		t.Fatalf("load8_s: %v", err)
	}
	if api.DecodeI32(res[0]) != -1 {
		t.Errorf("load8_s = %#x", res[0])
	}

	if _, err := mod.ExportedFunction("store").Call(ctx, 9, 0x0102030405060708); err != nil {
		t.Fatalf("store: %v", err)
	}
	if v, _ := mem.ReadUint64Le(9); v != 0x0102030405060708 {
		t.Errorf("store wrote %#x", v)
	}
}
