package conformance

import (
	"context"
	"math"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	nosandbox "github.com/wippyai/wasm-nosandbox"
	"github.com/wippyai/wasm-nosandbox/errors"
	"github.com/wippyai/wasm-nosandbox/hostmem"
	"github.com/wippyai/wasm-nosandbox/internal/wasmgen"
)

const memoryName = "memory"

// Checker evaluates intrinsics natively and in the wazero interpreter.
type Checker struct {
	rt         wazero.Runtime
	mod        api.Module
	region     *hostmem.Region
	reader     *hostmem.Reader
	log        *zap.Logger
	funcs      map[string]api.Function
	intrinsics []nosandbox.Intrinsic
	cfg        config
}

// New compiles and instantiates the reference module.
func New(ctx context.Context, opts ...Option) (*Checker, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	intrinsics, err := selectIntrinsics(cfg.only)
	if err != nil {
		return nil, err
	}

	bin := referenceModule(intrinsics, cfg.pages)
	cfg.log.Debug("reference module encoded",
		zap.Int("intrinsics", len(intrinsics)),
		zap.Int("bytes", len(bin)))

	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	compiled, err := rt.CompileModule(ctx, bin)
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseCompile, errors.KindCompile, err, "reference module")
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("nosandbox-reference"))
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseInstantiate, errors.KindInstantiation, err, "reference module")
	}

	mem := mod.ExportedMemory(memoryName)
	region, err := hostmem.Map(mem)
	if err != nil {
		rt.Close(ctx)
		return nil, err
	}

	funcs := make(map[string]api.Function, len(intrinsics))
	for _, in := range intrinsics {
		funcs[in.Name] = mod.ExportedFunction(in.Name)
	}

	return &Checker{
		rt:         rt,
		mod:        mod,
		region:     region,
		reader:     hostmem.NewReader(mem),
		log:        cfg.log,
		funcs:      funcs,
		intrinsics: intrinsics,
		cfg:        cfg,
	}, nil
}

func selectIntrinsics(only []string) ([]nosandbox.Intrinsic, error) {
	if len(only) == 0 {
		return nosandbox.Intrinsics(), nil
	}
	out := make([]nosandbox.Intrinsic, 0, len(only))
	seen := make(map[string]bool, len(only))
	for _, name := range only {
		in, ok := nosandbox.Lookup(name)
		if !ok {
			return nil, errors.NotFound(errors.PhaseConfig, "intrinsic", name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, in)
	}
	return out, nil
}

func valTypes(ts []nosandbox.ValType) []byte {
	out := make([]byte, len(ts))
	for i, t := range ts {
		out[i] = byte(t)
	}
	return out
}

// referenceModule emits one function per intrinsic whose body is the single
// instruction applied to its parameters.
func referenceModule(intrinsics []nosandbox.Intrinsic, pages uint32) []byte {
	var m wasmgen.Module
	m.Memory(memoryName, pages)
	for _, in := range intrinsics {
		ft := wasmgen.FuncType{Params: valTypes(in.Params), Results: valTypes(in.Results)}
		var body []byte
		for i := range in.Params {
			body = append(body, wasmgen.LocalGet(uint32(i))...)
		}
		switch in.Class {
		case nosandbox.ClassLoad, nosandbox.ClassStore:
			// align 0 keeps unaligned offsets valid
			body = append(body, wasmgen.MemOp(in.Opcode, 0, 0)...)
		default:
			body = append(body, in.Opcode)
		}
		m.Func(in.Name, ft, body)
	}
	return m.Encode()
}

// Intrinsics returns the intrinsics this checker covers.
func (c *Checker) Intrinsics() []nosandbox.Intrinsic {
	return append([]nosandbox.Intrinsic(nil), c.intrinsics...)
}

// MemorySize returns the shared linear memory size in bytes.
func (c *Checker) MemorySize() uint32 {
	return c.region.Size()
}

// Close releases the wazero runtime.
func (c *Checker) Close(ctx context.Context) error {
	return c.rt.Close(ctx)
}

func (c *Checker) lookup(name string) (nosandbox.Intrinsic, api.Function, error) {
	fn, ok := c.funcs[name]
	if !ok {
		return nosandbox.Intrinsic{}, nil, errors.NotFound(errors.PhaseEvaluate, "intrinsic", name)
	}
	in, _ := nosandbox.Lookup(name)
	return in, fn, nil
}

// Evaluate runs one intrinsic on both sides and returns the two result bit
// patterns. For loads and stores the first argument is a linear-memory
// offset. Stores return the bytes each side left at that offset.
func (c *Checker) Evaluate(ctx context.Context, name string, args ...uint64) (native, reference uint64, err error) {
	in, fn, err := c.lookup(name)
	if err != nil {
		return 0, 0, err
	}
	if len(args) != len(in.Params) {
		return 0, 0, errors.New(errors.PhaseEvaluate, errors.KindInvalidInput).
			Intrinsic(name).
			Detail("expected %d arguments, got %d", len(in.Params), len(args)).
			Build()
	}

	masked := make([]uint64, len(args))
	for i, a := range args {
		masked[i] = a & in.Params[i].Mask()
	}
	if !in.Defined(masked...) {
		return 0, 0, errors.Undefined(errors.PhaseEvaluate, name, masked)
	}

	switch in.Class {
	case nosandbox.ClassLoad:
		return c.evalLoad(ctx, in, fn, uint32(masked[0]))
	case nosandbox.ClassStore:
		return c.evalStore(ctx, in, fn, uint32(masked[0]), masked[1])
	default:
		return c.evalPure(ctx, in, fn, masked)
	}
}

// valueType is the wasm type an intrinsic loads, stores or computes on.
func valueType(in nosandbox.Intrinsic) nosandbox.ValType {
	if in.Class == nosandbox.ClassStore {
		return in.Params[1]
	}
	return in.Results[0]
}

// accessError reports an offset the shared memory cannot serve for in.
func accessError(in nosandbox.Intrinsic, offset uint32, cause error) error {
	return errors.New(errors.PhaseEvaluate, errors.KindOutOfBounds).
		Intrinsic(in.Name).
		ValType(valueType(in).String()).
		Value(offset).
		Detail("%d-byte access at offset %d", in.Width, offset).
		Cause(cause).
		Build()
}

func (c *Checker) evalPure(ctx context.Context, in nosandbox.Intrinsic, fn api.Function, args []uint64) (uint64, uint64, error) {
	mask := in.Results[0].Mask()
	native := in.Call(args...) & mask
	res, err := fn.Call(ctx, args...)
	if err != nil {
		return 0, 0, errors.Execution(in.Name, valueType(in).String(), err)
	}
	return native, res[0] & mask, nil
}

func (c *Checker) evalLoad(ctx context.Context, in nosandbox.Intrinsic, fn api.Function, offset uint32) (uint64, uint64, error) {
	addr, err := c.region.Addr(offset, in.Width)
	if err != nil {
		return 0, 0, accessError(in, offset, err)
	}
	mask := in.Results[0].Mask()
	native := in.Call(addr) & mask
	res, err := fn.Call(ctx, uint64(offset))
	if err != nil {
		return 0, 0, errors.Execution(in.Name, valueType(in).String(), err)
	}
	return native, res[0] & mask, nil
}

// evalStore writes through each side from the same starting bytes and reads
// back the stored window.
func (c *Checker) evalStore(ctx context.Context, in nosandbox.Intrinsic, fn api.Function, offset uint32, v uint64) (uint64, uint64, error) {
	addr, err := c.region.Addr(offset, in.Width)
	if err != nil {
		return 0, 0, accessError(in, offset, err)
	}
	before, err := c.reader.Read(offset, in.Width)
	if err != nil {
		return 0, 0, err
	}
	saved := append([]byte(nil), before...)

	in.Call(addr, v)
	native, err := c.reader.ReadUint(offset, in.Width)
	if err != nil {
		return 0, 0, err
	}

	if err := c.reader.Write(offset, saved); err != nil {
		return 0, 0, err
	}
	if _, err := fn.Call(ctx, uint64(offset), v); err != nil {
		return 0, 0, errors.Execution(in.Name, valueType(in).String(), err)
	}
	reference, err := c.reader.ReadUint(offset, in.Width)
	if err != nil {
		return 0, 0, err
	}
	return native, reference, nil
}

// Run checks every intrinsic on edge-case and seeded random operands.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	gen := newOperandGen(c.cfg.seed, c.region.Size())
	report := &Report{Seed: c.cfg.seed}

	for _, in := range c.intrinsics {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res, err := c.check(ctx, in, gen)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, res)

		fields := []zap.Field{
			zap.String("intrinsic", in.Name),
			zap.Int("checked", res.Checked),
			zap.Int("skipped", res.Skipped),
		}
		if res.Failed > 0 {
			c.log.Warn("intrinsic mismatch", append(fields, zap.Int("failed", res.Failed))...)
		} else {
			c.log.Debug("intrinsic ok", fields...)
		}
	}

	c.log.Info("conformance run complete",
		zap.Uint64("seed", report.Seed),
		zap.Int("checked", report.Checked()),
		zap.Int("failed", report.Failed()))
	return report, nil
}

func (c *Checker) check(ctx context.Context, in nosandbox.Intrinsic, gen *operandGen) (Result, error) {
	res := Result{Intrinsic: in.Name, Class: in.Class}

	for _, args := range gen.operands(in, c.cfg.iterations) {
		if !in.Defined(args...) {
			res.Skipped++
			continue
		}
		if in.Class == nosandbox.ClassLoad {
			if err := c.scribble(uint32(args[0]), in.Width, gen); err != nil {
				return res, err
			}
		}

		native, reference, err := c.Evaluate(ctx, in.Name, args...)
		if err != nil {
			return res, err
		}
		res.Checked++
		if native == reference {
			continue
		}
		res.Failed++
		if len(res.Mismatches) < c.cfg.maxMismatches {
			res.Mismatches = append(res.Mismatches, Mismatch{
				Intrinsic: in.Name,
				Args:      args,
				Native:    native,
				Reference: reference,
			})
		}
	}
	return res, nil
}

// scribble fills the bytes a load will read with random data.
func (c *Checker) scribble(offset, width uint32, gen *operandGen) error {
	buf := make([]byte, width)
	v := gen.value(math.MaxUint64)
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	return c.reader.Write(offset, buf)
}
