package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	nosandbox "github.com/wippyai/wasm-nosandbox"
	"github.com/wippyai/wasm-nosandbox/conformance"
)

var errMismatch = errors.New("native primitives disagree with the reference")

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")).Width(14)
)

func main() {
	var (
		seed        = flag.Uint64("seed", conformance.DefaultSeed, "Seed for random operands")
		iterations  = flag.Int("n", conformance.DefaultIterations, "Random operand sets per intrinsic")
		only        = flag.String("only", "", "Intrinsics to check (comma-separated mnemonics, default all)")
		pages       = flag.Uint("pages", uint(conformance.DefaultPages), "Linear memory size in 64KiB pages")
		list        = flag.Bool("list", false, "List intrinsics and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	nosandbox.SetLogger(log.WithOptions(nosandbox.AbortOnFatal()))

	if *list {
		listIntrinsics()
		return
	}

	opts := []conformance.Option{
		conformance.WithSeed(*seed),
		conformance.WithIterations(*iterations),
		conformance.WithPages(pageCount(*pages)),
		conformance.WithLogger(log),
	}
	if *only != "" {
		opts = append(opts, conformance.WithIntrinsics(splitList(*only)...))
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// pageCount narrows the -pages flag, saturating so oversized values still
// fail option validation instead of wrapping into range.
func pageCount(n uint) uint32 {
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func signature(in nosandbox.Intrinsic) string {
	params := make([]string, len(in.Params))
	for i, p := range in.Params {
		params[i] = p.String()
	}
	result := ""
	if len(in.Results) > 0 {
		result = " -> " + in.Results[0].String()
	}
	return "(" + strings.Join(params, ", ") + ")" + result
}

func listIntrinsics() {
	fmt.Println(headerStyle.Render("no-sandbox intrinsics"))
	fmt.Println()
	for _, in := range nosandbox.Intrinsics() {
		fmt.Printf("  %s %-12s %-22s %s\n",
			nameStyle.Render(in.Name),
			in.Symbol,
			signature(in),
			dimStyle.Render(fmt.Sprintf("0x%02X %s", in.Opcode, in.Class)))
	}
}

func run(opts []conformance.Option) error {
	ctx := context.Background()

	checker, err := conformance.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create checker: %w", err)
	}
	defer checker.Close(ctx)

	report, err := checker.Run(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	fmt.Println(headerStyle.Render("no-sandbox conformance") + dimStyle.Render(fmt.Sprintf(" seed=%d", report.Seed)))
	fmt.Println()
	for _, res := range report.Results {
		status := okStyle.Render("ok")
		if res.Failed > 0 {
			status = failStyle.Render(fmt.Sprintf("FAIL %d", res.Failed))
		}
		fmt.Printf("  %s %6d checked %5d skipped  %s\n", nameStyle.Render(res.Intrinsic), res.Checked, res.Skipped, status)
		for _, m := range res.Mismatches {
			fmt.Printf("      args %#x: native %#x, reference %#x\n", m.Args, m.Native, m.Reference)
		}
	}
	fmt.Println()
	fmt.Printf("%d checked, %d skipped, %d failed\n", report.Checked(), report.Skipped(), report.Failed())

	if !report.OK() {
		return errMismatch
	}
	return nil
}
