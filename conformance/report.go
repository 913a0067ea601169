package conformance

import nosandbox "github.com/wippyai/wasm-nosandbox"

// Mismatch records operands on which the primitive and the reference differ.
type Mismatch struct {
	Intrinsic string
	Args      []uint64
	Native    uint64
	Reference uint64
}

// Result summarizes one intrinsic.
type Result struct {
	Intrinsic  string
	Mismatches []Mismatch
	Checked    int
	Skipped    int
	Failed     int
	Class      nosandbox.Class
}

// Report is the outcome of Run.
type Report struct {
	Results []Result
	Seed    uint64
}

// OK reports whether every comparison matched.
func (r *Report) OK() bool {
	return r.Failed() == 0
}

// Failed returns the total number of mismatching comparisons.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		n += res.Failed
	}
	return n
}

// Checked returns the total number of comparisons.
func (r *Report) Checked() int {
	n := 0
	for _, res := range r.Results {
		n += res.Checked
	}
	return n
}

// Skipped returns the total number of operand sets outside the defined domain.
func (r *Report) Skipped() int {
	n := 0
	for _, res := range r.Results {
		n += res.Skipped
	}
	return n
}
