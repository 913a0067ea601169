// Package conformance checks the no-sandbox primitives against the wazero
// interpreter.
//
// A Checker builds one reference module with an exported function per
// intrinsic and a single exported memory. The native primitives run against
// the same memory through its host address, so loads and stores are compared
// on identical bytes.
//
//	c, err := conformance.New(ctx, conformance.WithSeed(7))
//	if err != nil {
//	    return err
//	}
//	defer c.Close(ctx)
//
//	report, err := c.Run(ctx)
//	if !report.OK() {
//	    // report.Results[i].Mismatches holds the offending operands
//	}
//
// Operands that are undefined without a sandbox (zero divisors, MinInt / -1)
// are skipped: the reference traps where the primitive has no defined result.
//
// A Checker is not safe for concurrent use.
package conformance
