// Package wasmgen encodes the small core modules used as the reference side
// of differential checks: function types, functions with straight-line
// bodies, one memory, and exports.
//
// It is not a general encoder. No imports, tables, globals, data or element
// segments, and no locals beyond parameters.
package wasmgen
