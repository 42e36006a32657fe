// Package series implements the alternating reciprocal series accumulator.
//
// The accumulator starts at 1.0 and, for each index i from 1 to the
// requested iteration count, subtracts 1/(i*a - b) and then adds
// 1/(i*a + b). With a=4 and b=1 the result converges to π/4.
//
// Compute is a pure function: it holds no global state, performs no I/O and
// always runs exactly the requested number of iterations. Timing and
// presentation belong to the caller (see package orchestration).
package series
