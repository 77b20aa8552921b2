// Package digplan reads dig plans: one trench edge per line, written as
//
//	<D> <L> (#<6 hex digits>)
//
// where D is one of U, D, L, R and L a decimal length. Every line carries
// two readings of the same edge:
//
//   - plain: the D and L fields as written;
//   - hex:   the colour payload, whose first five hex digits are the length
//     and whose last digit is the heading (0=R, 1=D, 2=L, 3=U).
//
// Blank lines are skipped. Any other line that does not match fails the
// whole parse with ErrMalformedInstruction wrapped in a *LineError.
package digplan
