// internal/typeconv/doc.go

/*
Package typeconv converts free-form argument text into typed Go values.

The set of supported targets is closed and enforced by the Value type
constraint: bool, the signed integer widths, uint8, float32, float64,
Char and string. Named enumerations are handled separately through the
Enum interface and are matched by name, ignoring case.

Numeric and boolean text goes through go-cty, so range checks (for example
300 into an int8) and whole-number checks (4.5 into an int) come for free.
Every failure wraps ErrConversion.

cty's number and bool rules are more permissive than a strict decimal
parser: exponent notation is accepted when the result is whole ("1e3" into
an int is 1000), "1" and "0" are booleans, and "Inf" parses into the float
types.
*/
package typeconv
