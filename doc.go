/*
Package num provides BigInt, an arbitrary-precision signed integer.

A BigInt stores its magnitude as base 1<<32 digits, least significant
first, plus a sign flag. It is always normalized: there are no leading zero
digits and zero is never negative.

Simple example:

	b1 := MustBigIntFromString("123456789012345678901234567890")
	fmt.Println(b1.Add(BigIntFrom64(1)))
	// Output: 123456789012345678901234567891

BigInts can be created from a variety of sources:

	BigIntFrom64(v int64) BigInt
	BigIntFromU64(v uint64) BigInt
	BigIntFrom32(v int32) BigInt
	BigIntFromString(s string) (out BigInt, err error)
	BigIntFromStringBase(s string, base int) (out BigInt, err error)
	BigIntFromBigInt(v *big.Int) BigInt
	BigIntFromFloat64(f float64) (out BigInt, inRange bool)

Every operator comes in two forms. Add, Sub, Mul, Quo, Rem, Neg, Abs, Inc
and Dec leave their operands alone and return a new BigInt. AddAssign,
SubAssign, MulAssign, QuoAssign, RemAssign, NegAssign, AbsAssign,
IncAssign and DecAssign mutate the receiver and return it.

Division and modulus are truncated, like Go's / and % operators, and return
ErrDivisionByZero instead of panicking. Text formats in any base in
[2, 36).

BigInt supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Scanner
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

BigInts are values: no two BigInts ever share mutable storage, so x := y
takes an independent snapshot. Distinct BigInts may be used from different
goroutines, but a single BigInt must not be mutated concurrently without
external locking.

*/
package num
