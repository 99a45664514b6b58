package num_test

import (
	"fmt"

	num "github.com/muratsat/go-num"
)

func ExampleBigInt_Add() {
	a := num.MustBigIntFromString("123456789012345678901234567890")
	b := num.MustBigIntFromString("987654321098765432109876543210")
	fmt.Println(a.Add(b))
	// Output: 1111111110111111111011111111100
}

func ExampleBigInt_QuoRem() {
	q, r, err := num.BigIntFrom64(-17).QuoRem(num.BigIntFrom64(5))
	if err != nil {
		panic(err)
	}
	fmt.Println(q, r)

	_, _, err = num.BigIntFrom64(1).QuoRem(num.BigInt{})
	fmt.Println(err)
	// Output:
	// -3 -2
	// num: division by zero
}

func ExampleBigIntFromStringBase() {
	b, err := num.BigIntFromStringBase("FF", 16)
	if err != nil {
		panic(err)
	}
	fmt.Println(b.MustText(2))
	// Output: 11111111
}

func ExampleBigInt_AddAssign() {
	var total num.BigInt
	for i := int64(1); i <= 100; i++ {
		total.AddAssign(num.BigIntFrom64(i))
	}
	fmt.Println(total)
	// Output: 5050
}

func ExampleBigInt_Format() {
	b := num.BigIntFrom64(-255)
	fmt.Printf("%d %x %#X %8b|\n", b, b, b, num.BigIntFrom64(5))
	// Output: -255 -ff -0XFF      101|
}
