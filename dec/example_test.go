// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec_test

import (
	"encoding/json"
	"fmt"

	"github.com/avdva/floating/dec"
)

func Example() {
	v := dec.MustFromString("123.45")
	fmt.Println(v.String())
	fmt.Println(v.Add(dec.One()).String())
	fmt.Printf("%e\n", v)

	data, _ := json.Marshal(v)
	fmt.Println(string(data))

	fmt.Println(dec.One().Div(dec.Zero()).String())
	// Output:
	// 123.45
	// 124.45
	// 12345e-2
	// "123.45"
	// Inf
}
