package main

import (
	"fmt"
	"slices"

	"github.com/mgnsk/revolver"
)

func main() {
	r := revolver.New("north", "east", "south", "west")

	// Walk the compass twice, starting from the first direction.
	r.First()
	for range 2 * r.Len() {
		v, _ := r.Current()
		fmt.Println(v)
		r.Next()
	}

	// Values can be searched with the standard library without moving the cursor.
	fmt.Println(slices.Index(r.Values(), "south"))

	if err := r.SetCurrent("up"); err != nil {
		panic(err)
	}

	fmt.Println(r)
}
