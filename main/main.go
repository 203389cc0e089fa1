package main

import (
	"fmt"

	"pangram-app/pangram"
)

func main() {
	sentence := "The quick brown fox jumps over the lazy dog."

	fmt.Printf("Is this a pangram? %t!\n", pangram.IsPangram(sentence))
}
