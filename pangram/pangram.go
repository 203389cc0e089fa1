/*
Package pangram provides a function to determine if a given string is a pangram.

A pangram is a sentence that contains every letter of the English alphabet at least once.
For example:
- "The quick brown fox jumps over the lazy dog" is a pangram.
- "Hello, world!" is not a pangram because it does not contain all the letters of the alphabet.

The implementation tracks the letters seen in a single uint32 bitmask, one bit
per letter of the alphabet, instead of a per-letter boolean array.
*/
package pangram

// allLetters has exactly the low 26 bits set, one per letter 'a' through 'z'.
const allLetters uint32 = 0x03FFFFFF

// IsPangram checks if the given input string is a pangram.
//
// A pangram is defined as a sentence that includes every letter of the English alphabet
// at least once. This function ignores case, spaces, and non-letter characters.
// Only ASCII letters are considered; bytes outside 'A'-'Z' and 'a'-'z' are skipped,
// so digits, punctuation and multi-byte UTF-8 sequences have no effect on the result.
//
// Parameters:
//   - input: The string to be checked for being a pangram.
//
// Returns:
//   - bool: true if the input string is a pangram, false otherwise.
//
// Example usage:
//
//	pangram.IsPangram("The quick brown fox jumps over the lazy dog") // Returns true
//	pangram.IsPangram("Hello, world!")                               // Returns false
func IsPangram(input string) bool {
	// Fewer than 26 bytes cannot hold 26 distinct letters.
	if len(input) < 26 {
		return false
	}

	var seen uint32

	for i := 0; i < len(input); i++ {
		c := input[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			continue
		}
		seen |= 1 << (c - 'a')
	}

	return seen == allLetters
}
