package syllable

// Heuristic estimates syllables from spelling alone:
//   - each maximal run of vowels counts once ("y" is a vowel after the first letter)
//   - a trailing "e" after a consonant is silent, except in words of two
//     letters or fewer and in consonant + "le" endings ("table")
//   - any word with letters has at least one syllable
func Heuristic(word string) int {
	w := Normalize(word)
	if w == "" {
		return 0
	}
	if len(w) <= 2 {
		return max(1, vowelGroups(w))
	}

	n := vowelGroups(w)
	if silentE(w) {
		n--
	}
	return max(1, n)
}

func vowelGroups(w string) int {
	n := 0
	prev := false
	for i := 0; i < len(w); i++ {
		v := isVowelAt(w, i)
		if v && !prev {
			n++
		}
		prev = v
	}
	return n
}

func silentE(w string) bool {
	last := len(w) - 1
	if w[last] != 'e' || isVowelAt(w, last-1) {
		return false
	}
	if w[last-1] == 'l' && last >= 2 && !isVowelAt(w, last-2) {
		return false
	}
	return true
}

func isVowelAt(w string, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	case 'y':
		return i > 0
	}
	return false
}
