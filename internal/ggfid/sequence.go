package ggfid

import "strings"

// revComp returns the reverse complement of an overhang sequence
func revComp(seq string) string {
	seq = strings.ToUpper(seq)

	comp := map[byte]byte{
		'A': 'T',
		'T': 'A',
		'G': 'C',
		'C': 'G',
	}

	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		rc[len(seq)-i-1] = comp[seq[i]]
	}

	return string(rc)
}

// canonical uppercases and trims an overhang so GGAG and ggag key the
// frequency table identically
func canonical(seq string) string {
	return strings.ToUpper(strings.TrimSpace(seq))
}

// canonicalAll canonicalizes a whole overhang set, preserving order
func canonicalAll(overhangs []string) []string {
	out := make([]string, len(overhangs))
	for i, oh := range overhangs {
		out[i] = canonical(oh)
	}
	return out
}

// selfComplementary is true for palindromic overhangs like AATT. They ligate
// with themselves and can't direct assembly order
func selfComplementary(seq string) bool {
	seq = canonical(seq)
	return seq == revComp(seq)
}
