package slug

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	halant = '\u094D'
	nukta  = '\u093C'
)

// sequences are replaced as a whole before the per-rune walk. Nukta
// consonants are listed in their decomposed form, which is what NFD yields
// for them. Nukta letters missing here (ऩ, ऱ, ऴ) keep the base consonant's
// sound.
var sequences = strings.NewReplacer(
	"\u0915\u094D\u0937", "ksh", // क्ष
	"\u091C\u094D\u091E", "gya", // ज्ञ
	"\u0922\u093C", "rh", // ढ़
	"\u0921\u093C", "r", // ड़
	"\u091C\u093C", "z", // ज़
	"\u092B\u093C", "f", // फ़
	"\u0915\u093C", "q", // क़
	"\u0916\u093C", "kh", // ख़
	"\u0917\u093C", "gh", // ग़
	"\u0905\u0902", "an", // अं
	"\u0905\u0903", "ah", // अः
)

var vowels = map[rune]string{
	'अ': "a", 'आ': "aa", 'इ': "i", 'ई': "ee", 'उ': "u", 'ऊ': "oo",
	'ऋ': "ri", 'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au", 'ऑ': "o",
	'ॐ': "om",
}

var consonants = map[rune]string{
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "ng",
	'च': "ch", 'छ': "chh", 'ज': "j", 'झ': "jh", 'ञ': "ny",
	'ट': "t", 'ठ': "th", 'ड': "d", 'ढ': "dh", 'ण': "n",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v",
	'श': "sh", 'ष': "sh", 'स': "s", 'ह': "h", 'ळ': "l",
}

// matras are dependent vowel signs. Together with the halant and the nukta
// they replace a consonant's inherent vowel.
var matras = map[rune]string{
	'ा': "aa", 'ि': "i", 'ी': "ee", 'ु': "u", 'ू': "oo", 'ृ': "ri",
	'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au", 'ॉ': "o",
	halant: "",
}

var signs = map[rune]string{
	'ं': "n", 'ँ': "n", 'ः': "h",
	'०': "0", '१': "1", '२': "2", '३': "3", '४': "4",
	'५': "5", '६': "6", '७': "7", '८': "8", '९': "9",
}

func suppressesInherentVowel(r rune) bool {
	if r == nukta {
		return true
	}
	_, ok := matras[r]
	return ok
}

// Transliterate maps Devanagari text to Roman letters. Characters outside
// the table are copied unchanged.
func Transliterate(text string) string {
	runes := []rune(sequences.Replace(norm.NFD.String(text)))

	var b strings.Builder
	b.Grow(len(runes) * 2)
	for i, r := range runes {
		if sound, ok := consonants[r]; ok {
			b.WriteString(sound)
			if i+1 >= len(runes) || !suppressesInherentVowel(runes[i+1]) {
				b.WriteByte('a')
			}
			continue
		}
		if v, ok := vowels[r]; ok {
			b.WriteString(v)
			continue
		}
		if m, ok := matras[r]; ok {
			b.WriteString(m)
			continue
		}
		if s, ok := signs[r]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SlugifyHindi transliterates a Hindi title and slugifies the result. It
// returns "" when nothing slug-worthy is left; callers substitute Fallback.
func SlugifyHindi(text string) string {
	return Slugify(Transliterate(text))
}
