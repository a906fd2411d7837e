package rtf

import "golang.org/x/text/encoding/charmap"

// defaultCodePage is used when the header declares none.
const defaultCodePage = 1252

// codePages maps \ansicpg values to single-byte decoders.
var codePages = map[int]*charmap.Charmap{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
}

// charmapFor returns the decoder for a code page, falling back to Windows-1252
// for pages without a single-byte table (e.g. 932, 936).
func charmapFor(codePage int) *charmap.Charmap {
	if cm, ok := codePages[codePage]; ok {
		return cm
	}
	return charmap.Windows1252
}
