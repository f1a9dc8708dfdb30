// Package id maps between ID3v2.2 3-character frame identifiers and their
// ID3v2.3/ID3v2.4 4-character counterparts.
//
// The table is fixed by the ID3 standard. Not every 4-character identifier
// has a 3-character counterpart: frame types introduced after ID3v2.2 are
// simply not representable in that version.
package id

import "github.com/simonhull/id3codec/internal/types"

// shortToLong is the full ID3v2.2 identifier set.
var shortToLong = map[string]string{
	"BUF": "RBUF",
	"CNT": "PCNT",
	"COM": "COMM",
	"CRA": "AENC",
	"ETC": "ETCO",
	"GEO": "GEOB",
	"IPL": "IPLS",
	"LNK": "LINK",
	"MCI": "MCDI",
	"MLL": "MLLT",
	"PIC": "APIC",
	"POP": "POPM",
	"REV": "RVRB",
	"RVA": "RVAD",
	"SLT": "SYLT",
	"STC": "SYTC",
	"TAL": "TALB",
	"TBP": "TBPM",
	"TCM": "TCOM",
	"TCO": "TCON",
	"TCR": "TCOP",
	"TDA": "TDAT",
	"TDY": "TDLY",
	"TEN": "TENC",
	"TFT": "TFLT",
	"TIM": "TIME",
	"TKE": "TKEY",
	"TLA": "TLAN",
	"TLE": "TLEN",
	"TMT": "TMED",
	"TOA": "TOPE",
	"TOF": "TOFN",
	"TOL": "TOLY",
	"TOT": "TOAL",
	"TP1": "TPE1",
	"TP2": "TPE2",
	"TP3": "TPE3",
	"TP4": "TPE4",
	"TPA": "TPOS",
	"TPB": "TPUB",
	"TRC": "TSRC",
	"TRD": "TRDA",
	"TRK": "TRCK",
	"TSI": "TSIZ",
	"TSS": "TSSE",
	"TT1": "TIT1",
	"TT2": "TIT2",
	"TT3": "TIT3",
	"TXT": "TEXT",
	"TXX": "TXXX",
	"TYE": "TYER",
	"UFI": "UFID",
	"ULT": "USLT",
	"WAF": "WOAF",
	"WAR": "WOAR",
	"WAS": "WOAS",
	"WCM": "WCOM",
	"WCP": "WCOP",
	"WPB": "WPUB",
	"WXX": "WXXX",
}

// longToShort is the inverse table, built once at init.
var longToShort = func() map[string]string {
	m := make(map[string]string, len(shortToLong))
	for short, long := range shortToLong {
		m[long] = short
	}
	return m
}()

// ToLong translates an ID3v2.2 identifier to its 4-character form.
func ToLong(short string) (string, error) {
	long, ok := shortToLong[short]
	if !ok {
		return "", &types.InvalidIdentifierError{
			ID:     short,
			Reason: "no ID3v2.3 equivalent for this ID3v2.2 identifier",
		}
	}
	return long, nil
}

// ToShort translates a 4-character identifier back to its ID3v2.2 form.
// The second return is false when the frame type postdates ID3v2.2.
func ToShort(long string) (string, bool) {
	short, ok := longToShort[long]
	return short, ok
}

// Valid reports whether s has the shape of an identifier for the given
// length: uppercase ASCII letters and digits only.
func Valid(s string) bool {
	if len(s) != 3 && len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
