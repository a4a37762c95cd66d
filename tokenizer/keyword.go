package tokenizer

type Keyword uint8

const (
	KeywordInvalid Keyword = iota
	KeywordTrue
	KeywordFalse
	KeywordEmpty
	KeywordAnd
	KeywordOr
	KeywordNot
	KeywordModulo
	KeywordIf
	KeywordElse
	KeywordLoop
	KeywordEndless
	KeywordBreak
	KeywordContinue
	KeywordReturn
	KeywordFn
)

func (Keyword) tokenKind() {}

// keywords maps every spelling, localized aliases included, to its kind.
var keywords = map[string]Keyword{
	"doğru":    KeywordTrue,
	"true":     KeywordTrue,
	"yanlış":   KeywordFalse,
	"false":    KeywordFalse,
	"boş":      KeywordEmpty,
	"empty":    KeywordEmpty,
	"ve":       KeywordAnd,
	"and":      KeywordAnd,
	"veya":     KeywordOr,
	"or":       KeywordOr,
	"değil":    KeywordNot,
	"not":      KeywordNot,
	"mod":      KeywordModulo,
	"eğer":     KeywordIf,
	"if":       KeywordIf,
	"ise":      KeywordIf,
	"değilse":  KeywordElse,
	"else":     KeywordElse,
	"döngü":    KeywordLoop,
	"while":    KeywordLoop,
	"sonsuz":   KeywordEndless,
	"endless":  KeywordEndless,
	"kır":      KeywordBreak,
	"break":    KeywordBreak,
	"devam":    KeywordContinue,
	"continue": KeywordContinue,
	"döndür":   KeywordReturn,
	"return":   KeywordReturn,
	"fonk":     KeywordFn,
	"fn":       KeywordFn,
}

var keywordTexts = [...]string{
	KeywordInvalid:  "?",
	KeywordTrue:     "doğru",
	KeywordFalse:    "yanlış",
	KeywordEmpty:    "boş",
	KeywordAnd:      "ve",
	KeywordOr:       "veya",
	KeywordNot:      "değil",
	KeywordModulo:   "mod",
	KeywordIf:       "ise",
	KeywordElse:     "değilse",
	KeywordLoop:     "döngü",
	KeywordEndless:  "sonsuz",
	KeywordBreak:    "kır",
	KeywordContinue: "devam",
	KeywordReturn:   "döndür",
	KeywordFn:       "fonk",
}

func (k Keyword) String() string {
	if int(k) < len(keywordTexts) {
		return keywordTexts[k]
	}
	return "?"
}

func LookupKeyword(name string) (Keyword, bool) {
	k, ok := keywords[name]
	return k, ok
}
