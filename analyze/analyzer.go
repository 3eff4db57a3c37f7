// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS PIPELINE
// ═══════════════════════════════════════════════════════════════════════════════
// Turns raw document text (or a single raw query term) into stems: tokenize →
// lowercase → drop stopwords → stem. The boolean core only ever consumes a *set*
// of stems per document, so this package collapses what a ranked engine would
// keep as a per-position stream into a flat, order-independent list — callers
// that need a document's distinct stems dedup the result themselves.
// ═══════════════════════════════════════════════════════════════════════════════

package analyze

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// Config controls which stages of the pipeline run.
type Config struct {
	EnableStopwords bool // default true
}

// DefaultConfig is the pipeline Document runs for the indexer: stopwords
// stripped, everything stemmed. Query terms go through Term instead.
func DefaultConfig() Config {
	return Config{EnableStopwords: true}
}

// Document runs the full pipeline over a document's text and returns its
// stems in the order they occur, duplicates included — the indexer
// deduplicates per document before writing a posting.
func Document(text string) []string {
	return DocumentWithConfig(text, DefaultConfig())
}

// DocumentWithConfig is Document with an explicit Config, mainly for tests
// that want to see the pipeline with stopword filtering disabled.
func DocumentWithConfig(text string, cfg Config) []string {
	tokens := tokenize(text)
	tokens = lowercaseFilter(tokens)
	if cfg.EnableStopwords {
		tokens = stopwordFilter(tokens)
	}
	return stemFilter(tokens)
}

// Term stems a single raw query term the same way a document token would be
// stemmed — lowercased, then run through the stemmer. It intentionally
// skips the stopword filter: a query author who types a stopword should get
// back whatever stem the dictionary does or doesn't have for it, not have
// the term silently vanish from their query.
func Term(raw string) string {
	return snowballeng.Stem(strings.ToLower(raw), false)
}

// tokenize splits text on any rune that is not a letter or a digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func lowercaseFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = strings.ToLower(token)
	}
	return r
}

func stopwordFilter(tokens []string) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isStopword(token) {
			r = append(r, token)
		}
	}
	return r
}

func stemFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = snowballeng.Stem(token, false)
	}
	return r
}

func isStopword(token string) bool {
	_, exists := englishStopwords[token]
	return exists
}

// englishStopwords is a standard English stopword list. struct{} values
// keep the set at zero bytes per entry.
var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "afterwards": {},
	"again": {}, "against": {}, "all": {}, "almost": {}, "alone": {}, "along": {},
	"already": {}, "also": {}, "although": {}, "always": {}, "am": {}, "among": {},
	"amongst": {}, "amoungst": {}, "amount": {}, "an": {}, "and": {}, "another": {},
	"any": {}, "anyhow": {}, "anyone": {}, "anything": {}, "anyway": {}, "anywhere": {},
	"are": {}, "around": {}, "as": {}, "at": {}, "back": {}, "be": {}, "became": {},
	"because": {}, "become": {}, "becomes": {}, "becoming": {}, "been": {}, "before": {},
	"beforehand": {}, "behind": {}, "being": {}, "below": {}, "beside": {}, "besides": {},
	"between": {}, "beyond": {}, "bill": {}, "both": {}, "bottom": {}, "but": {}, "by": {},
	"call": {}, "can": {}, "cannot": {}, "cant": {}, "co": {}, "con": {}, "could": {},
	"couldnt": {}, "cry": {}, "de": {}, "describe": {}, "detail": {}, "do": {}, "done": {},
	"down": {}, "due": {}, "during": {}, "each": {}, "eg": {}, "eight": {}, "either": {},
	"eleven": {}, "else": {}, "elsewhere": {}, "empty": {}, "enough": {}, "etc": {},
	"even": {}, "ever": {}, "every": {}, "everyone": {}, "everything": {}, "everywhere": {},
	"except": {}, "few": {}, "fifteen": {}, "fify": {}, "fill": {}, "find": {}, "fire": {},
	"first": {}, "five": {}, "for": {}, "former": {}, "formerly": {}, "forty": {}, "found": {},
	"four": {}, "from": {}, "front": {}, "full": {}, "further": {}, "get": {}, "give": {},
	"go": {}, "had": {}, "has": {}, "hasnt": {}, "have": {}, "he": {}, "hence": {}, "her": {},
	"here": {}, "hereafter": {}, "hereby": {}, "herein": {}, "hereupon": {}, "hers": {},
	"herself": {}, "him": {}, "himself": {}, "his": {}, "how": {}, "however": {}, "hundred": {},
	"ie": {}, "if": {}, "in": {}, "inc": {}, "indeed": {}, "interest": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "itself": {}, "keep": {}, "last": {}, "latter": {}, "latterly": {},
	"least": {}, "less": {}, "ltd": {}, "made": {}, "many": {}, "may": {}, "me": {},
	"meanwhile": {}, "might": {}, "mill": {}, "mine": {}, "more": {}, "moreover": {},
	"most": {}, "mostly": {}, "move": {}, "much": {}, "must": {}, "my": {}, "myself": {},
	"name": {}, "namely": {}, "neither": {}, "never": {}, "nevertheless": {}, "next": {},
	"nine": {}, "no": {}, "nobody": {}, "none": {}, "noone": {}, "nor": {}, "nothing": {},
	"now": {}, "nowhere": {}, "of": {}, "off": {}, "often": {}, "on": {}, "once": {},
	"one": {}, "only": {}, "onto": {}, "other": {}, "others": {}, "otherwise": {}, "our": {},
	"ours": {}, "ourselves": {}, "out": {}, "over": {}, "own": {}, "part": {}, "per": {},
	"perhaps": {}, "please": {}, "put": {}, "rather": {}, "re": {}, "same": {}, "see": {},
	"seem": {}, "seemed": {}, "seeming": {}, "seems": {}, "serious": {}, "several": {},
	"she": {}, "should": {}, "show": {}, "side": {}, "since": {}, "sincere": {}, "six": {},
	"sixty": {}, "so": {}, "some": {}, "somehow": {}, "someone": {}, "something": {},
	"sometime": {}, "sometimes": {}, "somewhere": {}, "still": {}, "such": {}, "system": {},
	"take": {}, "ten": {}, "than": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"themselves": {}, "then": {}, "thence": {}, "there": {}, "thereafter": {}, "thereby": {},
	"therefore": {}, "therein": {}, "thereupon": {}, "these": {}, "they": {}, "thickv": {},
	"thin": {}, "third": {}, "this": {}, "those": {}, "though": {}, "three": {}, "through": {},
	"throughout": {}, "thru": {}, "thus": {}, "to": {}, "together": {}, "too": {}, "top": {},
	"toward": {}, "towards": {}, "twelve": {}, "twenty": {}, "two": {}, "un": {}, "under": {},
	"until": {}, "up": {}, "upon": {}, "us": {}, "very": {}, "via": {}, "was": {}, "we": {},
	"well": {}, "were": {}, "what": {}, "whatever": {}, "when": {}, "whence": {}, "whenever": {},
	"where": {}, "whereafter": {}, "whereas": {}, "whereby": {}, "wherein": {}, "whereupon": {},
	"wherever": {}, "whether": {}, "which": {}, "while": {}, "whither": {}, "who": {},
	"whoever": {}, "whole": {}, "whom": {}, "whose": {}, "why": {}, "will": {}, "with": {},
	"within": {}, "without": {}, "would": {}, "yet": {}, "you": {}, "your": {}, "yours": {},
	"yourself": {}, "yourselves": {},
}
