package pattern

import (
	"unicode/utf8"

	"github.com/rs/zerolog"

	"automata/internal/fa"
	"automata/internal/logging"
)

// Regexp is a parsed pattern together with its compiled design. It is
// immutable and safe for concurrent use.
type Regexp struct {
	source string
	ast    Pattern
	design *fa.NFADesign
}

func logger() zerolog.Logger { return logging.GetLogger("pattern") }

// Compile parses text and builds its NFA design once.
func Compile(text string) (*Regexp, error) {
	ast, err := Parse(text)
	if err != nil {
		return nil, err
	}
	re := FromPattern(ast)
	re.source = text
	return re, nil
}

func MustCompile(text string) *Regexp {
	re, err := Compile(text)
	if err != nil {
		panic(err)
	}
	return re
}

// FromPattern compiles an AST that was built in code.
func FromPattern(p Pattern) *Regexp {
	design := Build(p, fa.NewAllocator())
	log := logger()
	log.Debug().
		Str("pattern", p.String()).
		Int("rules", design.Rulebook().Len()).
		Int("accept", len(design.AcceptStates())).
		Msg("Pattern compiled")
	return &Regexp{source: p.String(), ast: p, design: design}
}

// Source is the text the Regexp was compiled from.
func (re *Regexp) Source() string { return re.source }

// String is the canonical rendering of the pattern.
func (re *Regexp) String() string { return re.ast.String() }

func (re *Regexp) Pattern() Pattern { return re.ast }

func (re *Regexp) Design() *fa.NFADesign { return re.design }

// MatchString reports whether the whole of s matches.
func (re *Regexp) MatchString(s string) bool { return re.design.Accepts(s) }

// Match is a matched substring of a searched text; Start and End are byte
// offsets.
type Match struct {
	Start, End int
	Text       string
}

// FindAll returns the leftmost-longest, non-overlapping, non-empty matches
// in text.
func (re *Regexp) FindAll(text string) []Match {
	var out []Match
	for i := 0; i < len(text); {
		if n := re.longestPrefix(text[i:]); n > 0 {
			out = append(out, Match{Start: i, End: i + n, Text: text[i : i+n]})
			i += n
			continue
		}
		_, sz := utf8.DecodeRuneInString(text[i:])
		i += sz
	}
	return out
}

// longestPrefix returns the byte length of the longest non-empty prefix of s
// the design accepts, or 0.
func (re *Regexp) longestPrefix(s string) int {
	nfa := re.design.ToNFA()
	longest := 0
	for pos := 0; pos < len(s); {
		r, sz := utf8.DecodeRuneInString(s[pos:])
		pos += sz
		nfa.ReadCharacter(r)
		if nfa.CurrentStates().Len() == 0 {
			break
		}
		if nfa.Accepting() {
			longest = pos
		}
	}
	return longest
}
