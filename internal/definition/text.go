package definition

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The text format, one header then one rule per line:
//
//	# comment
//	nfa start q1 accept q3, q4
//	q1 -'a'-> q2
//	q1 --> q4
//	q4 -'b'-> "end state"
//
// State names that are not plain identifiers, or that are keywords, are
// written in double quotes.
type textFile struct {
	Kind   string      `parser:"@('dfa' | 'nfa')"`
	Start  string      `parser:"'start' @(Ident | Name)"`
	Accept []string    `parser:"( 'accept' @(Ident | Name) ( ',' @(Ident | Name) )* )?"`
	Rules  []*textRule `parser:"@@*"`
}

type textRule struct {
	From   string  `parser:"@(Ident | Name) '-'"`
	Symbol *string `parser:"@Symbol?"`
	To     string  `parser:"'->' @(Ident | Name)"`
}

var (
	identPattern = regexp.MustCompile(`^[\p{L}\p{N}_]+$`)
	keywords     = map[string]bool{"dfa": true, "nfa": true, "start": true, "accept": true}
)

var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Symbol", Pattern: `'(\\.|[^'\\])*'`},
	{Name: "Name", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[\p{L}\p{N}_]+`},
	{Name: "Punct", Pattern: `[-,]`},
})

var textParser = participle.MustBuild[textFile](
	participle.Lexer(textLexer),
	participle.Elide("Comment", "Whitespace"),
)

func parseText(filename string, data []byte) (*Definition, error) {
	file, err := textParser.ParseBytes(filename, data)
	if err != nil {
		return nil, err
	}
	names := func(raw ...string) ([]string, error) {
		out := make([]string, len(raw))
		for i, n := range raw {
			name, err := unquoteName(n)
			if err != nil {
				return nil, fmt.Errorf("%s: bad state name %s: %w", filename, n, err)
			}
			out[i] = name
		}
		return out, nil
	}
	header, err := names(append([]string{file.Start}, file.Accept...)...)
	if err != nil {
		return nil, err
	}
	def := &Definition{
		Kind:  Kind(file.Kind),
		Start: header[0],
	}
	if len(header) > 1 {
		def.Accept = header[1:]
	}
	for _, r := range file.Rules {
		ends, err := names(r.From, r.To)
		if err != nil {
			return nil, err
		}
		rd := RuleDef{From: ends[0], To: ends[1]}
		if r.Symbol != nil {
			sym, err := strconv.Unquote(*r.Symbol)
			if err != nil {
				return nil, fmt.Errorf("%s: rule %s -> %s: bad symbol %s: %w", filename, r.From, r.To, *r.Symbol, err)
			}
			rd.On = sym
		}
		def.Rules = append(def.Rules, rd)
	}
	return def, nil
}

func unquoteName(raw string) (string, error) {
	if strings.HasPrefix(raw, `"`) {
		return strconv.Unquote(raw)
	}
	return raw, nil
}

// quoteName leaves plain identifiers bare and quotes everything else.
func quoteName(name string) string {
	if identPattern.MatchString(name) && !keywords[name] {
		return name
	}
	return strconv.Quote(name)
}

func marshalText(d *Definition) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s start %s", d.Kind, quoteName(d.Start))
	if len(d.Accept) > 0 {
		accept := make([]string, len(d.Accept))
		for i, a := range d.Accept {
			accept[i] = quoteName(a)
		}
		fmt.Fprintf(&b, " accept %s", strings.Join(accept, ", "))
	}
	b.WriteByte('\n')
	for _, r := range d.Rules {
		from, to := quoteName(r.From), quoteName(r.To)
		if r.On == "" {
			fmt.Fprintf(&b, "%s --> %s\n", from, to)
			continue
		}
		sym, _ := utf8.DecodeRuneInString(r.On)
		fmt.Fprintf(&b, "%s -%s-> %s\n", from, strconv.QuoteRune(sym), to)
	}
	return b.Bytes()
}
