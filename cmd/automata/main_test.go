package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const containsAB = `# strings containing "ab"
dfa start s0 accept s2
s0 -'a'-> s1
s0 -'b'-> s0
s1 -'a'-> s1
s1 -'b'-> s2
s2 -'a'-> s2
s2 -'b'-> s2
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	old := xdg.ConfigHome
	xdg.ConfigHome = t.TempDir()
	t.Cleanup(func() { xdg.ConfigHome = old })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestMatchCommand(t *testing.T) {
	for _, engine := range []string{"nfa", "dfa"} {
		t.Run(engine, func(t *testing.T) {
			out, err := execute(t, "match", "--engine", engine, "(a(|b))*", "", "ab", "abab", "bb")
			require.NoError(t, err)

			got := lines(out)
			require.Len(t, got, 4)
			want := []struct {
				verdict string
				input   string
			}{
				{"accept", `""`},
				{"accept", `"ab"`},
				{"accept", `"abab"`},
				{"reject", `"bb"`},
			}
			for i, w := range want {
				assert.Contains(t, got[i], w.verdict)
				assert.Contains(t, got[i], w.input)
			}
		})
	}
}

func TestMatchCommandErrors(t *testing.T) {
	_, err := execute(t, "match", "--engine", "backtrack", "a", "a")
	assert.Error(t, err)

	_, err = execute(t, "match", "(a", "a")
	assert.Error(t, err)

	_, err = execute(t, "match", "a")
	assert.Error(t, err)
}

func TestFindCommand(t *testing.T) {
	out, err := execute(t, "find", "ab*", "xabbbyaz")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "1-5")
	assert.Contains(t, got[0], `"abbb"`)
	assert.Contains(t, got[1], "6-7")
	assert.Contains(t, got[1], `"a"`)

	out, err = execute(t, "find", "q", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "no matches")
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "((a)(b))|(c*)")
	require.NoError(t, err)
	assert.Equal(t, "/ab|c*/\n", out)

	out, err = execute(t, "render", "a()*")
	require.NoError(t, err)
	assert.Equal(t, "/a()*/\n", out)
}

func TestRunCommand(t *testing.T) {
	path := writeFile(t, "contains_ab.fa", containsAB)
	out, err := execute(t, "run", path, "baaab", "ba")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "accept")
	assert.Contains(t, got[1], "reject")

	_, err = execute(t, "run", writeFile(t, "bad.fa", "dfa start a\na --> b\n"), "x")
	assert.Error(t, err)
}

func TestDotCommand(t *testing.T) {
	path := writeFile(t, "contains_ab.fa", containsAB)
	out, err := execute(t, "dot", "-f", path, "--rankdir", "TB")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.Contains(t, out, "rankdir=TB;")
	assert.Contains(t, out, `label="s2"`)

	out, err = execute(t, "dot", "--dfa", "a|b")
	require.NoError(t, err)
	assert.Contains(t, out, "rankdir=LR;")
	assert.Contains(t, out, "doublecircle")

	_, err = execute(t, "dot")
	assert.Error(t, err)
}

func TestGenCommand(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "match.go")
	_, err := execute(t, "gen", "--package", "matcher", "--func", "IsAB", "-o", outPath, "a(b|c)*")
	require.NoError(t, err)

	src, err := os.ReadFile(outPath)
	require.NoError(t, err)
	f, err := parser.ParseFile(token.NewFileSet(), "match.go", src, 0)
	require.NoError(t, err)
	assert.Equal(t, "matcher", f.Name.Name)
	assert.Contains(t, string(src), "func IsAB(input string) bool")

	out, err := execute(t, "gen", "-f", writeFile(t, "contains_ab.fa", containsAB))
	require.NoError(t, err)
	assert.Contains(t, out, "package main")
	assert.Contains(t, out, "func Match(input string) bool")
}

func TestConvertCommand(t *testing.T) {
	path := writeFile(t, "contains_ab.fa", containsAB)

	yamlOut, err := execute(t, "convert", path)
	require.NoError(t, err)
	assert.Contains(t, yamlOut, "kind: dfa")

	yamlPath := writeFile(t, "contains_ab.yaml", yamlOut)
	out, err := execute(t, "run", yamlPath, "aab")
	require.NoError(t, err)
	assert.Contains(t, out, "accept")

	tomlOut, err := execute(t, "convert", "--to", "toml", yamlPath)
	require.NoError(t, err)
	assert.Contains(t, tomlOut, "kind = ")
	assert.Contains(t, tomlOut, "dfa")

	odd := writeFile(t, "odd.yaml", "kind: nfa\nstart: q-0\naccept: [end state]\nrules:\n  - {from: q-0, on: a, to: end state}\n")
	faOut, err := execute(t, "convert", "--to", "fa", odd)
	require.NoError(t, err)
	out, err = execute(t, "run", writeFile(t, "odd.fa", faOut), "a", "aa")
	require.NoError(t, err, faOut)
	got := lines(out)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "accept")
	assert.Contains(t, got[1], "reject")

	_, err = execute(t, "convert", "--to", "xml", path)
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "automata.toml", "[dot]\nrankdir = \"BT\"\n")
	out, err := execute(t, "--config", cfgPath, "dot", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "rankdir=BT;")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "automata version dev")
}
