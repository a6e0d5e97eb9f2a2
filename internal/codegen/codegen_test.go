package codegen

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata/internal/fa"
	"automata/internal/pattern"
)

func containsAB() *fa.DFADesign {
	return fa.NewDFADesign(1, []fa.State{3}, fa.NewRulebook(
		fa.NewRule(1, 'a', 2), fa.NewRule(1, 'b', 1),
		fa.NewRule(2, 'a', 2), fa.NewRule(2, 'b', 3),
		fa.NewRule(3, 'a', 3), fa.NewRule(3, 'b', 3),
	))
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, containsAB(), Options{Package: "matchers", Func: "ContainsAB"}))
	src := buf.String()

	file, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err, src)
	assert.Equal(t, "matchers", file.Name.Name)

	assert.True(t, strings.HasPrefix(src, "// Code generated by automata gen. DO NOT EDIT."))
	assert.Contains(t, src, "func ContainsAB(input string) bool {")
	assert.Contains(t, src, "state := 0")
	assert.Contains(t, src, "for _, r := range input {")
	assert.Contains(t, src, "case 'a':")
	assert.Contains(t, src, "state = 2")
	assert.Contains(t, src, "return true")
}

func TestGenerateDefaultsAndDeterminism(t *testing.T) {
	d := pattern.Build(pattern.MustParse("(ab|a)*c"), fa.NewAllocator()).Determinize(fa.NewAllocator())

	var first, second bytes.Buffer
	require.NoError(t, Generate(&first, d, Options{Source: "/(ab|a)*c/"}))
	require.NoError(t, Generate(&second, d, Options{}))

	assert.Contains(t, first.String(), "package main")
	assert.Contains(t, first.String(), "func Match(input string) bool {")
	assert.Contains(t, first.String(), "matches /(ab|a)*c/ in full")

	// numbering does not depend on allocation
	other := pattern.Build(pattern.MustParse("(ab|a)*c"), fa.NewAllocator()).Determinize(&fa.Allocator{})
	var third bytes.Buffer
	require.NoError(t, Generate(&third, other, Options{}))
	assert.Equal(t, second.String(), third.String())

	_, err := parser.ParseFile(token.NewFileSet(), "gen.go", first.Bytes(), 0)
	require.NoError(t, err)
}

func TestGenerateNoAcceptStates(t *testing.T) {
	d := fa.NewDFADesign(1, nil, fa.NewRulebook(fa.NewRule(1, 'a', 1)))
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, d, Options{}))
	assert.NotContains(t, buf.String(), "return true")
	_, err := parser.ParseFile(token.NewFileSet(), "gen.go", buf.Bytes(), 0)
	require.NoError(t, err)
}

func TestGenerateInvalidNames(t *testing.T) {
	tests := []Options{
		{Package: "bad-name"},
		{Package: "_"},
		{Func: "1st"},
		{Func: "bool"},
		{Func: "len"},
		{Func: "nil"},
		{Func: "init"},
		{Func: "main"},
		{Package: "main", Func: "main"},
	}
	for _, opts := range tests {
		var buf bytes.Buffer
		err := Generate(&buf, containsAB(), opts)
		assert.ErrorIs(t, err, ErrInvalidName, "%+v", opts)
		assert.Zero(t, buf.Len())
	}

	var buf bytes.Buffer
	assert.NoError(t, Generate(&buf, containsAB(), Options{Package: "matchers", Func: "main"}))
}

// TestGeneratedCodeAgreesWithDesign compiles the generated matcher with a
// small driver and compares its verdicts with the design's.
func TestGeneratedCodeAgreesWithDesign(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go tool")
	}
	goTool, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go tool not found")
	}

	d := pattern.Build(pattern.MustParse("(ab|a)*c|b*"), nil).Determinize(nil)
	dir := t.TempDir()
	var gen bytes.Buffer
	require.NoError(t, Generate(&gen, d, Options{}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "match.go"), gen.Bytes(), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "driver.go"), []byte(`package main

import (
	"fmt"
	"os"
)

func main() {
	for _, arg := range os.Args[1:] {
		fmt.Println(Match(arg))
	}
}
`), 0o644))

	inputs := []string{"", "c", "ac", "abc", "abac", "aabc", "b", "bbb", "bc", "abab", "ca", "x"}
	args := append([]string{"run", "match.go", "driver.go"}, inputs...)
	cmd := exec.Command(goTool, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	got := strings.Fields(string(out))
	require.Len(t, got, len(inputs))
	for i, input := range inputs {
		assert.Equal(t, strconv.FormatBool(d.Accepts(input)), got[i], "input %q", input)
	}
}
