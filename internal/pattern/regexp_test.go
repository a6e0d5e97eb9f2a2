package pattern

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata/internal/fa"
)

func TestCompile(t *testing.T) {
	re, err := Compile("a|bc*")
	require.NoError(t, err)

	assert.Equal(t, "a|bc*", re.Source())
	assert.Equal(t, "a|bc*", re.String())
	assert.True(t, re.MatchString("a"))
	assert.True(t, re.MatchString("bc"))
	assert.True(t, re.MatchString("bccc"))
	assert.False(t, re.MatchString("ab"))

	_, err = Compile("(a")
	assert.Error(t, err)
	assert.Panics(t, func() { MustCompile("a)") })
}

func TestCompileCanonicalizes(t *testing.T) {
	re := MustCompile("((a)(b))|((c))")
	assert.Equal(t, "((a)(b))|((c))", re.Source())
	assert.Equal(t, "ab|c", re.String())
}

func TestFromPattern(t *testing.T) {
	re := FromPattern(Star(Choose(Lit('a'), Lit('b'))))
	assert.Equal(t, "(a|b)*", re.Source())
	assert.Equal(t, Star(Choose(Lit('a'), Lit('b'))), re.Pattern())
	assert.True(t, re.MatchString("abba"))
	assert.NotNil(t, re.Design())
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		pattern  string
		text     string
		expected []string
	}{
		{"ab*", "xabbbyaz", []string{"abbb", "a"}},
		{"a|b|c", "zabcx", []string{"a", "b", "c"}},
		{"a(b|c)*d", "abcbcd aaaaaacd abbcd", []string{"abcbcd", "acd", "abbcd"}},
		{"b*", "aaa", nil},
		{"é*", "xééy", []string{"éé"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			var got []string
			for _, m := range MustCompile(tt.pattern).FindAll(tt.text) {
				assert.Equal(t, m.Text, tt.text[m.Start:m.End])
				got = append(got, m.Text)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRegexpConcurrentUse(t *testing.T) {
	re := MustCompile("(ab|a)*c")
	inputs := []string{"c", "abac", "aabc", "abc", "ab", "", "aaaac"}
	want := make([]bool, len(inputs))
	for i, s := range inputs {
		want[i] = re.MatchString(s)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, s := range inputs {
				assert.Equal(t, want[i], re.MatchString(s))
			}
		}()
	}
	wg.Wait()

	got, err := fa.AcceptsAll(context.Background(), re.Design(), inputs, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func BenchmarkMatchString(b *testing.B) {
	re := MustCompile("(a(|b))*")
	txt := strings.Repeat("ab", 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = re.MatchString(txt)
	}
}
