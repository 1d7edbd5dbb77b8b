package styledecl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleTable(names ...string) map[string][]RuleEntry {
	rules := make(map[string][]RuleEntry)
	for _, name := range names {
		rules[name] = []RuleEntry{{Kind: KindStatic, Static: Rule("."+name, Decl("color", "red"))}}
	}
	return rules
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		rules        []string
		candidate    string
		expectedRule string // "" means no match
		expectedRest string
	}{
		{
			name:         "direct hit",
			rules:        []string{"flex"},
			candidate:    "flex",
			expectedRule: "flex",
			expectedRest: "",
		},
		{
			name:         "direct hit wins over splitting",
			rules:        []string{"bg-blue-500", "bg-blue", "bg"},
			candidate:    "bg-blue-500",
			expectedRule: "bg-blue-500",
			expectedRest: "",
		},
		{
			name:         "single split",
			rules:        []string{"bg-blue"},
			candidate:    "bg-blue-500",
			expectedRule: "bg-blue",
			expectedRest: "500",
		},
		{
			name:         "multiple splits reassemble suffix in order",
			rules:        []string{"bg"},
			candidate:    "bg-blue-500",
			expectedRule: "bg",
			expectedRest: "blue-500",
		},
		{
			name:         "no separator and no match",
			rules:        []string{"flex"},
			candidate:    "grid",
			expectedRule: "",
			expectedRest: "",
		},
		{
			name:         "separators exhausted without match",
			rules:        []string{"flex"},
			candidate:    "foo-bar-baz",
			expectedRule: "",
			expectedRest: "bar-baz",
		},
		{
			name:         "shorter prefix preferred over nothing",
			rules:        []string{"p"},
			candidate:    "p-4",
			expectedRule: "p",
			expectedRest: "4",
		},
		{
			name:         "leading marker survives splitting",
			rules:        []string{"-mt"},
			candidate:    "-mt-4",
			expectedRule: "-mt",
			expectedRest: "4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(ruleTable(tt.rules...), tt.candidate)

			if tt.expectedRule == "" {
				assert.Nil(t, res.Entries)
				assert.Empty(t, res.Name)
			} else {
				require.NotNil(t, res.Entries)
				assert.Equal(t, tt.expectedRule, res.Name)
			}
			assert.Equal(t, tt.expectedRest, res.Rest)
		})
	}
}

// Resolution must terminate for any input, including pathological names.
func TestResolveTerminates(t *testing.T) {
	rules := ruleTable("flex")

	candidates := []string{
		"",
		"-",
		"--",
		"---",
		"a-b-c-d-e-f-g-h-i-j-k-l-m-n-o-p",
		strings.Repeat("x-", 1000) + "x",
	}

	for _, c := range candidates {
		res := Resolve(rules, c)
		assert.Nil(t, res.Entries, "candidate %q", c)
	}
}
