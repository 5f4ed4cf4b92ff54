package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	tests := []struct {
		name      string
		fontStyle []string
		expected  string
	}{
		{
			name:     "no style",
			expected: `{"scope":"comment","settings":{"foreground":"#abcdef"}}`,
		},
		{
			name:      "italic",
			fontStyle: []string{"italic"},
			expected:  `{"scope":"comment","settings":{"foreground":"#abcdef","fontStyle":"italic"}}`,
		},
		{
			name:      "explicit empty style",
			fontStyle: []string{""},
			expected:  `{"scope":"comment","settings":{"foreground":"#abcdef","fontStyle":""}}`,
		},
		{
			name:      "combined style",
			fontStyle: []string{"italic bold underline"},
			expected:  `{"scope":"comment","settings":{"foreground":"#abcdef","fontStyle":"italic bold underline"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := Token("comment", "#abcdef", tt.fontStyle...)
			data, err := json.Marshal(rule)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestTokenWithoutStyleHasNilFontStyle(t *testing.T) {
	rule := Token("keyword", "#112233")
	assert.Equal(t, "keyword", rule.Scope)
	assert.Nil(t, rule.Settings.FontStyle)
}

func TestConcat(t *testing.T) {
	rules := Concat(
		[]Rule{Token("comment", "#abcdef", "italic")},
		[]Rule{Token("keyword", "#112233")},
	)

	data, err := json.Marshal(rules)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"scope":"comment","settings":{"foreground":"#abcdef","fontStyle":"italic"}},
		{"scope":"keyword","settings":{"foreground":"#112233"}}
	]`, string(data))
}

func TestConcatEmpty(t *testing.T) {
	assert.Empty(t, Concat())
	assert.Empty(t, Concat(nil, []Rule{}))
}
