package build

import (
	"testing"

	"github.com/AvengeMedia/switcher/internal/color"
	"github.com/AvengeMedia/switcher/internal/config"
	"github.com/AvengeMedia/switcher/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	doc := theme.NewDocument(theme.Meta{Name: "test"},
		map[string]color.Color{"editor.background": "#000000"},
		[]theme.Rule{
			theme.Token("keyword", "#ffffff"),
			theme.Token("comment", "#ffffff1a"),
			theme.Token("string", "#222222"),
		})

	findings, err := Check(doc, 4.5)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	// faded white over black ends up darker than #222222
	assert.Equal(t, "comment", findings[0].Scope)
	assert.Equal(t, "string", findings[1].Scope)
	assert.Less(t, findings[0].Ratio, findings[1].Ratio)
}

func TestCheckNeedsBackground(t *testing.T) {
	doc := theme.NewDocument(theme.Meta{Name: "test"}, nil, []theme.Rule{theme.Token("keyword", "#ffffff")})
	_, err := Check(doc, 4.5)
	assert.Error(t, err)
}

func TestCheckDefaultTheme(t *testing.T) {
	res, err := Compose(config.Default())
	require.NoError(t, err)

	findings, err := Check(res.Document, 1.0)
	require.NoError(t, err)
	assert.Empty(t, findings)
}
