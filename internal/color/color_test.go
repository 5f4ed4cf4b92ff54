package color

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Color
	}{
		{name: "long form", input: "#625690", expected: "#625690"},
		{name: "uppercase", input: "#ABCDEF", expected: "#abcdef"},
		{name: "no hash", input: "ff0000", expected: "#ff0000"},
		{name: "short form", input: "#abc", expected: "#aabbcc"},
		{name: "short form with alpha", input: "#0000", expected: "#00000000"},
		{name: "long form with alpha", input: "#f425fc59", expected: "#f425fc59"},
		{name: "opaque alpha dropped", input: "#ff0000ff", expected: "#ff0000"},
		{name: "surrounding space", input: "  #112233 ", expected: "#112233"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "#", "#12", "#12345", "#1234567", "#gg0000", "red"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrInvalidHex)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("#nope") })
	assert.NotPanics(t, func() { MustParse("#123") })
}

func TestAlpha(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		opacity  float64
		expected Color
	}{
		{name: "fully opaque", color: "#112233", opacity: 1, expected: "#112233"},
		{name: "fully transparent", color: "#112233", opacity: 0, expected: "#11223300"},
		{name: "half", color: "#112233", opacity: 0.5, expected: "#11223380"},
		{name: "tenth", color: "#112233", opacity: 0.1, expected: "#1122331a"},
		{name: "replaces existing alpha", color: "#11223344", opacity: 1, expected: "#112233"},
		{name: "short input", color: "#abc", opacity: 0.5, expected: "#aabbcc80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Alpha(tt.color, tt.opacity)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAlphaPreservesChannels(t *testing.T) {
	for _, c := range []Color{"#000000", "#ffffff", "#625690", "#43fdd5"} {
		for _, o := range []float64{0, 0.07, 0.25, 0.6, 0.9, 1} {
			result, err := Alpha(c, o)
			require.NoError(t, err)
			assert.Equal(t, string(c), string(result)[:7], "rgb changed for %s at %v", c, o)
		}
	}
}

func TestAlphaRejectsOutOfRange(t *testing.T) {
	for _, o := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err := Alpha("#112233", o)
		assert.ErrorIs(t, err, ErrOpacityRange)
	}

	_, err := Alpha("#12345", 0.5)
	assert.ErrorIs(t, err, ErrInvalidHex)

	assert.Panics(t, func() { MustAlpha("#112233", 2) })
}

func TestBrightenIdentity(t *testing.T) {
	for _, c := range []Color{"#000000", "#ffffff", "#625690", "#112233", "#f425fc59"} {
		result, err := Brighten(c, 0)
		require.NoError(t, err)
		assert.Equal(t, c, result)
	}
}

func TestBrightenMonotonic(t *testing.T) {
	colors := []Color{"#000000", "#112233", "#625690", "#ff0000", "#00ff00", "#3060c0", "#808080", "#43fdd5", "#ff00ff", "#de29e8", "#f425fc"}
	for r := 0; r <= 0xff; r += 0x55 {
		for g := 0; g <= 0xff; g += 0x55 {
			for b := 0; b <= 0xff; b += 0x55 {
				colors = append(colors, FromRGB(RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}))
			}
		}
	}

	for _, c := range colors {
		t.Run(string(c), func(t *testing.T) {
			prev, prevColor := Luminance(c), c
			for i := 1; i <= 600; i++ {
				f := float64(i) * 0.005
				result, err := Brighten(c, f)
				require.NoError(t, err)

				lum := Luminance(result)
				if lum < prev {
					t.Fatalf("brighten(%s, %.3f) = %s is darker than %s", c, f, result, prevColor)
				}
				prev, prevColor = lum, result
			}
		})
	}
}

func TestBrightenSaturatedSteps(t *testing.T) {
	tests := []struct {
		color  Color
		f1, f2 float64
	}{
		{"#ff00ff", 0.245, 0.25},
		{"#de29e8", 1.51, 1.515},
	}

	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			lower, err := Brighten(tt.color, tt.f1)
			require.NoError(t, err)
			higher, err := Brighten(tt.color, tt.f2)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, Luminance(higher), Luminance(lower), "%s -> %s", lower, higher)
		})
	}
}

func TestBrightenReachesWhite(t *testing.T) {
	for _, c := range []Color{"#000000", "#625690", "#ff00ff"} {
		result, err := Brighten(c, 6)
		require.NoError(t, err)
		assert.Equal(t, Color("#ffffff"), result)
	}
}

func TestBrightenKeepsHue(t *testing.T) {
	hueAngle := func(c Color) float64 {
		rgb := ToRGB(c)
		_, a, b := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Lab()
		return math.Atan2(b, a)
	}

	for _, c := range []Color{"#3060c0", "#625690", "#a03030"} {
		result, err := Brighten(c, 0.5)
		require.NoError(t, err)
		assert.Greater(t, Luminance(result), Luminance(c))
		assert.InDelta(t, hueAngle(c), hueAngle(result), 0.05, "hue drifted for %s -> %s", c, result)
	}
}

func TestBrightenEdges(t *testing.T) {
	result, err := Brighten("#ffffff", 2)
	require.NoError(t, err)
	assert.Equal(t, Color("#ffffff"), result)

	result, err = Brighten("#11223380", 1)
	require.NoError(t, err)
	assert.Equal(t, "80", string(result)[7:])

	for _, f := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := Brighten("#112233", f)
		assert.ErrorIs(t, err, ErrFactorRange)
	}

	_, err = Brighten("#xyz", 1)
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestBlend(t *testing.T) {
	result, err := Blend("#ffffff80", "#000000")
	require.NoError(t, err)
	assert.Equal(t, Color("#808080"), result)

	result, err = Blend("#112233", "#ffffff")
	require.NoError(t, err)
	assert.Equal(t, Color("#112233"), result)

	result, err = Blend("#ff000000", "#00ff00")
	require.NoError(t, err)
	assert.Equal(t, Color("#00ff00"), result)

	_, err = Blend("#ff0000", "nope")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestOpaque(t *testing.T) {
	assert.True(t, Color("#112233").Opaque())
	assert.False(t, Color("#11223380").Opaque())
	assert.False(t, Color("bogus").Opaque())
}

func TestTransparency(t *testing.T) {
	v, ok := Transparency("DROP")
	require.True(t, ok)
	assert.Equal(t, OpacityDrop, v)

	v, ok = Transparency("inactive")
	require.True(t, ok)
	assert.Equal(t, OpacityInactive, v)

	_, ok = Transparency("MISSING")
	assert.False(t, ok)

	for name, o := range Presets() {
		assert.True(t, o >= 0 && o <= 1, "%s out of range", name)
	}

	p := Presets()
	p["DROP"] = 0
	v, _ = Transparency("DROP")
	assert.Equal(t, OpacityDrop, v, "Presets must return a copy")
}

func TestTone(t *testing.T) {
	dark, err := Tone("#625690", 20)
	require.NoError(t, err)
	light, err := Tone("#625690", 90)
	require.NoError(t, err)

	assert.Less(t, Luminance(dark), Luminance("#625690"))
	assert.Greater(t, Luminance(light), Luminance("#625690"))

	black, err := Tone("#625690", 0)
	require.NoError(t, err)
	assert.Equal(t, Color("#000000"), black)

	_, err = Tone("#625690", 101)
	assert.Error(t, err)
	_, err = Tone("#62569", 50)
	assert.ErrorIs(t, err, ErrInvalidHex)
}
