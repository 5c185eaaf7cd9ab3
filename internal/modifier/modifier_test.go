package modifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jimorie/forbidden-lands-dice/internal/dice"
)

func TestParse(t *testing.T) {
	tcs := []struct {
		in   string
		want Modifiers
	}{
		{"", Modifiers{}},
		{"2", Modifiers{Modifier: 2}},
		{"+1 -3", Modifiers{Modifier: -2}},
		{"1+2", Modifiers{Modifier: 3}},
		{"d8", Modifiers{Artifacts: []dice.Artifact{{Dice: 1, Faces: 8}}}},
		{"+1 2d10 D12", Modifiers{
			Artifacts: []dice.Artifact{{Dice: 2, Faces: 10}, {Dice: 1, Faces: 12}},
			Modifier:  1,
		}},
		{"sharp +2", Modifiers{Modifier: 2}},
		{"d", Modifiers{}},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.want, Parse(tc.in), "Parse(%q)", tc.in)
	}
}

func TestMergeAndApply(t *testing.T) {
	m := Merge(Parse("+1 d8"), Parse("-2 2d10"))
	assert.Equal(t, -1, m.Modifier)
	assert.Equal(t, []dice.Artifact{{Dice: 1, Faces: 8}, {Dice: 2, Faces: 10}}, m.Artifacts)

	base := dice.Request{Skill: 2, Modifier: 1, Artifacts: []dice.Artifact{{Dice: 1, Faces: 12}}}
	req := m.Apply(base)
	assert.Equal(t, 0, req.Modifier)
	assert.Len(t, req.Artifacts, 3)
	assert.Len(t, base.Artifacts, 1, "Apply must not alias the caller's slice")
}

func TestParseArtifacts(t *testing.T) {
	assert.Equal(t, []dice.Artifact{{Dice: 1, Faces: 8}, {Dice: 3, Faces: 6}}, ParseArtifacts("d8 3d6 +2"))
	assert.Nil(t, ParseArtifacts("4"))
}

func TestParseBonus(t *testing.T) {
	tcs := map[string]int{
		"2":   2,
		"+1":  1,
		"-1":  1,
		" 3 ": 3,
		"d8":  0,
		"":    0,
		"12x": 12,
	}
	for in, want := range tcs {
		assert.Equal(t, want, ParseBonus(in), "ParseBonus(%q)", in)
	}
}
