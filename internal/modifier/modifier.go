// Package modifier parses the free-text bonus fields found on items and
// talents ("+1 2d8", "-2", "d10") into artifact dice and a skill modifier.
package modifier

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jimorie/forbidden-lands-dice/internal/dice"
)

var (
	artifactRe = regexp.MustCompile(`(?i)^(\d*)d(\d+)$`)
	separator  = regexp.MustCompile(`[\s+]+`)
	leadingInt = regexp.MustCompile(`^\s*[+-]?\s*(\d+)`)
)

// Modifiers is the parsed content of one or more bonus fields.
type Modifiers struct {
	Artifacts []dice.Artifact `json:"artifacts,omitempty"`
	Modifier  int             `json:"modifier"`
}

// Parse splits s on whitespace and '+'. NdM tokens become artifact dice,
// integer tokens are summed into the modifier, anything else is ignored.
func Parse(s string) Modifiers {
	var m Modifiers
	for _, tok := range separator.Split(strings.TrimSpace(s), -1) {
		if tok == "" {
			continue
		}
		if a, ok := parseArtifact(tok); ok {
			m.Artifacts = append(m.Artifacts, a)
			continue
		}
		if n, err := strconv.Atoi(tok); err == nil {
			m.Modifier += n
		}
	}
	return m
}

// ParseArtifacts parses a space separated artifact list such as "d8 2d10".
func ParseArtifacts(s string) []dice.Artifact {
	return Parse(s).Artifacts
}

func parseArtifact(tok string) (dice.Artifact, bool) {
	m := artifactRe.FindStringSubmatch(tok)
	if m == nil {
		return dice.Artifact{}, false
	}
	count := 1
	if m[1] != "" {
		count, _ = strconv.Atoi(m[1])
	}
	faces, err := strconv.Atoi(m[2])
	if err != nil || faces < 1 {
		return dice.Artifact{}, false
	}
	return dice.Artifact{Dice: count, Faces: faces}, true
}

// Merge returns a with b's modifier added and b's artifacts appended.
func Merge(a, b Modifiers) Modifiers {
	out := Modifiers{Modifier: a.Modifier + b.Modifier}
	out.Artifacts = append(out.Artifacts, a.Artifacts...)
	out.Artifacts = append(out.Artifacts, b.Artifacts...)
	return out
}

// Apply adds the modifiers to a roll request.
func (m Modifiers) Apply(req dice.Request) dice.Request {
	req.Modifier += m.Modifier
	req.Artifacts = append(append([]dice.Artifact(nil), req.Artifacts...), m.Artifacts...)
	return req
}

// ParseBonus reads the gear bonus of an item field: the leading number,
// ignoring a sign. Fields without one ("d8", "") count as 0.
func ParseBonus(s string) int {
	m := leadingInt.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
