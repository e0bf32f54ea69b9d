package roster

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	f "github.com/multimediallc/namegroups/pkg/functional"
	"github.com/multimediallc/namegroups/pkg/people"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
)

type record struct {
	First *string `toml:"first" json:"first"`
	Last  *string `toml:"last" json:"last"`
}

func (r *record) person() *people.Person {
	if r == nil {
		return nil
	}
	return &people.Person{FirstName: r.First, LastName: r.Last}
}

type tomlRoster struct {
	Person []record `toml:"person"`
}

// Parse decodes a roster, choosing the format from the extension of name:
// .toml, .json, or one person per line for anything else.
func Parse(name string, data []byte) ([]*people.Person, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		var r tomlRoster
		if err := toml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		return f.Map(r.Person, func(rec record) *people.Person { return rec.person() }), nil
	case ".json":
		var recs []*record
		if err := json.Unmarshal(data, &recs); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		// null entries stay as nil records
		return f.Map(recs, func(rec *record) *people.Person { return rec.person() }), nil
	default:
		return ParseLines(strings.Split(string(data), "\n")), nil
	}
}

// ParseLines reads one person per line. Blank lines and lines starting with
// '#' are skipped.
//
// "first,last" splits on the comma and an empty side is a missing name.
// Otherwise the first word is the first name and the rest is the last name.
func ParseLines(lines []string) []*people.Person {
	return lo.FilterMap(lines, func(line string, _ int) (*people.Person, bool) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			return nil, false
		}
		return parseLine(line), true
	})
}

func parseLine(line string) *people.Person {
	if first, last, found := strings.Cut(line, ","); found {
		return &people.Person{FirstName: optional(first), LastName: optional(last)}
	}
	fields := strings.Fields(line)
	p := &people.Person{FirstName: people.Name(fields[0])}
	if len(fields) > 1 {
		p.LastName = people.Name(strings.Join(fields[1:], " "))
	}
	return p
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
