package people

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster() []*Person {
	return []*Person{
		New("John", "Doe"),
		New("John", "Silver"),
		New("Peter", "Doe"),
	}
}

func TestGroupEmptyInput(t *testing.T) {
	tt := []struct {
		name  string
		input []*Person
	}{
		{name: "nil slice", input: nil},
		{name: "empty slice", input: []*Person{}},
		{name: "only nil records", input: []*Person{nil, nil}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			g := Group(tc.input, FirstName, LastName)
			require.NotNil(t, g)
			assert.Equal(t, 0, g.Len())
			assert.Equal(t, map[string][]string{}, g.Map())
		})
	}
}

func TestLastnamesByFirstname(t *testing.T) {
	g := LastnamesByFirstname(roster())
	assert.Equal(t, []string{"JOHN", "PETER"}, g.Keys())
	assert.Equal(t, map[string][]string{
		"JOHN":  {"DOE", "SILVER"},
		"PETER": {"DOE"},
	}, g.Map())
}

func TestFirstnamesByLastname(t *testing.T) {
	g := FirstnamesByLastname(roster())
	assert.Equal(t, []string{"DOE", "SILVER"}, g.Keys())
	assert.Equal(t, map[string][]string{
		"DOE":    {"JOHN", "PETER"},
		"SILVER": {"JOHN"},
	}, g.Map())
}

func TestGroupMissingNames(t *testing.T) {
	tt := []struct {
		name     string
		input    []*Person
		group    func([]*Person) *Grouping
		expected map[string][]string
	}{
		{
			name:     "missing first name as key",
			input:    []*Person{{LastName: Name("Doe")}},
			group:    LastnamesByFirstname,
			expected: map[string][]string{"N/A": {"DOE"}},
		},
		{
			name:     "missing last name as value",
			input:    []*Person{{FirstName: Name("John")}},
			group:    LastnamesByFirstname,
			expected: map[string][]string{"JOHN": {"N/A"}},
		},
		{
			name:     "both names missing",
			input:    []*Person{{}},
			group:    FirstnamesByLastname,
			expected: map[string][]string{"N/A": {"N/A"}},
		},
		{
			name:     "literal n/a merges with missing",
			input:    []*Person{{LastName: Name("Doe")}, New("n/a", "Roe")},
			group:    LastnamesByFirstname,
			expected: map[string][]string{"N/A": {"DOE", "ROE"}},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.group(tc.input).Map())
		})
	}
}

func TestGroupSkipsNilRecords(t *testing.T) {
	valid := New("John", "Doe")
	withNil := LastnamesByFirstname([]*Person{nil, valid, nil})
	without := LastnamesByFirstname([]*Person{valid})
	assert.Equal(t, without.Map(), withNil.Map())
	assert.Equal(t, without.Keys(), withNil.Keys())
}

func TestGroupCaseNormalization(t *testing.T) {
	g := LastnamesByFirstname([]*Person{New("jOhN", "dOe"), New("JOHN", "doe"), New("Émile", "Zola")})
	assert.Equal(t, map[string][]string{
		"JOHN":  {"DOE", "DOE"},
		"ÉMILE": {"ZOLA"},
	}, g.Map())
}

func TestGroupCountMatchesRecords(t *testing.T) {
	input := []*Person{
		New("John", "Doe"),
		nil,
		{LastName: Name("Doe")},
		New("Peter", "Doe"),
		{},
		nil,
		New("John", "Doe"),
	}
	assert.Equal(t, 5, LastnamesByFirstname(input).Count())
	assert.Equal(t, 5, FirstnamesByLastname(input).Count())
}

func TestGroupDoesNotModifyInput(t *testing.T) {
	input := []*Person{New("john", "doe"), nil}
	_ = LastnamesByFirstname(input)
	require.Len(t, input, 2)
	assert.Equal(t, "john", *input[0].FirstName)
	assert.Equal(t, "doe", *input[0].LastName)
	assert.Nil(t, input[1])
}

func TestGroupingCopies(t *testing.T) {
	g := LastnamesByFirstname(roster())
	g.Get("JOHN")[0] = "CHANGED"
	g.Map()["JOHN"][0] = "CHANGED"
	g.Keys()[0] = "CHANGED"
	assert.Equal(t, []string{"DOE", "SILVER"}, g.Get("JOHN"))
	assert.Equal(t, []string{"JOHN", "PETER"}, g.Keys())
	assert.Nil(t, g.Get("NOBODY"))
}

func TestGroupingMarshalJSON(t *testing.T) {
	tt := []struct {
		name     string
		grouping *Grouping
		expected string
	}{
		{
			name:     "empty",
			grouping: LastnamesByFirstname(nil),
			expected: `{}`,
		},
		{
			name:     "keys in first occurrence order",
			grouping: FirstnamesByLastname([]*Person{New("Ann", "Zed"), New("Bob", "Adams"), New("Cy", "Zed")}),
			expected: `{"ZED":["ANN","CY"],"ADAMS":["BOB"]}`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.grouping)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(data))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, NotAvailable, Normalize(nil))
	assert.Equal(t, "", Normalize(Name("")))
	assert.Equal(t, "SILVER", Normalize(Name("Silver")))
}

func TestParseField(t *testing.T) {
	tt := []struct {
		input   string
		want    Field
		wantErr bool
	}{
		{input: "first", want: First},
		{input: " Last ", want: Last},
		{input: "middle", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseField(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBy(t *testing.T) {
	assert.Equal(t, LastnamesByFirstname(roster()).Map(), By(First, roster()).Map())
	assert.Equal(t, FirstnamesByLastname(roster()).Map(), By(Last, roster()).Map())
	assert.Equal(t, Last, First.Other())
	assert.Equal(t, First, Last.Other())
	p := *New("John", "Doe")
	assert.Equal(t, "Doe", *Last.Selector()(p))
	assert.Equal(t, "John", *First.Selector()(p))
}
