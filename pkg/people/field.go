package people

import (
	"fmt"
	"strings"
)

// Field names the name field used as the grouping key.
type Field string

const (
	First Field = "first"
	Last  Field = "last"
)

func ParseField(s string) (Field, error) {
	switch Field(strings.ToLower(strings.TrimSpace(s))) {
	case First:
		return First, nil
	case Last:
		return Last, nil
	}
	return "", fmt.Errorf("invalid field %q. Must be one of %s, %s", s, First, Last)
}

func (fd Field) Selector() Selector {
	if fd == Last {
		return LastName
	}
	return FirstName
}

// Other is the field grouped under fd.
func (fd Field) Other() Field {
	if fd == Last {
		return First
	}
	return Last
}

// By groups people keyed by the given field.
// By(First, people) matches LastnamesByFirstname and By(Last, people)
// matches FirstnamesByLastname.
func By(fd Field, people []*Person) *Grouping {
	return Group(people, fd.Selector(), fd.Other().Selector())
}
