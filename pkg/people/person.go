package people

// Person is a single roster entry. A nil name field means the name is unknown.
type Person struct {
	FirstName *string
	LastName  *string
}

// New returns a Person with both names present.
func New(first, last string) *Person {
	return &Person{FirstName: Name(first), LastName: Name(last)}
}

// Name returns a pointer to a copy of s, for building Person literals.
func Name(s string) *string {
	return &s
}

// Selector reads one name field from a Person.
type Selector func(Person) *string

func FirstName(p Person) *string {
	return p.FirstName
}

func LastName(p Person) *string {
	return p.LastName
}
