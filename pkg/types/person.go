package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Person holds the personal fields shared by people in the roster.
type Person struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Address string `json:"address"`
}

// Describe renders the person's fields, one per line.
func (p Person) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Age: %d\n", p.Age)
	fmt.Fprintf(&b, "Address: %s\n", p.Address)
	return b.String()
}

// ParseAge reads an age written as plain ASCII digits. Signs, spaces inside
// the number and fractions are rejected.
func ParseAge(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return age, true
}
