package flow

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestError(t *testing.T) {
	loc := Loc{
		Start: Position{Line: 3, Column: 5, Offset: 41},
		End:   Position{Line: 3, Column: 9, Offset: 45},
	}
	err := NewError(loc, "%s not supported", "comprehension")
	test.String(t, err.Error(), "comprehension not supported on line 3 and column 5")

	line, col := err.Position()
	test.T(t, line, 3)
	test.T(t, col, 5)
}

func TestLocString(t *testing.T) {
	loc := Loc{Source: "a.js", Start: Position{Line: 2, Column: 1}}
	test.String(t, loc.String(), "a.js:2:1")
	loc.Source = ""
	test.String(t, loc.String(), "2:1")
}

func TestLocBefore(t *testing.T) {
	a := Loc{Start: Position{Line: 1, Column: 4}}
	b := Loc{Start: Position{Line: 2, Column: 0}}
	c := Loc{Start: Position{Line: 1, Column: 7}}
	test.T(t, a.Before(b), true)
	test.T(t, b.Before(a), false)
	test.T(t, a.Before(c), true)
}
