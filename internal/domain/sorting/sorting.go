package sorting

import "strings"

// Order is one resolved ORDER BY term. Column always comes from an AllowList.
type Order struct {
	Column string
	Desc   bool
}

// AllowList maps the field names callers may use to real column names.
type AllowList struct {
	fields  map[string]string
	ordered []string
}

func NewAllowList(pairs ...[2]string) AllowList {
	a := AllowList{fields: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		a.fields[p[0]] = p[1]
		a.ordered = append(a.ordered, p[0])
	}
	return a
}

func (a AllowList) Column(field string) (string, bool) {
	col, ok := a.fields[field]
	return col, ok
}

func (a AllowList) Fields() []string {
	out := make([]string, len(a.ordered))
	copy(out, a.ordered)
	return out
}

// Resolve builds an Order for field in the given direction.
func (a AllowList) Resolve(field, dir string) (Order, bool) {
	col, ok := a.Column(field)
	if !ok {
		return Order{}, false
	}
	return Order{Column: col, Desc: Direction(dir) == "DESC"}, true
}

// Direction normalizes to ASC or DESC; anything but "desc" is ASC.
func Direction(dir string) string {
	if strings.EqualFold(strings.TrimSpace(dir), "desc") {
		return "DESC"
	}
	return "ASC"
}
