package libdiff

// Reverse returns the changes undoing changes: Apply(Apply(d, cs),
// Reverse(cs)) equals d.
func Reverse(changes []Change) []Change {
	n := len(changes)
	res := make([]Change, n)
	for i, c := range changes {
		r := Change{
			Op:   Replace,
			Path: c.Path.Clone(),
			From: c.To.Clone(),
			To:   c.From.Clone(),
		}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		}
		res[n-1-i] = r
	}
	return res
}
