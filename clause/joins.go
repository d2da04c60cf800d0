package clause

// Joins reserves a slot for join support. It renders the bare JOIN keyword
// and is not attached to any statement yet.
type Joins struct{}

// SQL returns the JOIN keyword.
func (Joins) SQL() string { return "JOIN" }
