package clause

import "strings"

// Where is an ordered set of condition fragments.
//
// Fragments are concatenated as given. Combining several fragments with
// AND/OR is the caller's job, see And and Or.
type Where struct {
	conditions []string
}

// NewWhere creates a Where from the given fragments.
func NewWhere(conditions ...string) *Where {
	w := &Where{}
	return w.SetConditions(conditions)
}

// SetConditions replaces all conditions.
func (w *Where) SetConditions(conditions []string) *Where {
	w.conditions = append(make([]string, 0, len(conditions)), conditions...)
	return w
}

// Clone returns an independent copy of w. A nil Where clones to nil.
func (w *Where) Clone() *Where {
	if w == nil {
		return nil
	}
	return NewWhere(w.conditions...)
}

// Empty reports whether the clause holds no non-blank condition. An empty
// Where still renders as "WHERE " and should not be attached to a statement.
func (w *Where) Empty() bool {
	if w == nil {
		return true
	}
	for _, c := range w.conditions {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// SQL renders "WHERE " followed by the concatenated conditions.
func (w *Where) SQL() string {
	var buf strings.Builder
	buf.WriteString("WHERE ")
	if w == nil {
		return buf.String()
	}
	for _, c := range w.conditions {
		buf.WriteString(c)
	}
	return buf.String()
}

// And joins conditions with AND into a single fragment. Blank conditions are
// skipped and multi-condition results are parenthesized per operand.
func And(conditions ...string) string {
	return join("AND", conditions...)
}

// Or joins conditions with OR into a single fragment.
func Or(conditions ...string) string {
	return join("OR", conditions...)
}

func join(op string, conditions ...string) string {
	parts := make([]string, 0, len(conditions))
	for _, c := range conditions {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		parts = append(parts, c)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	for i, p := range parts {
		parts[i] = "(" + p + ")"
	}
	return strings.Join(parts, " "+op+" ")
}
