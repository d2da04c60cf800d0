// Package clause renders the optional fragments attached to statements:
// WHERE predicates, RETURNING column lists and the JOIN placeholder.
//
// Clauses only produce text. Bound values never pass through this package;
// conditions carry placeholders produced by a dialect.Dialect instead.
package clause
