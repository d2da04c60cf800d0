package dialect

import "strconv"

var numberedPlaceholders = [...]string{
	"$1", "$2", "$3", "$4", "$5", "$6", "$7", "$8", "$9", "$10",
	"$11", "$12", "$13", "$14", "$15", "$16", "$17", "$18", "$19", "$20",
}

// numbered spells the n-th argument as $n.
type numbered struct {
	name      string
	returning bool
}

func (d numbered) Name() string { return d.name }

func (d numbered) Placeholder(n int) string {
	if n > 0 && n <= len(numberedPlaceholders) {
		return numberedPlaceholders[n-1]
	}
	return "$" + strconv.Itoa(n)
}

func (d numbered) SupportsReturning() bool { return d.returning }

// positional spells every argument as ?; the index is ignored.
type positional struct {
	name      string
	returning bool
}

func (d positional) Name() string { return d.name }

func (d positional) Placeholder(int) string { return "?" }

func (d positional) SupportsReturning() bool { return d.returning }

// Numbered returns the bare $n placeholder policy.
func Numbered() Dialect { return numbered{name: "numbered", returning: true} }

// Positional returns the bare ? placeholder policy.
func Positional() Dialect { return positional{name: "positional", returning: true} }

// Postgres returns the PostgreSQL dialect.
func Postgres() Dialect { return numbered{name: NamePostgres, returning: true} }

// MySQL returns the MySQL dialect. MySQL has no RETURNING clause.
func MySQL() Dialect { return positional{name: NameMySQL, returning: false} }

// SQLite returns the SQLite dialect.
func SQLite() Dialect { return positional{name: NameSQLite, returning: true} }

// Dialect names.
const (
	NamePostgres = "postgres"
	NameMySQL    = "mysql"
	NameSQLite   = "sqlite"
)

func init() {
	Register("postgres", Postgres())
	Register("postgresql", Postgres())
	Register("pgx", Postgres())
	Register("mysql", MySQL())
	Register("sqlite", SQLite())
	Register("sqlite3", SQLite())
	Register("numbered", Numbered())
	Register("positional", Positional())
}
