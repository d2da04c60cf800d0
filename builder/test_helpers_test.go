package builder_test

import "github.com/nikola-chen/ormsql/builder"

func pgQB() *builder.API {
	return builder.Postgres()
}

func mysqlQB() *builder.API {
	return builder.MySQL()
}
