package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Builder returns a squirrel statement builder using PostgreSQL placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns s into an ILIKE pattern matching it as a literal substring.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
