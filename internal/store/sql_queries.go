package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const credentialsTable = "credentials"

// upsertCredentialSuffix turns the INSERT into create-or-replace keyed by name.
const upsertCredentialSuffix = "ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

func buildGetCredentialQuery(name string) (string, []any, error) {
	return sq.Select("value").
		From(credentialsTable).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
}

func buildSaveCredentialQuery(name, value string, at time.Time) (string, []any, error) {
	return sq.Insert(credentialsTable).
		Columns("name", "value", "updated_at").
		Values(name, value, at.UTC()).
		Suffix(upsertCredentialSuffix).
		ToSql()
}
