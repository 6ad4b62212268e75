package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash, display_name, created_from)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, password_hash, display_name, is_admin, created_from, created_at, updated_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, display_name, is_admin, created_from, created_at, updated_at
    FROM users
    WHERE username = $1;`

	findTokenByUser = `SELECT token_id, token, user_id, created_at, updated_at
    FROM tokens
    WHERE user_id = $1;`

	findTokenByUserAndValue = `SELECT token_id, token, user_id, created_at, updated_at
    FROM tokens
    WHERE user_id = $1 AND token = $2;`

	// The upsert keeps the existing token value on conflict and only bumps
	// updated_at, which makes concurrent logins for the same user converge
	// on a single session row.
	issueOrRefreshToken = `INSERT INTO tokens (token, user_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
    RETURNING token_id, token, user_id, created_at, updated_at;`

	touchToken = `UPDATE tokens
    SET updated_at = now()
    WHERE token_id = $1;`

	createProject = `INSERT INTO projects (name, owner_id)
    VALUES ($1, $2)
    RETURNING project_id, name, owner_id;`
)

// psql builds SELECT statements with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListUsersQuery assembles the user listing SELECT. The password hash
// column is intentionally absent from the projection.
func buildListUsersQuery(filter UserFilter) (string, []any, error) {
	query := psql.
		Select("user_id", "username", "display_name", "is_admin", "created_from", "created_at", "updated_at").
		From("users").
		OrderBy("username ASC")

	if filter.AdminOnly {
		query = query.Where(sq.Eq{"is_admin": true})
	}

	return query.ToSql()
}

// buildListProjectsQuery assembles the project listing SELECT, optionally
// narrowed to a single owner.
func buildListProjectsQuery(filter ProjectFilter) (string, []any, error) {
	query := psql.
		Select("project_id", "name", "owner_id").
		From("projects").
		OrderBy("name ASC")

	if filter.OwnerID != nil {
		query = query.Where(sq.Eq{"owner_id": *filter.OwnerID})
	}

	return query.ToSql()
}
