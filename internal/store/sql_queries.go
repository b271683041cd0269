package store

import (
	"fmt"

	"github.com/MKhiriev/go-user-directory/models"
	"github.com/Masterminds/squirrel"
)

// userColumns lists the users columns in scan order.
var userColumns = []string{"id", "name", "email"}

// buildListUsersQuery selects every user ordered by id.
func buildListUsersQuery(builder squirrel.StatementBuilderType) (string, []any, error) {
	query, args, err := builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
