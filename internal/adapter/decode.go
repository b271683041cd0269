package adapter

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-playground/validator/v10"
)

// userRecord is the wire shape of one directory entry. Pointer fields tell a
// missing or null key apart from a zero value.
type userRecord struct {
	ID    *int64  `json:"id" validate:"required,min=0"`
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
}

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeUsers parses body as a JSON array of users. Either every record is
// valid and all users are returned in payload order, or an [ErrDecode] error
// is returned and no users at all.
func decodeUsers(body []byte) ([]models.User, error) {
	var records []userRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of users", ErrDecode)
	}

	users := make([]models.User, 0, len(records))
	for i := range records {
		if err := recordValidator.Struct(&records[i]); err != nil {
			return nil, fmt.Errorf("%w: user at index %d: %w", ErrDecode, i, err)
		}

		users = append(users, models.User{
			ID:    *records[i].ID,
			Name:  *records[i].Name,
			Email: *records[i].Email,
		})
	}

	return users, nil
}
