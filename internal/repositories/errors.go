package repositories

import (
	"errors"

	"walletdesk/internal/domain"

	"gorm.io/gorm"
)

// translateError maps driver-level failures onto the domain taxonomy. Unique
// violations become DuplicateIdentifierError; record-not-found becomes a
// NotFoundError for the given entity. Anything else propagates unchanged as a
// request-fatal store failure.
func translateError(err error, entity string, id any, dupField, dupValue string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NewNotFound(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.NewDuplicateIdentifier(dupField, dupValue)
	default:
		return err
	}
}
