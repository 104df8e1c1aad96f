package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record already exists")
	ErrReferenced = errors.New("record is referenced by another record")
)

// Repositories bundles the procurement repositories.
type Repositories struct {
	Supplier  *SupplierRepository
	Project   *ProjectRepository
	Article   *ArticleRepository
	PR        *PRRepository
	Quotation *QuotationRepository
	PO        *PORepository
	Invoice   *InvoiceRepository
	Receipt   *ReceiptRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Supplier:  NewSupplierRepository(db),
		Project:   NewProjectRepository(db),
		Article:   NewArticleRepository(db),
		PR:        NewPRRepository(db),
		Quotation: NewQuotationRepository(db),
		PO:        NewPORepository(db),
		Invoice:   NewInvoiceRepository(db),
		Receipt:   NewReceiptRepository(db),
	}
}

// translateErr maps gorm errors to the package sentinels. Requires
// gorm.Config{TranslateError: true} on the connection so unique and
// foreign-key violations surface as typed errors.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferenced
	default:
		return err
	}
}
