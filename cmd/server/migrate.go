package main

import (
	"gorm.io/gorm"

	authentity "github.com/zakariadrk66/BTP/internal/auth/entity"
	"github.com/zakariadrk66/BTP/internal/procurement/entity"
)

// migrate creates the schema. AutoMigrate covers tables and indexes;
// the raw statements add the status check constraints and the RESTRICT
// rule protecting selected quotations.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&entity.Supplier{},
		&entity.Project{},
		&entity.Article{},
		&entity.PurchaseRequest{},
		&entity.Quotation{},
		&entity.PurchaseOrder{},
		&entity.Invoice{},
		&entity.GoodsReceipt{},
	); err != nil {
		return err
	}

	migrationSQL := []string{
		"ALTER TABLE purchase_requests DROP CONSTRAINT IF EXISTS purchase_requests_status_check",
		"ALTER TABLE purchase_requests ADD CONSTRAINT purchase_requests_status_check CHECK (status IN ('pending', 'approved', 'rejected', 'flagged'))",
		"ALTER TABLE purchase_requests DROP CONSTRAINT IF EXISTS purchase_requests_urgency_check",
		"ALTER TABLE purchase_requests ADD CONSTRAINT purchase_requests_urgency_check CHECK (urgency IN ('low', 'normal', 'high', 'urgent'))",

		"ALTER TABLE purchase_orders DROP CONSTRAINT IF EXISTS purchase_orders_status_check",
		"ALTER TABLE purchase_orders ADD CONSTRAINT purchase_orders_status_check CHECK (status IN ('draft', 'sent', 'confirmed', 'cancelled'))",

		"ALTER TABLE invoices DROP CONSTRAINT IF EXISTS invoices_status_check",
		"ALTER TABLE invoices ADD CONSTRAINT invoices_status_check CHECK (status IN ('draft', 'submitted', 'validated', 'rejected', 'paid'))",

		"ALTER TABLE goods_receipts DROP CONSTRAINT IF EXISTS goods_receipts_status_check",
		"ALTER TABLE goods_receipts ADD CONSTRAINT goods_receipts_status_check CHECK (status IN ('pending', 'partial', 'complete', 'rejected'))",

		// A quotation selected by an order must not be deletable.
		"ALTER TABLE purchase_orders DROP CONSTRAINT IF EXISTS fk_purchase_orders_quotation",
		"ALTER TABLE purchase_orders ADD CONSTRAINT fk_purchase_orders_quotation FOREIGN KEY (quotation_id) REFERENCES quotations(id) ON DELETE RESTRICT",
	}

	for _, sql := range migrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}

	return nil
}
