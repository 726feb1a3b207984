package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"rentbill.app/billing/repository/bills"
	"rentbill.app/billing/repository/utilityconfigs"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Bills          bills.Querier
	UtilityConfigs utilityconfigs.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Bills:          bills.New(db),
		UtilityConfigs: utilityconfigs.New(db),
	}
}
