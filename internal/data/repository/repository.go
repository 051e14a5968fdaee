package repository

import (
	"fast-food/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Menu  MenuRepository
	Order OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Menu:  NewMenuRepository(db, log),
		Order: NewOrderRepository(db, log),
	}
}
