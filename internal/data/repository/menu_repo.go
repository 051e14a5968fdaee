package repository

import (
	"context"
	"fmt"

	"fast-food/internal/data/entity"
	"fast-food/pkg/database"

	"go.uber.org/zap"
)

type MenuRepository interface {
	FindAvailable(ctx context.Context) ([]entity.MenuItem, error)
}

type menuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

func (r *menuRepository) FindAvailable(ctx context.Context) ([]entity.MenuItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, category,
		       COALESCE(image_url, ''), is_available
		FROM menu_items
		WHERE is_available = TRUE
		ORDER BY category, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query menu items", zap.Error(err))
		return nil, fmt.Errorf("find available menu items: %w", err)
	}
	defer rows.Close()

	items := make([]entity.MenuItem, 0)
	for rows.Next() {
		var item entity.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.ImageURL,
			&item.IsAvailable,
		); err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate menu item rows: %w", err)
	}

	return items, nil
}
