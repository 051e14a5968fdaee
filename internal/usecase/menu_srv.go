package usecase

import (
	"context"
	"time"

	"fast-food/internal/data/repository"
	"fast-food/internal/dto/response"
	"fast-food/pkg/cache"
	"fast-food/pkg/metrics"

	"go.uber.org/zap"
)

const menuCacheKey = "menu:available"

type MenuService interface {
	GetMenu(ctx context.Context) ([]response.MenuItemResponse, error)
}

type menuService struct {
	menu  repository.MenuRepository
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewMenuService(menu repository.MenuRepository, c cache.Cache, ttl time.Duration, log *zap.Logger) MenuService {
	if c == nil {
		c = cache.Noop{}
	}
	return &menuService{
		menu:  menu,
		cache: c,
		ttl:   ttl,
		log:   log.With(zap.String("service", "menu")),
	}
}

// GetMenu serves available items, from cache when a fresh copy exists.
// Cache failures fall through to the database.
func (s *menuService) GetMenu(ctx context.Context) ([]response.MenuItemResponse, error) {
	var cached []response.MenuItemResponse
	hit, err := s.cache.GetJSON(ctx, menuCacheKey, &cached)
	switch {
	case err != nil:
		metrics.MenuCacheLookups.WithLabelValues("error").Inc()
		s.log.Warn("Menu cache read failed", zap.Error(err))
	case hit:
		metrics.MenuCacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		metrics.MenuCacheLookups.WithLabelValues("miss").Inc()
	}

	items, err := s.menu.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}
	result := response.MenuItemsToResponse(items)

	if s.ttl > 0 {
		if err := s.cache.SetJSON(ctx, menuCacheKey, result, s.ttl); err != nil {
			s.log.Warn("Menu cache write failed", zap.Error(err))
		}
	}

	return result, nil
}
