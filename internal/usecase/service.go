package usecase

import (
	"time"

	"fast-food/internal/data/repository"
	"fast-food/pkg/cache"
	"fast-food/pkg/mailer"
	"fast-food/pkg/token"
	"fast-food/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Credentials  CredentialStore
	Auth         AuthService
	Menu         MenuService
	Order        OrderService
	Notification NotificationService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	tokens *token.Service,
	menuCache cache.Cache,
	sender mailer.Sender,
	log *zap.Logger,
) *Service {
	credentials := NewCredentialStore(repo.User, log)
	notification := NewNotificationService(sender, config.Email, log)
	menuTTL := time.Duration(config.Redis.MenuTTLSeconds) * time.Second

	return &Service{
		Credentials:  credentials,
		Auth:         NewAuthService(credentials, tokens, log),
		Menu:         NewMenuService(repo.Menu, menuCache, menuTTL, log),
		Order:        NewOrderService(repo.Order, notification, log),
		Notification: notification,
	}
}
