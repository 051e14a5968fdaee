package usecase

import (
	"context"
	"sync"
	"time"

	"fast-food/internal/data/entity"
	"fast-food/internal/data/repository"
	"fast-food/internal/dto/response"
	"fast-food/pkg/mailer"
)

type responseMenu = response.MenuItemResponse

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	err     error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*entity.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	user.CreatedAt = time.Now()
	copied := *user
	f.byEmail[user.Email] = &copied
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

type fakeMenu struct {
	items []entity.MenuItem
	calls int
	err   error
}

func (f *fakeMenu) FindAvailable(context.Context) ([]entity.MenuItem, error) {
	f.calls++
	return f.items, f.err
}

type fakeOrders struct {
	created   []*entity.Order
	createErr error
	listed    []entity.Order
	listErr   error
	contacts  map[int64]entity.OrderContact
	statuses  map[int64]entity.OrderStatus
	updateErr error
}

func (f *fakeOrders) CreateWithItems(_ context.Context, order *entity.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = int64(len(f.created) + 1)
	order.CreatedAt = time.Now()
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrders) FindAllWithItems(context.Context) ([]entity.Order, error) {
	return f.listed, f.listErr
}

func (f *fakeOrders) UpdateStatus(_ context.Context, orderID int64, status entity.OrderStatus) (*entity.OrderContact, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	contact, ok := f.contacts[orderID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if f.statuses == nil {
		f.statuses = map[int64]entity.OrderStatus{}
	}
	f.statuses[orderID] = status
	return &contact, nil
}

type sentStatus struct {
	ctxErr       error
	toEmail      string
	customerName string
	orderID      int64
	status       string
	totalAmount  float64
}

type fakeNotifier struct {
	sent []sentStatus
}

func (f *fakeNotifier) SendStatusUpdate(ctx context.Context, toEmail, customerName string, orderID int64, status string, totalAmount float64) {
	f.sent = append(f.sent, sentStatus{
		ctxErr:       ctx.Err(),
		toEmail:      toEmail,
		customerName: customerName,
		orderID:      orderID,
		status:       status,
		totalAmount:  totalAmount,
	})
}

type fakeSender struct {
	messages []mailer.Message
	err      error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	f.messages = append(f.messages, msg)
	return f.err
}

type fakeCache struct {
	data     map[string]any
	getErr   error
	setCalls int
}

func (f *fakeCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	if f.getErr != nil {
		return false, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if out, ok := dest.(*[]responseMenu); ok {
		*out = v.([]responseMenu)
	}
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	f.setCalls++
	if f.data == nil {
		f.data = map[string]any{}
	}
	if v, ok := value.([]responseMenu); ok {
		f.data[key] = v
	}
	return nil
}
