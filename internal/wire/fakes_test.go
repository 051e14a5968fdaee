package wire

import (
	"context"
	"sort"
	"sync"
	"time"

	"fast-food/internal/data/entity"
	"fast-food/internal/data/repository"
	"fast-food/pkg/mailer"

	"github.com/google/uuid"
)

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func (m *memoryUsers) Create(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	user.CreatedAt = time.Now()
	m.users[user.Email] = *user
	return nil
}

func (m *memoryUsers) byID(id uuid.UUID) *entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return &u
		}
	}
	return nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		return &u, nil
	}
	return nil, nil
}

type memoryMenu struct {
	items []entity.MenuItem
}

func (m *memoryMenu) FindAvailable(context.Context) ([]entity.MenuItem, error) {
	out := make([]entity.MenuItem, 0, len(m.items))
	for _, item := range m.items {
		if item.IsAvailable {
			out = append(out, item)
		}
	}
	return out, nil
}

type memoryOrders struct {
	mu     sync.Mutex
	menu   *memoryMenu
	users  *memoryUsers
	orders map[int64]entity.Order
	nextID int64
}

func (m *memoryOrders) CreateWithItems(_ context.Context, order *entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	order.ID = m.nextID
	order.CreatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].ID = int64(i + 1)
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	stored.Items = append([]entity.OrderItem(nil), order.Items...)
	m.orders[order.ID] = stored
	return nil
}

func (m *memoryOrders) FindAllWithItems(context.Context) ([]entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := map[int]string{}
	for _, item := range m.menu.items {
		names[item.ID] = item.Name
	}

	out := make([]entity.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if u := m.users.byID(o.UserID); u != nil {
			o.UserName = u.Name
		}
		items := make([]entity.OrderItem, 0, len(o.Items))
		for _, item := range o.Items {
			item.ItemName = names[item.MenuItemID]
			items = append(items, item)
		}
		o.Items = items
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memoryOrders) UpdateStatus(_ context.Context, orderID int64, status entity.OrderStatus) (*entity.OrderContact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	o.Status = status
	m.orders[orderID] = o
	return &entity.OrderContact{
		OrderID:     orderID,
		Email:       o.CustomerEmail,
		Name:        o.CustomerName,
		TotalAmount: o.TotalAmount,
	}, nil
}

type recordingSender struct {
	mu       sync.Mutex
	messages []mailer.Message
	err      error
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return s.err
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}
