package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/13132klain/ufa-backend/internal/models"
)

// memCollection is the shared core of the in-memory adapters: a mutex-guarded
// slice handing out copied snapshots. Feed-like entities (news, resources,
// donations, campaigns, memberships, registrations) insert newest-first;
// events append in creation order.
type memCollection[T any] struct {
	mu      sync.Mutex
	items   []T
	idOf    func(T) string
	prepend bool
}

func (c *memCollection[T]) List(_ context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *memCollection[T]) FindByID(_ context.Context, id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			found := item
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (c *memCollection[T]) Insert(_ context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prepend {
		c.items = append([]T{item}, c.items...)
	} else {
		c.items = append(c.items, item)
	}
	return nil
}

func (c *memCollection[T]) Replace(_ context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.idOf(item)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return nil
		}
	}
	return ErrNotFound
}

func (c *memCollection[T]) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type MemoryEventRepository struct {
	memCollection[models.Event]
}

func NewMemoryEventRepository() *MemoryEventRepository {
	r := &MemoryEventRepository{}
	r.idOf = func(e models.Event) string { return e.ID }
	return r
}

type MemoryNewsRepository struct {
	memCollection[models.NewsItem]
}

func NewMemoryNewsRepository() *MemoryNewsRepository {
	r := &MemoryNewsRepository{}
	r.idOf = func(n models.NewsItem) string { return n.ID }
	r.prepend = true
	return r
}

type MemoryLeaderRepository struct {
	memCollection[models.Leader]
}

func NewMemoryLeaderRepository() *MemoryLeaderRepository {
	r := &MemoryLeaderRepository{}
	r.idOf = func(l models.Leader) string { return l.ID }
	return r
}

type MemoryResourceRepository struct {
	memCollection[models.Resource]
}

func NewMemoryResourceRepository() *MemoryResourceRepository {
	r := &MemoryResourceRepository{}
	r.idOf = func(res models.Resource) string { return res.ID }
	r.prepend = true
	return r
}

func (r *MemoryResourceRepository) IncrementDownloads(_ context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].DownloadCount++
			return r.items[i].DownloadCount, nil
		}
	}
	return 0, ErrNotFound
}

type MemoryDonationRepository struct {
	memCollection[models.Donation]
}

func NewMemoryDonationRepository() *MemoryDonationRepository {
	r := &MemoryDonationRepository{}
	r.idOf = func(d models.Donation) string { return d.ID }
	r.prepend = true
	return r
}

type MemoryCampaignRepository struct {
	memCollection[models.DonationCampaign]
}

func NewMemoryCampaignRepository() *MemoryCampaignRepository {
	r := &MemoryCampaignRepository{}
	r.idOf = func(c models.DonationCampaign) string { return c.ID }
	r.prepend = true
	return r
}

func (r *MemoryCampaignRepository) FindByTitle(_ context.Context, title string) (*models.DonationCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Title == title {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryCampaignRepository) IncrementAmount(_ context.Context, id string, delta float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].CurrentAmount += delta
			return nil
		}
	}
	return ErrNotFound
}

type MemoryRegistrationRepository struct {
	memCollection[models.EventRegistration]
}

func NewMemoryRegistrationRepository() *MemoryRegistrationRepository {
	r := &MemoryRegistrationRepository{}
	r.idOf = func(reg models.EventRegistration) string { return reg.ID }
	r.prepend = true
	return r
}

func (r *MemoryRegistrationRepository) FindByEvent(_ context.Context, eventID string) ([]models.EventRegistration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.EventRegistration
	for _, reg := range r.items {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *MemoryRegistrationRepository) FindByEventAndEmail(_ context.Context, eventID, email string) (*models.EventRegistration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.items {
		if reg.EventID == eventID && strings.EqualFold(reg.Email, email) {
			found := reg
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRegistrationRepository) FindByCode(_ context.Context, code string) (*models.EventRegistration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.items {
		if reg.ConfirmationCode == code {
			found := reg
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

type MemoryMembershipRepository struct {
	memCollection[models.Membership]
}

func NewMemoryMembershipRepository() *MemoryMembershipRepository {
	r := &MemoryMembershipRepository{}
	r.idOf = func(m models.Membership) string { return m.ID }
	r.prepend = true
	return r
}

// MemoryUserRepository holds the seeded dashboard accounts.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemoryUserRepository(users []models.User) *MemoryUserRepository {
	return &MemoryUserRepository{users: users}
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}
