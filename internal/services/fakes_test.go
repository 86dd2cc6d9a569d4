package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/baharkarakas/sitecraft-backend/internal/models"
	repo "github.com/baharkarakas/sitecraft-backend/internal/repository"
	"github.com/baharkarakas/sitecraft-backend/internal/schema"
)

type memUsers struct {
	mu      sync.Mutex
	next    int32
	users   map[int32]models.User
	creates int
}

func newMemUsers() *memUsers { return &memUsers{users: map[int32]models.User{}} }

func (m *memUsers) Create(ctx context.Context, in models.InsertUser) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	for _, u := range m.users {
		if u.Username == in.Username {
			return models.User{}, repo.ErrConflict
		}
	}
	m.next++
	u := models.User{ID: m.next, Username: in.Username, Password: in.Password}
	m.users[u.ID] = u
	return u, nil
}

// seedUsers stores users with ids 1..n.
func seedUsers(n int) *memUsers {
	m := newMemUsers()
	for i := 1; i <= n; i++ {
		m.next++
		m.users[m.next] = models.User{ID: m.next, Username: fmt.Sprintf("user%d", i)}
	}
	return m
}

func (m *memUsers) GetByID(ctx context.Context, id int32) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByUsername(ctx context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (m *memUsers) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for id := int32(1); id <= m.next; id++ {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memUsers) Exists(ctx context.Context, id int32) (bool, error) {
	_, err := m.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

type memProjects struct {
	mu       sync.Mutex
	next     int32
	projects map[int32]models.Project
	reads    int
	lastPage [2]int
}

func newMemProjects() *memProjects { return &memProjects{projects: map[int32]models.Project{}} }

func (m *memProjects) Create(ctx context.Context, in models.InsertProject) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	p := models.Project{
		ID: m.next, UserID: in.UserID, Name: in.Name, Description: in.Description,
		HTML: in.HTML, CSS: in.CSS, JavaScript: in.JavaScript, Framework: in.Framework,
		IsPublished: in.IsPublished, Settings: in.Settings, CreatedAt: time.Now().UTC(),
	}
	m.projects[p.ID] = p
	return p, nil
}

func (m *memProjects) GetByID(ctx context.Context, id int32) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	p, ok := m.projects[id]
	if !ok {
		return models.Project{}, repo.ErrNotFound
	}
	return p, nil
}

func (m *memProjects) ListByUser(ctx context.Context, userID int32, limit, offset int) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastPage = [2]int{limit, offset}
	var out []models.Project
	for id := int32(1); id <= m.next; id++ {
		if p, ok := m.projects[id]; ok && p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProjects) Update(ctx context.Context, id int32, changes []schema.Assignment) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return models.Project{}, repo.ErrNotFound
	}
	for _, c := range changes {
		switch c.Column {
		case "name":
			p.Name = c.Value.(string)
		case "description":
			p.Description = c.Value.(string)
		case "html":
			p.HTML = strOrNil(c.Value)
		case "css":
			p.CSS = strOrNil(c.Value)
		case "javascript":
			p.JavaScript = strOrNil(c.Value)
		case "framework":
			p.Framework = strOrNil(c.Value)
		case "is_published":
			if b, ok := c.Value.(bool); ok {
				p.IsPublished = &b
			} else {
				p.IsPublished = nil
			}
		case "settings":
			p.Settings, _ = c.Value.(map[string]any)
		}
	}
	m.projects[id] = p
	return p, nil
}

func (m *memProjects) Delete(ctx context.Context, id int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

func strOrNil(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

type memCache struct {
	mu       sync.Mutex
	entries  map[int32]models.Project
	versions map[int32]int64
	failGet  bool
}

func newMemCache() *memCache {
	return &memCache{entries: map[int32]models.Project{}, versions: map[int32]int64{}}
}

func (c *memCache) Get(ctx context.Context, id int32) (models.Project, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return models.Project{}, false, errors.New("cache down")
	}
	p, ok := c.entries[id]
	return p, ok, nil
}

func (c *memCache) Version(ctx context.Context, id int32) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[id], nil
}

func (c *memCache) Fill(ctx context.Context, p models.Project, version int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[p.ID] != version {
		return nil
	}
	c.entries[p.ID] = p
	return nil
}

func (c *memCache) Invalidate(ctx context.Context, id int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	c.versions[id]++
	return nil
}

func (c *memCache) has(id int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[id]
	return ok
}
