package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/ports"
)

// In-memory stub repositories shared by the service tests. They mirror the
// filters and sort orders of the real Mongo repositories.

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	seq       int
	createErr error
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(name, email, role string) *domain.User {
	r.seq++
	u := &domain.User{
		ID:    fmt.Sprintf("user_%d", r.seq),
		Name:  name,
		Email: email,
		Role:  role,
	}
	r.byID[u.ID] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("user_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	var out []*domain.User
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := r.byID[id]; ok {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	return r.matching(func(*domain.User) bool { return true }), nil
}

func (r *stubUserRepo) FindByRole(_ context.Context, role string) ([]*domain.User, error) {
	return r.matching(func(u *domain.User) bool { return u.Role == role }), nil
}

func (r *stubUserRepo) FindOneByRole(_ context.Context, role string) (*domain.User, error) {
	users := r.matching(func(u *domain.User) bool { return u.Role == role })
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return users[0], nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) matching(keep func(*domain.User) bool) []*domain.User {
	var out []*domain.User
	for _, u := range r.byID {
		if keep(u) {
			clone := *u
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

type stubCatalogRepo struct {
	byID map[string]*domain.Service
	seq  int
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{byID: make(map[string]*domain.Service)}
}

func (r *stubCatalogRepo) add(title string, price float64) *domain.Service {
	r.seq++
	s := &domain.Service{
		ID:    fmt.Sprintf("svc_%d", r.seq),
		Title: title,
		Price: price,
	}
	r.byID[s.ID] = s
	return s
}

func (r *stubCatalogRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	r.seq++
	clone := *svc
	clone.ID = fmt.Sprintf("svc_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCatalogRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubCatalogRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Service, error) {
	var out []*domain.Service
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if s, ok := r.byID[id]; ok {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCatalogRepo) FindAll(_ context.Context) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, s := range r.byID {
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCatalogRepo) Update(_ context.Context, svc *domain.Service) error {
	if _, ok := r.byID[svc.ID]; !ok {
		return domain.ErrServiceNotFound
	}
	clone := *svc
	r.byID[svc.ID] = &clone
	return nil
}

func (r *stubCatalogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type stubRequestRepo struct {
	byID      map[string]*domain.ServiceRequest
	seq       int
	updateErr error
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{byID: make(map[string]*domain.ServiceRequest)}
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	r.seq++
	clone := *req
	clone.ID = fmt.Sprintf("req_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.ServiceRequest, error) {
	req, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *stubRequestRepo) FindAll(_ context.Context) ([]*domain.ServiceRequest, error) {
	return r.matching(func(*domain.ServiceRequest) bool { return true }), nil
}

func (r *stubRequestRepo) FindByClient(_ context.Context, clientID string) ([]*domain.ServiceRequest, error) {
	return r.matching(func(req *domain.ServiceRequest) bool { return req.ClientID == clientID }), nil
}

func (r *stubRequestRepo) Update(_ context.Context, req *domain.ServiceRequest) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[req.ID]; !ok {
		return domain.ErrRequestNotFound
	}
	clone := *req
	r.byID[req.ID] = &clone
	return nil
}

// matching returns newest first, mirroring the Mongo sort.
func (r *stubRequestRepo) matching(keep func(*domain.ServiceRequest) bool) []*domain.ServiceRequest {
	var out []*domain.ServiceRequest
	for _, req := range r.byID {
		if keep(req) {
			clone := *req
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

type stubProjectRepo struct {
	byID      map[string]*domain.Project
	seq       int
	createErr error
	updateErr error
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) add(p *domain.Project) *domain.Project {
	r.seq++
	if p.ID == "" {
		p.ID = fmt.Sprintf("proj_%d", r.seq)
	}
	r.byID[p.ID] = p
	return p
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("proj_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) FindAll(_ context.Context) ([]*domain.Project, error) {
	return r.matching(func(*domain.Project) bool { return true }), nil
}

func (r *stubProjectRepo) FindByClient(_ context.Context, clientID string) ([]*domain.Project, error) {
	return r.matching(func(p *domain.Project) bool { return p.ClientID == clientID }), nil
}

func (r *stubProjectRepo) FindByEmployee(_ context.Context, employeeID string) ([]*domain.Project, error) {
	return r.matching(func(p *domain.Project) bool { return p.IsAssigned(employeeID) }), nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubProjectRepo) matching(keep func(*domain.Project) bool) []*domain.Project {
	var out []*domain.Project
	for _, p := range r.byID {
		if keep(p) {
			clone := *p
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type stubMessageRepo struct {
	byID  map[string]*domain.Message
	order []string // creation order, used for sorting
	seq   int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{byID: make(map[string]*domain.Message)}
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	r.seq++
	clone := *m
	clone.ID = fmt.Sprintf("msg_%d", r.seq)
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.Message, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMessageRepo) FindByProject(_ context.Context, projectID string) ([]*domain.Message, error) {
	return r.inOrder(false, func(m *domain.Message) bool { return m.ProjectID == projectID }), nil
}

func (r *stubMessageRepo) FindByParticipant(_ context.Context, userID string) ([]*domain.Message, error) {
	return r.inOrder(true, func(m *domain.Message) bool {
		return m.SenderID == userID || m.ReceiverID == userID
	}), nil
}

func (r *stubMessageRepo) FindThread(_ context.Context, userID, otherID string) ([]*domain.Message, error) {
	return r.inOrder(false, func(m *domain.Message) bool {
		return (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID)
	}), nil
}

func (r *stubMessageRepo) MarkRead(_ context.Context, id string) error {
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrMessageNotFound
	}
	m.Read = true
	return nil
}

func (r *stubMessageRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrMessageNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubMessageRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, m := range r.byID {
		if m.ReceiverID == userID && !m.Read {
			n++
		}
	}
	return n, nil
}

func (r *stubMessageRepo) inOrder(newestFirst bool, keep func(*domain.Message) bool) []*domain.Message {
	var out []*domain.Message
	for _, id := range r.order {
		m, ok := r.byID[id]
		if !ok || !keep(m) {
			continue
		}
		clone := *m
		out = append(out, &clone)
	}
	if newestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Unread counter
// ---------------------------------------------------------------------------

type stubUnreadCounter struct {
	counts map[string]int64
	incrs  int
	resets int
	getErr error
}

func newStubUnreadCounter() *stubUnreadCounter {
	return &stubUnreadCounter{counts: make(map[string]int64)}
}

func (c *stubUnreadCounter) Incr(_ context.Context, userID string) error {
	c.incrs++
	c.counts[userID]++
	return nil
}

func (c *stubUnreadCounter) Reset(_ context.Context, userID string) error {
	c.resets++
	delete(c.counts, userID)
	return nil
}

func (c *stubUnreadCounter) Get(_ context.Context, userID string) (int64, bool, error) {
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	n, ok := c.counts[userID]
	return n, ok, nil
}

func (c *stubUnreadCounter) Set(_ context.Context, userID string, count int64) error {
	c.counts[userID] = count
	return nil
}

// newMessageService wires a MessageService over fresh stubs, returning the
// pieces tests poke at.
func newMessageService(users *stubUserRepo, projects *stubProjectRepo) (*MessageService, *stubMessageRepo, *stubUnreadCounter) {
	messages := newStubMessageRepo()
	unread := newStubUnreadCounter()
	svc := NewMessageService(messages, projects, users, unread, discardLogger)
	return svc, messages, unread
}

var _ ports.MessageService = (*MessageService)(nil)
var _ ports.RequestService = (*RequestService)(nil)
var _ ports.ProjectService = (*ProjectService)(nil)
var _ ports.UserService = (*UserService)(nil)
var _ ports.CatalogService = (*CatalogService)(nil)
var _ ports.AuthService = (*AuthService)(nil)
