package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
)

// fakeOrderRepo is an in-memory OrderRepo with the same unique-code
// behavior as the real table.
type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*domain.Order
	items  map[int64][]domain.OrderItem
	byCode map[string]int64

	createCalls int
	failCreates int // first N creates fail with ErrDuplicateCode
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: map[int64]*domain.Order{},
		items:  map[int64][]domain.OrderItem{},
		byCode: map[string]int64{},
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *domain.Order, items []domain.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.failCreates > 0 {
		r.failCreates--
		return ErrDuplicateCode
	}
	if _, exists := r.byCode[o.Code]; exists {
		return ErrDuplicateCode
	}
	r.nextID++
	o.ID = r.nextID
	cp := *o
	r.orders[o.ID] = &cp
	r.byCode[o.Code] = o.ID
	for i := range items {
		items[i].OrderID = o.ID
	}
	r.items[o.ID] = append([]domain.OrderItem(nil), items...)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetByCode(_ context.Context, code string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ItemsByOrderID(_ context.Context, orderID int64) ([]domain.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.OrderItem(nil), r.items[orderID]...), nil
}

func (r *fakeOrderRepo) ListByBuyer(_ context.Context, buyerID int64, sort OrderSort, limit, offset int) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for id := int64(1); id <= r.nextID; id++ {
		if o, ok := r.orders[id]; ok && o.BuyerID == buyerID {
			out = append(out, *o)
		}
	}
	if sort == OrderSortDateDesc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
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

func (r *fakeOrderRepo) CountByBuyer(_ context.Context, buyerID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeOrderRepo) CountByCodePrefix(_ context.Context, prefix string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for code := range r.byCode {
		if strings.HasPrefix(code, prefix) {
			n++
		}
	}
	return n, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return ErrNotFound
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) UpdateStatusIf(_ context.Context, id int64, from, to domain.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

func (r *fakeOrderRepo) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// soft delete: row keeps its code reservation
	delete(r.orders, id)
	return nil
}

type fakeCartRepo struct {
	lines   map[int64]domain.CartItem // id -> line
	deleted []int64
}

func newFakeCartRepo(lines ...domain.CartItem) *fakeCartRepo {
	m := map[int64]domain.CartItem{}
	for _, l := range lines {
		m[l.ID] = l
	}
	return &fakeCartRepo{lines: m}
}

func (r *fakeCartRepo) GetByIDs(_ context.Context, buyerID int64, ids []int64) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, id := range ids {
		if l, ok := r.lines[id]; ok && l.BuyerID == buyerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) DeleteByIDs(_ context.Context, buyerID int64, ids []int64) error {
	for _, id := range ids {
		if l, ok := r.lines[id]; ok && l.BuyerID == buyerID {
			delete(r.lines, id)
			r.deleted = append(r.deleted, id)
		}
	}
	return nil
}

type fakeIdemStore struct {
	mu     sync.Mutex
	locks  map[string]bool
	values map[string]string
}

func newFakeIdemStore() *fakeIdemStore {
	return &fakeIdemStore{locks: map[string]bool{}, values: map[string]string{}}
}

func (s *fakeIdemStore) TryLock(_ context.Context, scope, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := scope + ":" + key
	if s.locks[k] {
		return false, nil
	}
	s.locks[k] = true
	return true, nil
}

func (s *fakeIdemStore) Remember(_ context.Context, scope, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[scope+":"+key] = value
	return nil
}

func (s *fakeIdemStore) Recall(_ context.Context, scope, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[scope+":"+key]
	return v, ok, nil
}

type fakeCache struct {
	mu     sync.Mutex
	status map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{status: map[string]string{}} }

func (c *fakeCache) SetStatus(_ context.Context, code, status string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status[code] = status
	return nil
}

func (c *fakeCache) GetStatus(_ context.Context, code string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.status[code]
	return s, ok, nil
}

type fakeQueue struct {
	mu        sync.Mutex
	published []PlacedMsg
}

func (q *fakeQueue) PublishPlaced(_ context.Context, msg PlacedMsg) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.published = append(q.published, msg)
	return nil
}

type fakeMemberRepo struct {
	byID map[int64]*domain.Member
}

func newFakeMemberRepo(members ...*domain.Member) *fakeMemberRepo {
	m := map[int64]*domain.Member{}
	for _, mem := range members {
		m[mem.ID] = mem
	}
	return &fakeMemberRepo{byID: m}
}

func (r *fakeMemberRepo) GetByID(_ context.Context, id int64) (*domain.Member, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

func (r *fakeMemberRepo) GetByEmail(_ context.Context, email string) (*domain.Member, error) {
	for _, m := range r.byID {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

type itemParties struct {
	buyer, seller int64
}

type fakeReviewRepo struct {
	nextID  int64
	reviews map[int64]*domain.Review
	parties map[int64]itemParties // orderItemID -> buyer/seller
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[int64]*domain.Review{}, parties: map[int64]itemParties{}}
}

func (r *fakeReviewRepo) Create(_ context.Context, rv *domain.Review) error {
	r.nextID++
	rv.ID = r.nextID
	cp := *rv
	r.reviews[rv.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) Update(_ context.Context, rv *domain.Review) error {
	if _, ok := r.reviews[rv.ID]; !ok {
		return ErrNotFound
	}
	cp := *rv
	r.reviews[rv.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id int64) (*domain.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rv
	return &cp, nil
}

func (r *fakeReviewRepo) ListByBuyer(_ context.Context, buyerID int64) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range r.reviews {
		if rv.BuyerID == buyerID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ListBySeller(_ context.Context, sellerID int64) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range r.reviews {
		if rv.SellerID == sellerID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) OrderItemParties(_ context.Context, orderItemID int64) (int64, int64, error) {
	p, ok := r.parties[orderItemID]
	if !ok {
		return 0, 0, ErrNotFound
	}
	return p.buyer, p.seller, nil
}

type fakeBoardRepo struct {
	posts   map[int64]*domain.Post
	likes   map[string]bool // "post:member"
	reports map[string]bool
}

func newFakeBoardRepo(posts ...*domain.Post) *fakeBoardRepo {
	m := map[int64]*domain.Post{}
	for _, p := range posts {
		m[p.ID] = p
	}
	return &fakeBoardRepo{posts: m, likes: map[string]bool{}, reports: map[string]bool{}}
}

func (r *fakeBoardRepo) GetPost(_ context.Context, id int64) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func boardKey(postID, memberID int64) string {
	return fmt.Sprintf("%d:%d", postID, memberID)
}

func (r *fakeBoardRepo) ToggleLike(_ context.Context, postID, memberID int64) (bool, int64, error) {
	p, ok := r.posts[postID]
	if !ok {
		return false, 0, ErrNotFound
	}
	k := boardKey(postID, memberID)
	if r.likes[k] {
		delete(r.likes, k)
		p.LikeCount--
		return false, p.LikeCount, nil
	}
	r.likes[k] = true
	p.LikeCount++
	return true, p.LikeCount, nil
}

func (r *fakeBoardRepo) ToggleReport(_ context.Context, postID, memberID int64) (bool, int64, error) {
	p, ok := r.posts[postID]
	if !ok {
		return false, 0, ErrNotFound
	}
	k := boardKey(postID, memberID)
	if r.reports[k] {
		delete(r.reports, k)
		p.ReportCount--
		return false, p.ReportCount, nil
	}
	r.reports[k] = true
	p.ReportCount++
	return true, p.ReportCount, nil
}
