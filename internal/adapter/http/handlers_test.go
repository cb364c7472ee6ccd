package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ji-nious/mosi-project-sub001/internal/adapter/http/middleware"
	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
	"github.com/ji-nious/mosi-project-sub001/internal/security"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

// ---- in-memory ports ----

type memOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*domain.Order
	items  map[int64][]domain.OrderItem
	byCode map[string]int64
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{
		orders: map[int64]*domain.Order{},
		items:  map[int64][]domain.OrderItem{},
		byCode: map[string]int64{},
	}
}

func (r *memOrderRepo) Create(_ context.Context, o *domain.Order, items []domain.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byCode[o.Code]; dup {
		return usecase.ErrDuplicateCode
	}
	r.nextID++
	o.ID = r.nextID
	cp := *o
	r.orders[o.ID] = &cp
	r.byCode[o.Code] = o.ID
	r.items[o.ID] = append([]domain.OrderItem(nil), items...)
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, usecase.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) GetByCode(_ context.Context, code string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byCode[code]
	if !ok {
		return nil, usecase.ErrNotFound
	}
	cp := *r.orders[id]
	return &cp, nil
}

func (r *memOrderRepo) ItemsByOrderID(_ context.Context, orderID int64) ([]domain.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.OrderItem(nil), r.items[orderID]...), nil
}

func (r *memOrderRepo) ListByBuyer(_ context.Context, buyerID int64, _ usecase.OrderSort, limit, offset int) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for id := int64(1); id <= r.nextID; id++ {
		if o, ok := r.orders[id]; ok && o.BuyerID == buyerID {
			out = append(out, *o)
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

func (r *memOrderRepo) CountByBuyer(_ context.Context, buyerID int64) (int64, error) {
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

func (r *memOrderRepo) CountByCodePrefix(_ context.Context, prefix string) (int64, error) {
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

func (r *memOrderRepo) Update(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return usecase.ErrNotFound
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) UpdateStatusIf(_ context.Context, id int64, from, to domain.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

func (r *memOrderRepo) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

type memCartRepo struct{ lines map[int64]domain.CartItem }

func (r *memCartRepo) GetByIDs(_ context.Context, buyerID int64, ids []int64) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, id := range ids {
		if l, ok := r.lines[id]; ok && l.BuyerID == buyerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memCartRepo) DeleteByIDs(_ context.Context, buyerID int64, ids []int64) error {
	for _, id := range ids {
		if l, ok := r.lines[id]; ok && l.BuyerID == buyerID {
			delete(r.lines, id)
		}
	}
	return nil
}

type memMemberRepo struct{ members map[int64]*domain.Member }

func (r *memMemberRepo) GetByID(_ context.Context, id int64) (*domain.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, usecase.ErrNotFound
	}
	return m, nil
}

func (r *memMemberRepo) GetByEmail(_ context.Context, email string) (*domain.Member, error) {
	for _, m := range r.members {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, usecase.ErrNotFound
}

type memIdem struct {
	mu sync.Mutex
	m  map[string]string
}

func (s *memIdem) TryLock(_ context.Context, scope, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m["l:"+scope+":"+key]; ok {
		return false, nil
	}
	s.m["l:"+scope+":"+key] = "1"
	return true, nil
}

func (s *memIdem) Remember(_ context.Context, scope, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m["v:"+scope+":"+key] = value
	return nil
}

func (s *memIdem) Recall(_ context.Context, scope, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m["v:"+scope+":"+key]
	return v, ok, nil
}

type memCache struct {
	mu sync.Mutex
	m  map[string]string
}

func (c *memCache) SetStatus(_ context.Context, code, status string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[code] = status
	return nil
}

func (c *memCache) GetStatus(_ context.Context, code string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.m[code]
	return s, ok, nil
}

type memQueue struct {
	mu        sync.Mutex
	published []usecase.PlacedMsg
}

func (q *memQueue) PublishPlaced(_ context.Context, msg usecase.PlacedMsg) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.published = append(q.published, msg)
	return nil
}

type memReviewRepo struct {
	nextID  int64
	reviews map[int64]*domain.Review
	parties map[int64][2]int64 // orderItemID -> {buyer, seller}
}

func (r *memReviewRepo) Create(_ context.Context, rv *domain.Review) error {
	r.nextID++
	rv.ID = r.nextID
	cp := *rv
	r.reviews[rv.ID] = &cp
	return nil
}

func (r *memReviewRepo) Update(_ context.Context, rv *domain.Review) error {
	if _, ok := r.reviews[rv.ID]; !ok {
		return usecase.ErrNotFound
	}
	cp := *rv
	r.reviews[rv.ID] = &cp
	return nil
}

func (r *memReviewRepo) GetByID(_ context.Context, id int64) (*domain.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, usecase.ErrNotFound
	}
	cp := *rv
	return &cp, nil
}

func (r *memReviewRepo) ListByBuyer(_ context.Context, buyerID int64) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range r.reviews {
		if rv.BuyerID == buyerID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *memReviewRepo) ListBySeller(_ context.Context, sellerID int64) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range r.reviews {
		if rv.SellerID == sellerID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *memReviewRepo) OrderItemParties(_ context.Context, orderItemID int64) (int64, int64, error) {
	p, ok := r.parties[orderItemID]
	if !ok {
		return 0, 0, usecase.ErrNotFound
	}
	return p[0], p[1], nil
}

type memBoardRepo struct {
	posts map[int64]*domain.Post
	likes map[string]bool
}

func (r *memBoardRepo) GetPost(_ context.Context, id int64) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, usecase.ErrNotFound
	}
	return p, nil
}

func (r *memBoardRepo) ToggleLike(_ context.Context, postID, memberID int64) (bool, int64, error) {
	p, ok := r.posts[postID]
	if !ok {
		return false, 0, usecase.ErrNotFound
	}
	k := "l"
	if r.likes[k] {
		delete(r.likes, k)
		p.LikeCount--
		return false, p.LikeCount, nil
	}
	r.likes[k] = true
	p.LikeCount++
	return true, p.LikeCount, nil
}

func (r *memBoardRepo) ToggleReport(_ context.Context, postID, memberID int64) (bool, int64, error) {
	p, ok := r.posts[postID]
	if !ok {
		return false, 0, usecase.ErrNotFound
	}
	p.ReportCount++
	return true, p.ReportCount, nil
}

// ---- fixture ----

type fixture struct {
	router *gin.Engine
	tokens *security.TokenIssuer
	orders *memOrderRepo
	queue  *memQueue
}

type stubHasher struct{}

func (stubHasher) Verify(hash, password string) bool { return hash == "h:"+password }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orders := newMemOrderRepo()
	carts := &memCartRepo{lines: map[int64]domain.CartItem{
		1: {ID: 1, BuyerID: 7, ProductID: 100, ProductName: "유자차 선물세트", UnitPrice: 15000, Quantity: 1},
		2: {ID: 2, BuyerID: 7, ProductID: 101, ProductName: "수제 쿠키", UnitPrice: 5000, Quantity: 2},
	}}
	members := &memMemberRepo{members: map[int64]*domain.Member{
		7: {ID: 7, Email: "jisoo@example.com", PasswordHash: "h:pw1234", Name: "김지수", Tel: "010-1234-5678", Role: domain.RoleBuyer},
	}}
	reviews := &memReviewRepo{reviews: map[int64]*domain.Review{}, parties: map[int64][2]int64{10: {7, 20}}}
	board := &memBoardRepo{posts: map[int64]*domain.Post{1: {ID: 1, AuthorID: 2, Title: "공지"}}, likes: map[string]bool{}}
	idem := &memIdem{m: map[string]string{}}
	cache := &memCache{m: map[string]string{}}
	queue := &memQueue{}

	tokens := security.NewTokenIssuer("test-secret", "market-api", "market-web", 30*time.Minute)
	authz := middleware.NewAuthz(tokens)

	placeUC := usecase.NewPlaceOrder(orders, carts, idem, cache, queue)
	cancelUC := usecase.NewCancelOrder(orders, cache)
	queryUC := usecase.NewOrderQuery(orders, carts, members, cache)
	memberUC := usecase.NewMemberService(members, stubHasher{})
	reviewUC := usecase.NewReviewService(reviews, members)
	boardUC := usecase.NewBoardService(board)

	router := NewRouter(Handlers{
		Member: NewMemberHandler(memberUC, tokens),
		Order:  NewOrderHandler(placeUC, cancelUC, queryUC),
		Review: NewReviewHandler(reviewUC),
		Board:  NewBoardHandler(boardUC),
	}, authz, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &fixture{router: router, tokens: tokens, orders: orders, queue: queue}
}

func (f *fixture) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) buyerToken(t *testing.T) string {
	t.Helper()
	raw, err := f.tokens.Issue(7, "BUYER", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

// ---- tests ----

func TestMemberInfoRequiresLogin(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodGet, "/api/order/member-info", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
	if w.Header().Get("WWW-Authenticate") == "" {
		t.Error("missing WWW-Authenticate header")
	}

	w = f.request(t, http.MethodGet, "/api/order/member-info", f.buyerToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body)
	}
	var info struct {
		MemberID int64  `json:"memberId"`
		Email    string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info.MemberID != 7 || info.Email != "jisoo@example.com" {
		t.Errorf("info = %+v", info)
	}
}

func TestLogin(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodPost, "/v1/login", "", map[string]string{
		"email": "jisoo@example.com", "password": "pw1234",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TokenType != "Bearer" || resp.AccessToken == "" {
		t.Errorf("resp = %+v", resp)
	}

	// the issued token works against a protected route
	w = f.request(t, http.MethodGet, "/api/order/member-info", resp.AccessToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("token rejected: %d", w.Code)
	}

	w = f.request(t, http.MethodPost, "/v1/login", "", map[string]string{
		"email": "jisoo@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status = %d, want 401", w.Code)
	}
}

func TestPlaceOrderEndpoint(t *testing.T) {
	f := newFixture(t)
	token := f.buyerToken(t)

	w := f.request(t, http.MethodPost, "/v1/orders", token, map[string]any{
		"cartItemIds":   []int64{1, 2},
		"amount":        25000,
		"paymentMethod": "CARD",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		OrderID   int64  `json:"orderId"`
		OrderCode string `json:"orderCode"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.OrderCode, "ORD-") || resp.Status != "PENDING" {
		t.Errorf("resp = %+v", resp)
	}
	if len(f.queue.published) != 1 {
		t.Errorf("published = %d, want 1", len(f.queue.published))
	}
}

func TestPlaceOrderValidationEndpoint(t *testing.T) {
	f := newFixture(t)
	token := f.buyerToken(t)

	// amount that disagrees with the cart total
	w := f.request(t, http.MethodPost, "/v1/orders", token, map[string]any{
		"cartItemIds":   []int64{1, 2},
		"amount":        99999,
		"paymentMethod": "CARD",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("mismatch: status = %d, want 400", w.Code)
	}

	// special request over the limit reports the field
	w = f.request(t, http.MethodPost, "/v1/orders", token, map[string]any{
		"cartItemIds":    []int64{1, 2},
		"amount":         25000,
		"paymentMethod":  "CARD",
		"specialRequest": strings.Repeat("요", 51),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("long request: status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "specialRequest") {
		t.Errorf("body = %s, want field detail", w.Body)
	}
}

func TestOrderDetailEndpoint(t *testing.T) {
	f := newFixture(t)
	token := f.buyerToken(t)

	w := f.request(t, http.MethodPost, "/v1/orders", token, map[string]any{
		"cartItemIds": []int64{1, 2}, "amount": 25000, "paymentMethod": "CARD",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("seed: %d", w.Code)
	}

	w = f.request(t, http.MethodGet, "/v1/orders/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("detail: %d: %s", w.Code, w.Body)
	}
	var view struct {
		OrderCode   string `json:"orderCode"`
		StatusLabel string `json:"statusLabel"`
		Items       []any  `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if len(view.Items) != 2 || view.StatusLabel == "" {
		t.Errorf("view = %+v", view)
	}

	w = f.request(t, http.MethodGet, "/v1/orders/42", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing order: status = %d, want 404", w.Code)
	}

	// another member's token cannot read it
	other, _ := f.tokens.Issue(8, "BUYER", time.Now())
	w = f.request(t, http.MethodGet, "/v1/orders/1", other, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign order: status = %d, want 403", w.Code)
	}
}

func TestOrderFormEndpoint(t *testing.T) {
	f := newFixture(t)
	token := f.buyerToken(t)

	w := f.request(t, http.MethodGet, "/v1/orders/form?cartItemIds=1,2", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("form: %d: %s", w.Code, w.Body)
	}
	var view struct {
		BuyerName  string `json:"buyerName"`
		TotalPrice int64  `json:"totalPrice"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.BuyerName != "김지수" || view.TotalPrice != 25000 {
		t.Errorf("view = %+v", view)
	}
}

func TestOrderStatusEndpoint(t *testing.T) {
	f := newFixture(t)
	token := f.buyerToken(t)

	w := f.request(t, http.MethodPost, "/v1/orders", token, map[string]any{
		"cartItemIds": []int64{1, 2}, "amount": 25000, "paymentMethod": "CARD",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("seed: %d", w.Code)
	}
	var placed struct {
		OrderCode string `json:"orderCode"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &placed); err != nil {
		t.Fatal(err)
	}

	w = f.request(t, http.MethodGet, "/v1/orders/status/"+placed.OrderCode, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d: %s", w.Code, w.Body)
	}
	if !strings.Contains(w.Body.String(), "PENDING") {
		t.Errorf("body = %s", w.Body)
	}

	w = f.request(t, http.MethodGet, "/v1/orders/status/ORD-20990101-0001", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing code: status = %d, want 404", w.Code)
	}
}

func TestCancelAndDeleteEndpoints(t *testing.T) {
	f := newFixture(t)
	token := f.buyerToken(t)

	w := f.request(t, http.MethodPost, "/v1/orders", token, map[string]any{
		"cartItemIds": []int64{1, 2}, "amount": 25000, "paymentMethod": "CARD",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("seed: %d", w.Code)
	}

	w = f.request(t, http.MethodPost, "/v1/orders/1/cancel", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: %d: %s", w.Code, w.Body)
	}

	// cancelled orders cannot cancel again
	w = f.request(t, http.MethodPost, "/v1/orders/1/cancel", token, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("re-cancel: status = %d, want 409", w.Code)
	}

	w = f.request(t, http.MethodDelete, "/v1/orders/1", token, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete: status = %d, want 204", w.Code)
	}
}

func TestReviewEndpoints(t *testing.T) {
	f := newFixture(t)
	token := f.buyerToken(t)

	w := f.request(t, http.MethodGet, "/review/add/10", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("add form: %d: %s", w.Code, w.Body)
	}

	// not the purchaser
	other, _ := f.tokens.Issue(8, "BUYER", time.Now())
	w = f.request(t, http.MethodGet, "/review/add/10", other, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign add form: status = %d, want 403", w.Code)
	}

	w = f.request(t, http.MethodPost, "/review/add/10", token, map[string]any{
		"rating": 5, "content": "향이 좋아요",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: %d: %s", w.Code, w.Body)
	}
	var created struct {
		SellerID int64
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.SellerID != 20 {
		t.Errorf("seller = %d, want 20 (resolved from the order item)", created.SellerID)
	}

	w = f.request(t, http.MethodGet, "/review/buyer/list", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("buyer list: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "향이 좋아요") {
		t.Errorf("list body = %s", w.Body)
	}

	// buyers are refused the seller view
	w = f.request(t, http.MethodGet, "/review/seller/list", token, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("seller list as buyer: status = %d, want 403", w.Code)
	}
}

func TestBoardEndpoints(t *testing.T) {
	f := newFixture(t)
	token := f.buyerToken(t)

	w := f.request(t, http.MethodGet, "/v1/board/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get post: %d: %s", w.Code, w.Body)
	}
	if !strings.Contains(w.Body.String(), "공지") {
		t.Errorf("post body = %s", w.Body)
	}

	w = f.request(t, http.MethodPost, "/v1/board/1/like", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("like: %d: %s", w.Code, w.Body)
	}
	var res struct {
		Active bool  `json:"active"`
		Count  int64 `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !res.Active || res.Count != 1 {
		t.Errorf("toggle = %+v", res)
	}

	w = f.request(t, http.MethodPost, "/v1/board/99/report", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing post: status = %d, want 404", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	w := f.request(t, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("healthz = %d", w.Code)
	}
}
