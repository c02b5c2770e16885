// Package apitest provides an in-process fake of the remote coordination API
// for adapter and workflow tests. It keeps its state in memory behind a
// mutex and arbitrates the claim race the way the real server does: the
// first conditional assignment wins, every later one gets a 409.
package apitest

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// User seeds an account on the fake server.
type User struct {
	ID       string
	Email    string
	Password string
	Role     string
	Name     string
	Phone    string
	Address  string

	Latitude  *float64
	Longitude *float64

	NotificationToken string
}

// OrderRecord is the fake server's stored order row.
type OrderRecord struct {
	ID              string    `json:"id"`
	StoreID         string    `json:"storeId"`
	CourierID       *string   `json:"courierId,omitempty"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone,omitempty"`
	CustomerAddress string    `json:"customerAddress,omitempty"`
	Amount          float64   `json:"amount"`
	DeliveryFee     float64   `json:"deliveryFee"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Server is the fake API. It implements http.Handler, so tests wrap it in an
// httptest.Server and point the client at its URL.
type Server struct {
	mu     sync.Mutex
	users  map[string]*User  // by id
	tokens map[string]string // bearer token -> user id
	orders map[string]*OrderRecord

	// RequestCount counts authenticated API hits; poller tests use it to
	// prove that cancellation stops all traffic.
	RequestCount int

	echo *echo.Echo
}

// NewServer creates an empty fake with all routes registered.
func NewServer() *Server {
	s := &Server{
		users:  make(map[string]*User),
		tokens: make(map[string]string),
		orders: make(map[string]*OrderRecord),
		echo:   echo.New(),
	}
	s.echo.HideBanner = true
	s.routes()
	return s
}

// ServeHTTP dispatches to the underlying echo instance.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// AddUser seeds an account and returns the bearer token that authenticates it.
func (s *Server) AddUser(u User) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users[u.ID] = &u
	token := "token-" + u.ID
	s.tokens[token] = u.ID
	return token
}

// SeedOrder inserts an order row directly, bypassing the HTTP surface.
func (s *Server) SeedOrder(rec OrderRecord) OrderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	s.orders[rec.ID] = &rec
	return rec
}

// Order returns a copy of the stored order row.
func (s *Server) Order(id string) (OrderRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.orders[id]
	if !ok {
		return OrderRecord{}, false
	}
	return *rec, true
}

// Requests returns how many authenticated calls the server has seen.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.RequestCount
}

func (s *Server) routes() {
	s.echo.POST("/auth/login", s.login)

	authed := s.echo.Group("", s.authenticate)
	authed.GET("/auth/me", s.me)
	authed.PATCH("/auth/users/:id/notification-token", s.notificationToken)

	authed.GET("/api/orders/store/:id", s.ordersForStore)
	authed.GET("/api/orders/status/:status", s.ordersByStatus)
	authed.GET("/api/orders/courier/:id", s.ordersForCourier)
	authed.POST("/api/orders", s.createOrder)
	authed.PUT("/api/orders/:id", s.updateOrder)
	authed.PATCH("/api/orders/:id/assign", s.assignOrder)
	authed.PATCH("/api/orders/:id/status", s.setOrderStatus)
	authed.DELETE("/api/orders/:id", s.deleteOrder)

	authed.GET("/api/users/:id", s.getUser)
	authed.PATCH("/api/users/:id", s.patchUser)
	authed.PATCH("/api/users/:id/password", s.changePassword)
	authed.PATCH("/api/users/:id/location", s.updateLocation)
}

func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		const prefix = "Bearer "
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			return c.JSON(http.StatusUnauthorized, errorBody("missing token"))
		}

		s.mu.Lock()
		userID, ok := s.tokens[header[len(prefix):]]
		if ok {
			s.RequestCount++
		}
		s.mu.Unlock()

		if !ok {
			return c.JSON(http.StatusUnauthorized, errorBody("invalid token"))
		}
		c.Set("userID", userID)
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if u.Email == req.Email && u.Password == req.Password {
			return c.JSON(http.StatusOK, map[string]string{"token": "token-" + id})
		}
	}
	return c.JSON(http.StatusUnauthorized, errorBody("invalid credentials"))
}

func (s *Server) me(c echo.Context) error {
	s.mu.Lock()
	u := s.users[c.Get("userID").(string)]
	s.mu.Unlock()
	return c.JSON(http.StatusOK, userBody(u))
}

func (s *Server) notificationToken(c echo.Context) error {
	var req struct {
		NotificationToken string `json:"notificationToken"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("user not found"))
	}
	u.NotificationToken = req.NotificationToken
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ordersForStore(c echo.Context) error {
	storeID := c.Param("id")
	window, hasWindow := hoursWindow(c.QueryParam("hours"))

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]OrderRecord, 0)
	for _, rec := range s.orders {
		if rec.StoreID != storeID {
			continue
		}
		if hasWindow && rec.CreatedAt.Before(window) {
			continue
		}
		out = append(out, *rec)
	}
	return c.JSON(http.StatusOK, out)
}

// ordersByStatus backs the available-orders query. The distance parameter is
// accepted but not evaluated; proximity filtering belongs to the real server
// and the fake keeps every match visible to the tests.
func (s *Server) ordersByStatus(c echo.Context) error {
	status := c.Param("status")
	window, hasWindow := hoursWindow(c.QueryParam("hours"))

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]OrderRecord, 0)
	for _, rec := range s.orders {
		if rec.Status != status {
			continue
		}
		if hasWindow && rec.CreatedAt.Before(window) {
			continue
		}
		out = append(out, *rec)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) ordersForCourier(c echo.Context) error {
	courierID := c.Param("id")
	wantStatus := c.QueryParam("status")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]OrderRecord, 0)
	for _, rec := range s.orders {
		if rec.CourierID == nil || *rec.CourierID != courierID {
			continue
		}
		if wantStatus != "" && rec.Status != wantStatus {
			continue
		}
		out = append(out, *rec)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) createOrder(c echo.Context) error {
	var rec OrderRecord
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}
	if rec.CustomerName == "" {
		return c.JSON(http.StatusBadRequest, errorBody("customerName is required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	rec.ID = uuid.NewString()
	rec.Status = "CREATED"
	rec.CourierID = nil
	rec.CreatedAt = now
	rec.UpdatedAt = now
	s.orders[rec.ID] = &rec
	return c.JSON(http.StatusCreated, rec)
}

func (s *Server) updateOrder(c echo.Context) error {
	var req OrderRecord
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.orders[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("order not found"))
	}
	rec.CustomerName = req.CustomerName
	rec.CustomerPhone = req.CustomerPhone
	rec.CustomerAddress = req.CustomerAddress
	rec.Amount = req.Amount
	rec.DeliveryFee = req.DeliveryFee
	rec.UpdatedAt = time.Now().UTC()
	return c.JSON(http.StatusOK, *rec)
}

// assignOrder is the race arbiter: the check and the write happen under one
// lock, so exactly one claimant observes CREATED.
func (s *Server) assignOrder(c echo.Context) error {
	var req struct {
		CourierID string `json:"courierId"`
		Status    string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.orders[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("order not found"))
	}
	if rec.Status != "CREATED" || rec.CourierID != nil {
		return c.JSON(http.StatusConflict, errorBody("order already assigned"))
	}

	rec.CourierID = &req.CourierID
	rec.Status = req.Status
	rec.UpdatedAt = time.Now().UTC()
	return c.JSON(http.StatusOK, *rec)
}

func (s *Server) setOrderStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.orders[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("order not found"))
	}
	rec.Status = req.Status
	rec.UpdatedAt = time.Now().UTC()
	return c.JSON(http.StatusOK, *rec)
}

func (s *Server) deleteOrder(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("user not found"))
	}
	return c.JSON(http.StatusOK, userBody(u))
}

func (s *Server) patchUser(c echo.Context) error {
	var req struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("user not found"))
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.Address != "" {
		u.Address = req.Address
	}
	return c.JSON(http.StatusOK, userBody(u))
}

func (s *Server) changePassword(c echo.Context) error {
	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("user not found"))
	}
	if u.Password != req.OldPassword {
		return c.JSON(http.StatusBadRequest, errorBody("old password does not match"))
	}
	u.Password = req.NewPassword
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) updateLocation(c echo.Context) error {
	var req struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("user not found"))
	}
	u.Latitude = &req.Latitude
	u.Longitude = &req.Longitude
	return c.NoContent(http.StatusNoContent)
}

func errorBody(message string) map[string]string {
	return map[string]string{"message": message}
}

func userBody(u *User) map[string]any {
	body := map[string]any{
		"id":    u.ID,
		"role":  u.Role,
		"name":  u.Name,
		"phone": u.Phone,
	}
	if u.Address != "" {
		body["address"] = u.Address
	}
	if u.Latitude != nil && u.Longitude != nil {
		body["latitude"] = *u.Latitude
		body["longitude"] = *u.Longitude
	}
	return body
}

func hoursWindow(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	hours, err := strconv.Atoi(raw)
	if err != nil {
		return time.Time{}, false
	}
	return time.Now().UTC().Add(-time.Duration(hours) * time.Hour), true
}
