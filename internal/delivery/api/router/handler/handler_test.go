package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"padelpoint/config"
	"padelpoint/internal/delivery/api/cookie"
	apimiddleware "padelpoint/internal/delivery/api/middleware"
	"padelpoint/internal/delivery/api/validator"
	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	mockUsecase "padelpoint/internal/mocks/usecase"
	"padelpoint/internal/usecase"
)

type envelope struct {
	Status   bool            `json:"status"`
	Message  string          `json:"message"`
	Code     string          `json:"code"`
	Recourse json.RawMessage `json:"recourse"`
	Details  json.RawMessage `json:"details"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

// asCaller stands in for the auth guard.
func asCaller(payload *entity.TokenPayload) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetAuth(c, &deliverycontext.AuthContext{Payload: payload})

			return next(c)
		}
	}
}

func testConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{
		AccessTTL:        time.Hour,
		RefreshTTL:       2 * time.Hour,
		PasswordResetTTL: 5 * time.Minute,
		CookieSecure:     true,
	}}
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}

	return nil
}

func TestOrderHandler_Create(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	e := newTestEcho()
	e.POST("/order", h.Create)

	addressID := int64(3)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	orderUC.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(in usecase.CreateOrderInput) bool {
			return in.UserID == 7 && in.PaymentID == 777 && *in.AddressID == 3 && len(in.Products) == 1 && in.IVA == nil
		})).
		Return(&entity.Order{
			ID:            11,
			PaymentID:     777,
			PaymentMethod: "MP_TRANSFER",
			UserID:        7,
			User:          &entity.User{ID: 7, Username: "ana", Method: entity.LoginMethodLocal},
			AddressID:     &addressID,
			Address:       &entity.Address{ID: 3, Street: "Calle 7"},
			Lines: []entity.OrderLine{
				{ID: 1, OrderID: 11, ProductID: 5, Quantity: 2, Product: &entity.Product{ID: 5, Name: "Bullpadel Vertex", Price: 100}},
			},
			NetPrice:  200,
			IVA:       0.21,
			Total:     242,
			Profit:    80,
			CreatedAt: created,
		}, nil).
		Once()

	rec, env := doJSON(t, e, http.MethodPost, "/order",
		`{"userId":7,"addressId":3,"paymentId":777,"products":[{"productId":5,"quantity":2}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Status)
	assert.Equal(t, "The order was created succesfully", env.Message)

	var order map[string]any
	require.NoError(t, json.Unmarshal(env.Recourse, &order))
	assert.EqualValues(t, 11, order["id"])
	assert.EqualValues(t, 777, order["paymentId"])
	assert.EqualValues(t, 0.21, order["IVA"])
	assert.EqualValues(t, 242, order["total"])
	assert.Equal(t, "Calle 7", order["destination"].(map[string]any)["street"])
	items := order["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.EqualValues(t, 11, item["orderId"])
	assert.Equal(t, "Bullpadel Vertex", item["product"].(map[string]any)["name"])
}

func TestOrderHandler_CreateRejectsInvalidBody(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	e := newTestEcho()
	e.POST("/order", h.Create)

	tests := []struct {
		name string
		body string
	}{
		{name: "no products", body: `{"userId":7,"paymentId":1,"products":[]}`},
		{name: "zero quantity", body: `{"userId":7,"paymentId":1,"products":[{"productId":5,"quantity":0}]}`},
		{name: "IVA above one", body: `{"userId":7,"paymentId":1,"IVA":1.5,"products":[{"productId":5,"quantity":1}]}`},
		{name: "IVA zero", body: `{"userId":7,"paymentId":1,"IVA":0,"products":[{"productId":5,"quantity":1}]}`},
		{name: "malformed json", body: `{"userId":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, e, http.MethodPost, "/order", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Status)
		})
	}
}

func TestOrderHandler_FindByUserPassesCaller(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	caller := &entity.TokenPayload{ID: 7, Roles: []entity.RoleClaim{{ID: 2, Name: entity.RoleNameUser}}}
	e := newTestEcho()
	e.GET("/order/user/:id", h.FindByUser, asCaller(caller))

	orderUC.EXPECT().FindByUser(mock.Anything, caller, int64(9)).Return(nil, domainerrors.TokenIDMismatch(9)).Once()

	rec, env := doJSON(t, e, http.MethodGet, "/order/user/9", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User ID '9' does not match the token ID", env.Message)
}

func TestOrderHandler_FindOnePassesCaller(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	caller := &entity.TokenPayload{ID: 7, Roles: []entity.RoleClaim{{ID: 2, Name: entity.RoleNameUser}}}
	e := newTestEcho()
	e.GET("/order/:id", h.FindOne, asCaller(caller))

	orderUC.EXPECT().FindOne(mock.Anything, caller, int64(4)).Return(nil, domainerrors.TokenIDMismatch(8)).Once()

	rec, env := doJSON(t, e, http.MethodGet, "/order/4", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User ID '8' does not match the token ID", env.Message)
}

func TestOrderHandler_BadPathParam(t *testing.T) {
	h := NewOrderHandler(OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t)})
	e := newTestEcho()
	e.GET("/order/:id", h.FindOne)

	rec, env := doJSON(t, e, http.MethodGet, "/order/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The param 'id' must be a positive integer", env.Message)
}

func TestAuthHandler_LoginLocalSetsSessionCookies(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Config: testConfig()})
	e := newTestEcho()
	e.POST("/auth/login/local", h.LoginLocal)

	authUC.EXPECT().
		LoginLocal(mock.Anything, usecase.LoginLocalInput{UsernameOrEmail: "ana", Password: "secret-password"}).
		Return(&usecase.SessionTokens{AccessToken: "access", RefreshToken: "refresh", User: &entity.User{ID: 7, Username: "ana"}}, nil).
		Once()

	rec, env := doJSON(t, e, http.MethodPost, "/auth/login/local", `{"usernameOrEmail":"ana","password":"secret-password"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "login succesfully", env.Message)

	access := findCookie(rec, cookie.Access)
	require.NotNil(t, access)
	assert.Equal(t, "access", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteNoneMode, access.SameSite)
	assert.Equal(t, 3600, access.MaxAge)

	refresh := findCookie(rec, cookie.Refresh)
	require.NotNil(t, refresh)
	assert.Equal(t, 7200, refresh.MaxAge)
}

func TestAuthHandler_LoginFailureSetsNoCookie(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Config: testConfig()})
	e := newTestEcho()
	e.POST("/auth/login/local", h.LoginLocal)

	authUC.EXPECT().LoginLocal(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

	rec, env := doJSON(t, e, http.MethodPost, "/auth/login/local", `{"usernameOrEmail":"ana","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "The credentials not match", env.Message)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Config: testConfig()})
	e := newTestEcho()
	e.POST("/auth/refresh", h.Refresh)
	e.POST("/auth/logout", h.Logout)

	authUC.EXPECT().Refresh(mock.Anything, "refresh-token").Return("new-access", nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Refresh, Value: "refresh-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token refreshed succesfully")
	require.NotNil(t, findCookie(rec, cookie.Access))
	assert.Equal(t, "new-access", findCookie(rec, cookie.Access).Value)

	rec, env := doJSON(t, e, http.MethodPost, "/auth/logout", "")
	assert.Equal(t, "Logout successfully", env.Message)
	for _, name := range []string{cookie.Access, cookie.Refresh} {
		cleared := findCookie(rec, name)
		require.NotNil(t, cleared, name)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
	}
}

func TestUserHandler_PasswordResetFlow(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Config: testConfig()})
	e := newTestEcho()
	e.POST("/user/reset-pass-validate-code", h.ValidateResetCode)
	e.PUT("/user/reset-pass", h.ResetPassword, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetResetUserID(c, 7)

			return next(c)
		}
	})

	userUC.EXPECT().ValidateResetCode(mock.Anything, "123456", "ana@padel.test").Return("reset-jwt", nil).Once()
	userUC.EXPECT().ResetPassword(mock.Anything, int64(7), "a-new-password").Return(nil).Once()

	rec, env := doJSON(t, e, http.MethodPost, "/user/reset-pass-validate-code", `{"code":"123456","email":"ana@padel.test"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Code verified succesfully", env.Message)
	reset := findCookie(rec, cookie.PasswordReset)
	require.NotNil(t, reset)
	assert.Equal(t, "reset-jwt", reset.Value)
	assert.Equal(t, 300, reset.MaxAge)

	rec, env = doJSON(t, e, http.MethodPut, "/user/reset-pass", `{"newPassword":"a-new-password"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "The password was updated succesfully", env.Message)
	cleared := findCookie(rec, cookie.PasswordReset)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestUserHandler_ValidateResetCodeRejectsShortCode(t *testing.T) {
	h := NewUserHandler(UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t), Config: testConfig()})
	e := newTestEcho()
	e.POST("/user/reset-pass-validate-code", h.ValidateResetCode)

	rec, env := doJSON(t, e, http.MethodPost, "/user/reset-pass-validate-code", `{"code":"12","email":"ana@padel.test"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The request body is not valid", env.Message)
	assert.Contains(t, string(env.Details), `"field":"Code"`)
}

func TestCatalogHandler_MessagesNameTheKind(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	handlers := NewCatalogHandlers(catalogUC)
	e := newTestEcho()
	e.POST("/brand", handlers.Brand.Create)
	e.DELETE("/supplier/:id", handlers.Supplier.Remove)

	catalogUC.EXPECT().Create(mock.Anything, entity.CatalogBrand, "Nox").Return(&entity.CatalogItem{ID: 1, Name: "Nox"}, nil).Once()
	catalogUC.EXPECT().Remove(mock.Anything, entity.CatalogSupplier, int64(4)).Return(&entity.CatalogItem{ID: 4, Name: "Padel Sur"}, nil).Once()

	rec, env := doJSON(t, e, http.MethodPost, "/brand", `{"name":"Nox"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "The brand was created succesfully", env.Message)
	assert.JSONEq(t, `{"id":1,"name":"Nox"}`, string(env.Recourse))

	_, env = doJSON(t, e, http.MethodDelete, "/supplier/4", "")
	assert.Equal(t, "The supplier was deleted succesfully", env.Message)
}

func TestProductHandler_FindAllParsesFilter(t *testing.T) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})
	e := newTestEcho()
	e.GET("/product", h.FindAll)

	productUC.EXPECT().
		FindAll(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
			return f.Brand == "Nox" && f.IsActive && *f.MinPrice == 50 && f.MaxPrice == nil && *f.MinStock == 1 && f.Limit == 10
		})).
		Return([]*entity.Product{{ID: 1, Name: "AT10", Price: 120, IsActive: true}}, nil).
		Once()

	rec, env := doJSON(t, e, http.MethodGet, "/product?brand=Nox&minPrice=50&minStock=1&limit=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Recourse), `"name":"AT10"`)

	rec, env = doJSON(t, e, http.MethodGet, "/product?minPrice=cheap", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The query param 'minPrice' must be a number", env.Message)
}
