package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freshcart/grocery_backend/internal/config"
	"github.com/freshcart/grocery_backend/internal/hash"
	"github.com/freshcart/grocery_backend/internal/models"
	"github.com/freshcart/grocery_backend/internal/mykafka"
	"github.com/freshcart/grocery_backend/internal/respond"
	"github.com/freshcart/grocery_backend/internal/token"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Tokens *token.Service
	Auth   *AuthHandler
	Admin  *AdminHandler
	Items  *ItemHandler
	Orders *OrderHandler
}

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := initTestDB(t)
	tokens := &token.Service{Secret: []byte("test-secret")}
	prod := &mykafka.Producer{} // zero value: publishes nothing

	return &testEnv{
		T:      t,
		E:      echo.New(),
		DB:     db,
		Tokens: tokens,
		Auth:   &AuthHandler{DB: db, Tokens: tokens, Producer: prod},
		Admin:  &AdminHandler{DB: db, Tokens: tokens, Producer: prod},
		Items:  &ItemHandler{DB: db, Producer: prod},
		Orders: &OrderHandler{DB: db, Producer: prod},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// asUser stamps the context the way RequireAuth would after verification.
func asUser(c echo.Context, id uint, role string) {
	c.Set("userID", id)
	c.Set("role", role)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) respond.Envelope {
	t.Helper()
	var env respond.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func seedItem(t *testing.T, db *gorm.DB, name string, category uint, price float64, qty uint) models.Item {
	t.Helper()
	item := models.Item{Name: name, CategoryID: category, Price: price, Quantity: qty}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedUser(t *testing.T, db *gorm.DB, username, password, role string) models.User {
	t.Helper()
	passwordHash, err := hash.HashPassword(password)
	require.NoError(t, err)
	user := models.User{Username: username, PasswordHash: passwordHash, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}
