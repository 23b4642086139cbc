package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ipsum-store/internal/config"
	"github.com/ipsum-store/internal/models"
	"github.com/ipsum-store/internal/provider"
	"github.com/ipsum-store/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBSeq int64

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, models.AutoMigrate(db), "auto migrate")

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.JWT.SecretKey = "api-test-secret-0123456789abcdef012345678"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordMinLength = 8

	return router.SetupRouter(cfg, provider.NewContainer(cfg, db))
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), "decode response body: %s", w.Body.String())
	return decoded
}

func createTestUser(t *testing.T, engine *gin.Engine, username string) uint {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/users", map[string]interface{}{
		"username":   username,
		"password":   "open sesame 123",
		"first_name": "Ada",
		"last_name":  "Lovelace",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, "create user: %s", w.Body.String())
	return uint(decodeBody(t, w)["id"].(float64))
}

func TestProductCRUDRoundTrip(t *testing.T) {
	engine := newTestServer(t)

	// 创建
	w := doJSON(t, engine, http.MethodPost, "/products", map[string]string{
		"name":        "Shirt",
		"description": "Cotton",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)
	assert.Equal(t, "Shirt", created["name"])
	assert.Equal(t, "Cotton", created["description"])
	id := uint(created["id"].(float64))
	require.NotZero(t, id)

	// 读取
	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decodeBody(t, w))

	// 部分更新：未提交的字段保持原值
	w = doJSON(t, engine, http.MethodPatch, fmt.Sprintf("/products/%d", id), map[string]string{
		"name": "Shirt v2",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := decodeBody(t, w)
	assert.Equal(t, "Shirt v2", patched["name"])
	assert.Equal(t, "Cotton", patched["description"])

	// 删除后不可再读取
	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProductMissingField(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/products", map[string]string{"name": "Shirt"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var body struct {
		Error struct {
			Code   string   `json:"code"`
			Fields []string `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.Contains(t, body.Error.Fields, "description")
}

func TestInvalidIdentifier(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/products/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/products/99999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestListReturnsEmptyArray(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/categories", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestUserResponseNeverCarriesPassword(t *testing.T) {
	engine := newTestServer(t)
	id := createTestUser(t, engine, "ada")

	w := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "password_hash")
	assert.Equal(t, "ada", body["username"])
}

func TestCreateUserDuplicateUsernameConflict(t *testing.T) {
	engine := newTestServer(t)
	createTestUser(t, engine, "bob")

	w := doJSON(t, engine, http.MethodPost, "/users", map[string]interface{}{
		"username":   "bob",
		"password":   "open sesame 123",
		"first_name": "Bob",
		"last_name":  "Builder",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestPatchUserExplicitNullClearsAddress(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/users", map[string]interface{}{
		"username":           "carol",
		"password":           "open sesame 123",
		"first_name":         "Carol",
		"last_name":          "Chen",
		"billing_address_id": 7,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := uint(decodeBody(t, w)["id"].(float64))

	w = doJSON(t, engine, http.MethodPatch, fmt.Sprintf("/users/%d", id), map[string]interface{}{
		"billing_address_id": nil,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Nil(t, decodeBody(t, w)["billing_address_id"])
}

func TestAuthTokenIssuance(t *testing.T) {
	engine := newTestServer(t)
	createTestUser(t, engine, "dave")

	w := doJSON(t, engine, http.MethodPost, "/auth/token", map[string]string{
		"username": "dave",
		"password": "open sesame 123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.NotEmpty(t, body["expires_at"])

	w = doJSON(t, engine, http.MethodPost, "/auth/token", map[string]string{
		"username": "dave",
		"password": "wrong password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsersGuard(t *testing.T) {
	engine := newTestServer(t)
	createTestUser(t, engine, "erin")

	// 无凭据
	w := doJSON(t, engine, http.MethodGet, "/users", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Bearer Token
	w = doJSON(t, engine, http.MethodPost, "/auth/token", map[string]string{
		"username": "erin",
		"password": "open sesame 123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody(t, w)["token"].(string)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	w = doJSON(t, engine, http.MethodGet, "/users", nil, header)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Token 无效时回退 Basic
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.SetBasicAuth("erin", "open sesame 123")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.SetBasicAuth("erin", "bad password")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// 伪造 Token 直接拒绝
	header = http.Header{}
	header.Set("Authorization", "Bearer not-a-token")
	w = doJSON(t, engine, http.MethodGet, "/users", nil, header)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartDuplicateEntriesViaHTTP(t *testing.T) {
	engine := newTestServer(t)

	payload := map[string]uint{"user_id": 1, "option_id": 5}
	w := doJSON(t, engine, http.MethodPost, "/carts", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doJSON(t, engine, http.MethodPost, "/carts", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodGet, "/carts", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestOptionMoneySerialization(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/options", map[string]interface{}{
		"product_id":      1,
		"color":           "white",
		"wholesale_price": "24.50",
		"retail_price":    "49.00",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "24.50", body["wholesale_price"])
	assert.Equal(t, "49.00", body["retail_price"])
	assert.Nil(t, body["percent_off"])
}
