package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/larrykatula12/restaurante/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory UsuarioRepository stub ─────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[string]*model.Usuario
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.users[u.Email] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context, _, _ int) ([]model.Usuario, error) {
	return nil, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.Email] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uint) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Helpers ──────────────────────────────────────────────────────────────────

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, email, rol string, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 1, "email": email, "rol": rol,
		"exp": time.Now().Add(dur).Unix(), "iat": time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func testRouter(repo *stubUsuarioRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(testSecret, repo))
	r.GET("/protected", func(c *gin.Context) {
		user := GetCurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "rol": user.Rol})
	})
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func seedCuenta(repo *stubUsuarioRepo, email, rol string, activo bool) {
	repo.users[email] = &model.Usuario{
		ID: uint(len(repo.users) + 1), NombreCompleto: "Cuenta de prueba",
		Email: email, Rol: rol, Activo: activo,
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestJWTAuthSinToken(t *testing.T) {
	r := testRouter(&stubUsuarioRepo{users: map[string]*model.Usuario{}})

	w := doGet(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestJWTAuthTokenInvalido(t *testing.T) {
	r := testRouter(&stubUsuarioRepo{users: map[string]*model.Usuario{}})

	w := doGet(r, "/protected", "this.is.garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestJWTAuthTokenExpirado(t *testing.T) {
	repo := &stubUsuarioRepo{users: map[string]*model.Usuario{}}
	seedCuenta(repo, "ana@restaurante.com", model.RolEmpleado, true)
	r := testRouter(repo)

	w := doGet(r, "/protected", signToken(t, "ana@restaurante.com", model.RolEmpleado, -time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthCuentaBorrada(t *testing.T) {
	// valid token whose account no longer exists
	r := testRouter(&stubUsuarioRepo{users: map[string]*model.Usuario{}})

	w := doGet(r, "/protected", signToken(t, "fantasma@restaurante.com", model.RolEmpleado, time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthCuentaInactiva(t *testing.T) {
	repo := &stubUsuarioRepo{users: map[string]*model.Usuario{}}
	seedCuenta(repo, "ana@restaurante.com", model.RolEmpleado, false)
	r := testRouter(repo)

	w := doGet(r, "/protected", signToken(t, "ana@restaurante.com", model.RolEmpleado, time.Hour))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Usuario inactivo", body["detail"])
}

func TestJWTAuthResuelveCuenta(t *testing.T) {
	repo := &stubUsuarioRepo{users: map[string]*model.Usuario{}}
	seedCuenta(repo, "ana@restaurante.com", model.RolEmpleado, true)
	r := testRouter(repo)

	w := doGet(r, "/protected", signToken(t, "ana@restaurante.com", model.RolEmpleado, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ana@restaurante.com", body["email"])
	assert.Equal(t, model.RolEmpleado, body["rol"])
}

func TestRequireAdmin(t *testing.T) {
	repo := &stubUsuarioRepo{users: map[string]*model.Usuario{}}
	seedCuenta(repo, "ana@restaurante.com", model.RolEmpleado, true)
	seedCuenta(repo, "jefe@restaurante.com", model.RolAdmin, true)
	r := testRouter(repo)

	w := doGet(r, "/admin", signToken(t, "ana@restaurante.com", model.RolEmpleado, time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(r, "/admin", signToken(t, "jefe@restaurante.com", model.RolAdmin, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}
