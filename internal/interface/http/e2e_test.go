package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/rizkyfahmi/todoauth/internal/application"
	"github.com/rizkyfahmi/todoauth/internal/infrastructure/memory"
	handlers "github.com/rizkyfahmi/todoauth/internal/interface/http"
	"github.com/rizkyfahmi/todoauth/internal/router"
	"github.com/rizkyfahmi/todoauth/internal/router/modules"
	"github.com/rizkyfahmi/todoauth/pkg/helpers"
	"github.com/rizkyfahmi/todoauth/pkg/validation"
)

// newServices builds both engines wired exactly as the two mains do, sharing
// only the token signing contract.
func newServices(t *testing.T) (authEngine, todoEngine *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tokens, err := helpers.NewTokenManager("e2e-secret", "HS256", 60)
	require.NoError(t, err)

	authSvc := application.NewAuthService(memory.NewUserRepository(), tokens, logger)
	authEngine = gin.New()
	authReg := router.NewRegistry(authEngine)
	authReg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	authReg.RegisterAll()

	todoSvc := application.NewTodoService(memory.NewTodoRepository())
	todoEngine = gin.New()
	todoReg := router.NewRegistry(todoEngine)
	todoReg.Add(modules.NewTodoModule(handlers.NewTodoHandler(todoSvc, logger), tokens))
	todoReg.RegisterAll()

	return authEngine, todoEngine
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}

func TestHealthz(t *testing.T) {
	auth, todo := newServices(t)

	for _, engine := range []*gin.Engine{auth, todo} {
		w := do(engine, http.MethodGet, "/healthz", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	}
}

func TestRegister_Success(t *testing.T) {
	auth, _ := newServices(t)

	w := do(auth, http.MethodPost, "/register", "", gin.H{"email": "t@e.com", "password": "pw123456"})
	require.Equal(t, http.StatusCreated, w.Code)

	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	decode(t, w, &out)
	require.NotEmpty(t, out.ID)
	require.Equal(t, "t@e.com", out.Email)
	require.NotContains(t, w.Body.String(), "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth, _ := newServices(t)

	payload := gin.H{"email": "a@x.com", "password": "pw123456"}
	require.Equal(t, http.StatusCreated, do(auth, http.MethodPost, "/register", "", payload).Code)

	w := do(auth, http.MethodPost, "/register", "", payload)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "already exists")
}

func TestRegister_MalformedEmail(t *testing.T) {
	auth, _ := newServices(t)

	w := do(auth, http.MethodPost, "/register", "", gin.H{"email": "invalid-email", "password": "pw123456"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLogin_Success(t *testing.T) {
	auth, _ := newServices(t)
	require.Equal(t, http.StatusCreated, do(auth, http.MethodPost, "/register", "", gin.H{"email": "t@e.com", "password": "pw123456"}).Code)

	w := do(auth, http.MethodPost, "/login", "", gin.H{"email": "t@e.com", "password": "pw123456"})
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decode(t, w, &out)
	require.NotEmpty(t, out.AccessToken)
	require.Equal(t, "bearer", out.TokenType)
}

func TestLogin_BadCredentials(t *testing.T) {
	auth, _ := newServices(t)
	require.Equal(t, http.StatusCreated, do(auth, http.MethodPost, "/register", "", gin.H{"email": "t@e.com", "password": "pw123456"}).Code)

	wrongPassword := do(auth, http.MethodPost, "/login", "", gin.H{"email": "t@e.com", "password": "nope1234"})
	unknownEmail := do(auth, http.MethodPost, "/login", "", gin.H{"email": "ghost@e.com", "password": "pw123456"})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// neither response reveals which check failed
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestTodos_RequireAuth(t *testing.T) {
	_, todo := newServices(t)

	require.Equal(t, http.StatusUnauthorized, do(todo, http.MethodGet, "/todos/", "", nil).Code)

	req := httptest.NewRequest(http.MethodGet, "/todos/", nil)
	req.Header.Set("Authorization", "Token abcdef")
	w := httptest.NewRecorder()
	todo.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEndToEnd_RegisterLoginCRUD(t *testing.T) {
	auth, todo := newServices(t)

	// register
	w := do(auth, http.MethodPost, "/register", "", gin.H{"email": "t@e.com", "password": "pw123456"})
	require.Equal(t, http.StatusCreated, w.Code)

	// login
	w = do(auth, http.MethodPost, "/login", "", gin.H{"email": "t@e.com", "password": "pw123456"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &login)

	// empty list
	w = do(todo, http.MethodGet, "/todos/", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	// create
	w = do(todo, http.MethodPost, "/todos/", login.AccessToken, gin.H{"title": "a"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	decode(t, w, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "a", created.Title)
	require.False(t, created.Completed)

	// list shows it
	w = do(todo, http.MethodGet, "/todos/", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	decode(t, w, &items)
	require.Len(t, items, 1)
	require.Equal(t, "a", items[0].Title)

	// delete
	w = do(todo, http.MethodDelete, "/todos/"+created.ID, login.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// gone
	w = do(todo, http.MethodGet, "/todos/", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestTodos_CrossOwnerDelete(t *testing.T) {
	auth, todo := newServices(t)

	tokenFor := func(email string) string {
		require.Equal(t, http.StatusCreated, do(auth, http.MethodPost, "/register", "", gin.H{"email": email, "password": "pw123456"}).Code)
		w := do(auth, http.MethodPost, "/login", "", gin.H{"email": email, "password": "pw123456"})
		require.Equal(t, http.StatusOK, w.Code)
		var login struct {
			AccessToken string `json:"access_token"`
		}
		decode(t, w, &login)
		return login.AccessToken
	}

	victim := tokenFor("v@e.com")
	attacker := tokenFor("u@e.com")

	w := do(todo, http.MethodPost, "/todos/", victim, gin.H{"title": "keep me"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)

	// attacker cannot delete the victim's todo
	w = do(todo, http.MethodDelete, "/todos/"+created.ID, attacker, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// victim's todo intact
	w = do(todo, http.MethodGet, "/todos/", victim, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "keep me")
}

func TestTodos_CreateMissingTitle(t *testing.T) {
	auth, todo := newServices(t)

	require.Equal(t, http.StatusCreated, do(auth, http.MethodPost, "/register", "", gin.H{"email": "t@e.com", "password": "pw123456"}).Code)
	w := do(auth, http.MethodPost, "/login", "", gin.H{"email": "t@e.com", "password": "pw123456"})
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &login)

	w = do(todo, http.MethodPost, "/todos/", login.AccessToken, gin.H{"completed": true})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
