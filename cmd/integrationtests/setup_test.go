package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"listing-engine/internal/events"
	"listing-engine/internal/factory"
	"listing-engine/internal/interaction"
	"listing-engine/internal/listing"
	"listing-engine/internal/registry"
	"listing-engine/internal/server"
	"listing-engine/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testCreationFee = 50
	testBidBond     = 300
	testAdminSecret = "integration-secret"
)

// TestEnv wires the full stack over an adjustable clock so tests can walk a
// listing through its phases.
type TestEnv struct {
	Router *gin.Engine
	Log    *events.Log

	mu  sync.Mutex
	now time.Time
}

func (e *TestEnv) SetNow(t time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = t
}

func (e *TestEnv) Now() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.now
}

// SetupTestEnv initializes the router with in-memory components for
// integration testing.
func SetupTestEnv(start time.Time) *TestEnv {
	gin.SetMode(gin.TestMode)

	env := &TestEnv{now: start}
	env.Log = events.NewLog()
	store := listing.NewStore()
	users := registry.NewUserRegistry()
	tokens := token.NewLedger()
	listingFactory := factory.New(store, env.Log, testCreationFee, "0xtreasury")
	svc := interaction.NewService(users, tokens, store, listingFactory, env.Log, env.Now, testBidBond)

	env.Router = server.SetupRouter(svc, testAdminSecret, 0)
	return env
}

// AdminToken signs a short-lived bearer token accepted by the admin routes.
func AdminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testAdminSecret))
	if err != nil {
		t.Fatalf("failed to sign admin token: %v", err)
	}
	return signed
}

// ExecuteRequestAndParse executes an HTTP request on the env's router and
// parses the response envelope. An empty authToken skips the header.
func ExecuteRequestAndParse(t *testing.T, env *TestEnv, method, url string, body any, authToken string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data unwraps the "data" field of a response envelope.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
