package integrationtests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"domain-market/internal/auction"
	"domain-market/internal/escrow"
	market "domain-market/internal/marketService"
	"domain-market/internal/registry"
	"domain-market/internal/server"
	"domain-market/utils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// Clock lets a test move the server's notion of time
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SetupTestRouter wires the full server stack on in-memory engines driven by clock.
// With EnforceOwnership settlements are also checked against the registry.
func SetupTestRouter(clock *Clock, opts market.Options) *gin.Engine {
	if opts.Registry == nil {
		opts.Registry = registry.New(clock.Now)
	}
	var verifier escrow.Verifier = escrow.BasicVerifier{}
	if opts.EnforceOwnership {
		verifier = escrow.ChainVerifier{verifier, escrow.LedgerVerifier{Ledger: opts.Registry}}
	}

	svc := market.NewMarketService(
		auction.NewEngine(clock.Now),
		escrow.NewEngine(clock.Now, verifier),
		opts,
	)
	return server.SetupRouter(svc)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response.
// Successful responses are unwrapped to their data field.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}

	return resp, w
}
