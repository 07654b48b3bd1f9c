package wowsdk

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// serviceStub serves both the token endpoint and the resource API from a
// single test server, recording what the client asked for.
type serviceStub struct {
	srv *httptest.Server

	mu          sync.Mutex
	api         http.HandlerFunc
	token       string
	expiresIn   int
	tokenStatus int
	tokenCalls  int
	apiCalls    []*url.URL
}

func (s *serviceStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/oauth/token" {
		s.mu.Lock()
		s.tokenCalls++
		token, expires, status := s.token, s.expiresIn, s.tokenStatus
		s.mu.Unlock()

		if status != http.StatusOK {
			http.Error(w, "token endpoint unavailable", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":%q,"expires_in":%d}`, token, expires)
		return
	}

	s.mu.Lock()
	s.apiCalls = append(s.apiCalls, r.URL)
	api := s.api
	s.mu.Unlock()

	if api != nil {
		api(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{}`)
}

func (s *serviceStub) URL() string {
	return s.srv.URL
}

func (s *serviceStub) SetAPI(api http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.api = api
}

func (s *serviceStub) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *serviceStub) SetTokenStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenStatus = status
}

func (s *serviceStub) TokenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenCalls
}

func (s *serviceStub) APICalls() []*url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*url.URL(nil), s.apiCalls...)
}

// newTestClient spins up a stub service and returns a Client pointed at
// it. The stub issues token "T1" with a one hour lifetime by default.
func newTestClient(t *testing.T, api http.HandlerFunc) (*Client, *serviceStub) {
	t.Helper()

	stub := &serviceStub{
		api:         api,
		token:       "T1",
		expiresIn:   3600,
		tokenStatus: http.StatusOK,
	}
	stub.srv = httptest.NewServer(stub)
	t.Cleanup(stub.srv.Close)

	client, err := New(Config{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		APIBaseURL:   stub.srv.URL,
		TokenURL:     stub.srv.URL + "/oauth/token",
		HTTPClient:   stub.srv.Client(),
	})
	require.NoError(t, err)

	return client, stub
}

// jsonHandler answers every request with a fixed JSON body.
func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}
