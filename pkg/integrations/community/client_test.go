package community

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/sudet/pkg/cache"
	"github.com/matzehuels/sudet/pkg/integrations"
)

func TestNewClient(t *testing.T) {
	c := NewClient(cache.NewNullCache(), time.Hour)
	if c.Client == nil {
		t.Error("expected client to be initialized")
	}
	if c.baseURL != "https://steamcommunity.com" {
		t.Errorf("baseURL = %s", c.baseURL)
	}
}

func TestClient_ResolveUsers(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/actions/ajaxresolveusers" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotQuery = r.URL.Query().Get("steamids")
		w.Write([]byte(`[
			{"steamid":"76561197960287930","accountid":22202,"persona_name":"Rabscuttle","profile_url":"gabelogannewell","avatar_url":"x"},
			{"steamid":"76561197960265729","accountid":1,"persona_name":"other"}
		]`))
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	users, err := c.ResolveUsers(context.Background(), []string{"76561197960287930", "76561197960265729", "76561197960287930"}, true)
	if err != nil {
		t.Fatalf("ResolveUsers failed: %v", err)
	}
	if gotQuery != "76561197960265729,76561197960287930" {
		t.Errorf("steamids query = %q, want sorted unique list", gotQuery)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].AccountID != 22202 || users[0].PersonaName != "Rabscuttle" || users[0].ProfileURL != "gabelogannewell" {
		t.Errorf("unexpected first user: %+v", users[0])
	}
}

func TestClient_ResolveUsersEmpty(t *testing.T) {
	c := testClient(t, "http://127.0.0.1:1")
	users, err := c.ResolveUsers(context.Background(), nil, false)
	if err != nil || users != nil {
		t.Errorf("ResolveUsers(nil) = %v, %v; want nil, nil", users, err)
	}
}

func TestClient_ResolveAccountID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("steamids") {
		case "76561197960287930":
			w.Write([]byte(`[{"steamid":"76561197960287930","accountid":22202}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	id, err := c.ResolveAccountID(context.Background(), "76561197960287930", true)
	if err != nil {
		t.Fatalf("ResolveAccountID failed: %v", err)
	}
	if id != "22202" {
		t.Errorf("account id = %s, want 22202", id)
	}

	_, err = c.ResolveAccountID(context.Background(), "76561197960265729", true)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestClient_ResolveUsersCached(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`[{"steamid":"76561197960287930","accountid":22202}]`))
	}))
	defer server.Close()

	backend, _ := cache.NewFileCache(t.TempDir())
	c := &Client{
		Client:  integrations.NewClient(backend, "community:", time.Hour, nil),
		baseURL: server.URL,
	}

	for range 2 {
		if _, err := c.ResolveAccountID(context.Background(), "76561197960287930", false); err != nil {
			t.Fatalf("ResolveAccountID failed: %v", err)
		}
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}

func TestClient_ResolveUsersServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	_, err := c.ResolveUsers(context.Background(), []string{"1"}, true)
	if !errors.Is(err, integrations.ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client := integrations.NewClient(cache.NewNullCache(), "community:", time.Hour, nil)
	client.SetRetry(2, time.Millisecond)
	return &Client{
		Client:  client,
		baseURL: serverURL,
	}
}
