package cart_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"MiniCart/internal/cart"
	"MiniCart/internal/catalog"
	"MiniCart/pkg/kit"
)

func newCartTS(t *testing.T, limiter *kit.IPRateLimiter) (*httptest.Server, *cart.Store) {
	t.Helper()

	store := newStore(t)
	s := &cart.Server{Store: store, Log: zap.NewNop(), Limiter: limiter}

	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts, store
}

func do(t *testing.T, method, url, body string) (int, []catalog.Product) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}

	var items []catalog.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode: %v body=%s", err, raw)
	}
	return resp.StatusCode, items
}

func TestHTTP_EmptyCartIsArray(t *testing.T) {
	ts, _ := newCartTS(t, nil)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if got := string(bytes.TrimSpace(raw)); got != "[]" {
		t.Fatalf("body=%q", got)
	}
}

func TestHTTP_AddAndRemove(t *testing.T) {
	ts, _ := newCartTS(t, nil)

	status, items := do(t, http.MethodPost, ts.URL+"/", `{"id":1}`)
	if status != http.StatusOK || !equalIDs(items, 1) {
		t.Fatalf("status=%d ids=%v", status, ids(items))
	}

	_, items = do(t, http.MethodPost, ts.URL+"/", `{"id":2}`)
	if !equalIDs(items, 1, 2) {
		t.Fatalf("ids=%v", ids(items))
	}

	_, items = do(t, http.MethodDelete, ts.URL+"/1", "")
	if !equalIDs(items, 2) {
		t.Fatalf("ids=%v", ids(items))
	}
}

func TestHTTP_AddIgnoresInvalidBodies(t *testing.T) {
	ts, store := newCartTS(t, nil)
	store.Add(3)

	bodies := []string{
		`{"id":42}`,
		`{"id":"1"}`,
		`{"id":1.5}`,
		`{"id":null}`,
		`{}`,
		`not json`,
		`[1]`,
	}
	for _, b := range bodies {
		status, items := do(t, http.MethodPost, ts.URL+"/", b)
		if status != http.StatusOK {
			t.Fatalf("body %q status=%d", b, status)
		}
		if !equalIDs(items, 3) {
			t.Fatalf("body %q ids=%v", b, ids(items))
		}
	}

	_, items := do(t, http.MethodPost, ts.URL+"/", `{"id":1.0,"name":"ignored"}`)
	if !equalIDs(items, 3, 1) {
		t.Fatalf("integral float id ids=%v", ids(items))
	}
}

func TestHTTP_RemoveIgnoresInvalidIDs(t *testing.T) {
	ts, store := newCartTS(t, nil)
	store.Add(1)

	for _, path := range []string{"/abc", "/99", "/1.5"} {
		status, items := do(t, http.MethodDelete, ts.URL+path, "")
		if status != http.StatusOK || !equalIDs(items, 1) {
			t.Fatalf("%s status=%d ids=%v", path, status, ids(items))
		}
	}

	_, items := do(t, http.MethodDelete, ts.URL+"/%201", "")
	if len(items) != 0 {
		t.Fatalf("padded id not removed: %v", ids(items))
	}
}

func TestHTTP_Summary(t *testing.T) {
	ts, store := newCartTS(t, nil)
	store.Add(2)
	store.Add(4)

	resp, err := http.Get(ts.URL + "/summary")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var sum cart.Summary
	if err := json.NewDecoder(resp.Body).Decode(&sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.Count != 2 || sum.Total != 28000 {
		t.Fatalf("summary=%+v", sum)
	}
}

func TestHTTP_LimiterGuardsMutations(t *testing.T) {
	ts, _ := newCartTS(t, kit.NewIPRateLimiter(2, time.Minute))

	for i := 0; i < 2; i++ {
		if status, _ := do(t, http.MethodPost, ts.URL+"/", `{"id":1}`); status != http.StatusOK {
			t.Fatalf("request %d status=%d", i, status)
		}
	}
	if status, _ := do(t, http.MethodDelete, ts.URL+"/1", ""); status != http.StatusTooManyRequests {
		t.Fatalf("status=%d", status)
	}

	if status, items := do(t, http.MethodGet, ts.URL+"/", ""); status != http.StatusOK || len(items) != 2 {
		t.Fatalf("read status=%d len=%d", status, len(items))
	}
}
