package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"MiniCart/internal/catalog"
)

func TestNew_SortsByID(t *testing.T) {
	c, err := catalog.New([]catalog.Product{
		{ID: 3, Name: "c"},
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := c.List()
	for i, want := range []int64{1, 2, 3} {
		if got[i].ID != want {
			t.Fatalf("List()[%d].ID=%d want=%d", i, got[i].ID, want)
		}
	}
}

func TestNew_RejectsBadIDs(t *testing.T) {
	if _, err := catalog.New([]catalog.Product{{ID: 0}}); !errors.Is(err, catalog.ErrInvalidID) {
		t.Fatalf("zero id err=%v", err)
	}
	if _, err := catalog.New([]catalog.Product{{ID: 1}, {ID: 1}}); !errors.Is(err, catalog.ErrDuplicateID) {
		t.Fatalf("duplicate id err=%v", err)
	}
}

func TestSeeded_Get(t *testing.T) {
	c := catalog.NewSeeded()

	p, ok := c.Get(2)
	if !ok {
		t.Fatalf("product 2 missing")
	}
	if p.Name != "Mobile" || p.Price != 20000 || p.Color != "#4dabf7" {
		t.Fatalf("product 2=%+v", p)
	}

	if _, ok := c.Get(99); ok {
		t.Fatalf("unexpected product 99")
	}
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	c := catalog.NewSeeded()

	l := c.List()
	l[0].Name = "changed"

	if p, _ := c.Get(l[0].ID); p.Name == "changed" {
		t.Fatalf("catalog mutated through List result")
	}
	if c.List()[0].Name == "changed" {
		t.Fatalf("catalog order slice mutated through List result")
	}
}

func TestPing_Empty(t *testing.T) {
	c, err := catalog.New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Ping(context.Background()); !errors.Is(err, catalog.ErrEmpty) {
		t.Fatalf("Ping err=%v", err)
	}
}

func TestServer_Routes(t *testing.T) {
	s := &catalog.Server{Catalog: catalog.NewSeeded(), Log: zap.NewNop()}
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get list: %v", err)
	}
	var products []catalog.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || len(products) != 4 {
		t.Fatalf("status=%d len=%d", resp.StatusCode, len(products))
	}

	resp, err = http.Get(ts.URL + "/4")
	if err != nil {
		t.Fatalf("get one: %v", err)
	}
	var p catalog.Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if p.Name != "Smart Watch" {
		t.Fatalf("product=%+v", p)
	}

	for _, path := range []string{"/42", "/abc"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s status=%d", path, resp.StatusCode)
		}
	}
}
