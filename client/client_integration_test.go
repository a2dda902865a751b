// client_integration_test.go
//go:build integration
// +build integration

package client

import (
	"net/http"
	"testing"
)

var c = Client{
	Addr:   "http://localhost:3333",
	Client: http.Client{},
}

func TestPing(t *testing.T) {
	if s, err := c.Ping(); err != nil || s != "pong" {
		t.Fail()
	}
}

func TestCreateThenGet(t *testing.T) {
	created, err := c.CreateArticle("Go", "Intro")
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := c.GetArticle(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Title != "Go" || got.Content != "Intro" {
		t.Fatalf("unexpected article: %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	got, err := c.GetArticle(1 << 40)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected absent article, got %+v", got)
	}
}
