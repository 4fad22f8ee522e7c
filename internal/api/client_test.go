package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shelfsync/shelfsync/internal/api"
	"github.com/shelfsync/shelfsync/internal/collection"
)

func authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer test-token",
		"Content-Type":  "application/json",
	}
}

func TestListBooks_CarriesAuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if r.URL.Path != "/books" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"id":"1","title":"Dune","author":"Frank Herbert","status":"READ","rating":9},
			{"id":"2","title":"Emma","author":"Jane Austen","status":"WANT_TO_READ"}
		]`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, authHeaders)
	books, err := c.ListBooks()
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("got %d books, want 2", len(books))
	}
	if books[0].Status != collection.StatusRead {
		t.Errorf("status = %q", books[0].Status)
	}
	if books[0].Rating == nil || *books[0].Rating != 9 {
		t.Error("rating not decoded")
	}
	if books[1].Rating != nil {
		t.Error("absent rating must decode as nil")
	}
}

func TestCreateBook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		var req map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["status"] != "WANT_TO_READ" {
			t.Errorf("status = %v", req["status"])
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"9","title":"Dune","author":"Frank Herbert","status":"WANT_TO_READ"}`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, authHeaders)
	created, err := c.CreateBook(api.CreateBookRequest{
		Title:  "Dune",
		Author: "Frank Herbert",
		Status: collection.StatusWantToRead,
	})
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	if created.ID != "9" {
		t.Errorf("id = %q", created.ID)
	}
}

func TestUpdateBook_SendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/books/7" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if len(body) != 1 {
			t.Errorf("patch carries %d fields, want 1: %v", len(body), body)
		}
		if body["status"] != "READING" {
			t.Errorf("status = %v", body["status"])
		}
		_, _ = w.Write([]byte(`{"id":"7","title":"Dune","author":"Frank Herbert","status":"READING"}`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, authHeaders)
	status := collection.StatusReading
	updated, err := c.UpdateBook("7", api.BookPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateBook: %v", err)
	}
	if updated.Status != collection.StatusReading {
		t.Errorf("status = %q", updated.Status)
	}
}

func TestDeleteBook_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := api.New(srv.URL, authHeaders)
	if err := c.DeleteBook("7"); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
}

func TestSearchCatalog_EscapesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "war & peace" {
			t.Errorf("q = %q", got)
		}
		_, _ = w.Write([]byte(`[{"id":"x","title":"War and Peace","author":"Leo Tolstoy","thumbnail":"t.png"}]`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, authHeaders)
	results, err := c.SearchCatalog("war & peace")
	if err != nil {
		t.Fatalf("SearchCatalog: %v", err)
	}
	if len(results) != 1 || results[0].Author != "Leo Tolstoy" {
		t.Errorf("results = %+v", results)
	}
}

func TestTypedStatusErrors(t *testing.T) {
	cases := []struct {
		code int
		want error
	}{
		{http.StatusUnauthorized, api.ErrUnauthorized},
		{http.StatusForbidden, api.ErrForbidden},
		{http.StatusNotFound, api.ErrNotFound},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.code)
		}))
		c := api.New(srv.URL, authHeaders)
		_, err := c.ListBooks()
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: err = %v, want %v", tc.code, err, tc.want)
		}
		srv.Close()
	}
}

func TestBookPatch_Empty(t *testing.T) {
	if !(api.BookPatch{}).Empty() {
		t.Error("zero patch should be empty")
	}
	s := "Dune"
	if (api.BookPatch{Series: &s}).Empty() {
		t.Error("patch with a field should not be empty")
	}
}
