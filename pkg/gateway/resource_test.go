package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douanani/rihladz-admin/pkg/entity"
)

func TestListDecodesCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/collection/agencies", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode([]entity.Agency{
			{ID: "ag-1", Name: "Sahara Trails", Wilaya: "Tamanrasset"},
			{ID: "ag-2", Name: "Casbah Tours", Wilaya: "Alger"},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Token: "secret"})
	res := NewResource[entity.Agency](client, "agencies")

	items, err := res.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Sahara Trails", items[0].Name)
	assert.Equal(t, "ag-2", items[1].ID)
}

func TestListWrapsFailureAsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "upstream database unavailable"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	res := NewResource[entity.Agency](client, "agencies")

	_, err := res.List(context.Background())
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr), "expected a FetchError, got %T", err)
	assert.Contains(t, err.Error(), "upstream database unavailable")
	assert.Contains(t, err.Error(), "502")
}

func TestCreateReturnsServerCopy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/collection/categories", r.URL.Path)

		var fields map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, "Desert Treks", fields["name"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(entity.Category{ID: "cat-9", Name: fields["name"]})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	res := NewResource[entity.Category](client, "categories")

	created, err := res.Create(context.Background(), map[string]string{"name": "Desert Treks"})
	require.NoError(t, err)
	assert.Equal(t, "cat-9", created.ID)
}

func TestDeleteManySendsIDsBody(t *testing.T) {
	var gotPath string
	var gotBody map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	res := NewResource[entity.Tourist](client, "tourists")

	err := res.DeleteMany(context.Background(), []string{"t-1", "t-2"})
	require.NoError(t, err)
	assert.Equal(t, "/collection/tourists/delete-multiple", gotPath)
	assert.Equal(t, []string{"t-1", "t-2"}, gotBody["ids"])
}

func TestDeleteManyFailureIsMutationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "record t-2 is referenced"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	res := NewResource[entity.Tourist](client, "tourists")

	err := res.DeleteMany(context.Background(), []string{"t-1", "t-2"})
	require.Error(t, err)

	var mutErr *MutationError
	require.True(t, errors.As(err, &mutErr))
	assert.Equal(t, "bulk-delete", mutErr.Op)
	assert.Contains(t, err.Error(), "record t-2 is referenced")
}

func TestSetStatusSendsStatusBody(t *testing.T) {
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/collection/reports/r-1/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	res := NewResource[entity.Report](client, "reports")

	require.NoError(t, res.SetStatus(context.Background(), "r-1", "reviewed"))
	assert.Equal(t, "reviewed", gotBody["status"])
}

func TestMessageResourceUsesMarkReadEndpoint(t *testing.T) {
	var gotPath, gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	res := NewMessageResource(client)

	require.NoError(t, res.SetStatus(context.Background(), "m-7", "read"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/messages/m-7/mark-read", gotPath)
}

func TestMessageResourceRejectsOtherStatuses(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	res := NewMessageResource(client)

	err := res.SetStatus(context.Background(), "m-7", "unread")
	require.Error(t, err)
	assert.False(t, called, "expected no request for an invalid target")

	var mutErr *MutationError
	require.True(t, errors.As(err, &mutErr))
}

func TestErrorWithoutMessagePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	res := NewResource[entity.Agency](client, "agencies")

	err := res.Delete(context.Background(), "ag-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
