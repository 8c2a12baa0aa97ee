package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/douanani/rihladz-admin/pkg/entity"
)

// Resource issues collection calls for one entity kind mounted under
// /collection/{path}.
type Resource[T entity.Record] struct {
	client *Client
	path   string
}

// NewResource binds a client to an entity kind's collection path.
func NewResource[T entity.Record](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

// List fetches the full collection snapshot.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	endpoint := fmt.Sprintf("/collection/%s", r.path)
	if err := r.client.do(ctx, http.MethodGet, endpoint, nil, &items); err != nil {
		return nil, &FetchError{Err: err}
	}
	return items, nil
}

// Create posts form fields and returns the stored record with its
// server-assigned identifier.
func (r *Resource[T]) Create(ctx context.Context, fields map[string]string) (T, error) {
	var created T
	endpoint := fmt.Sprintf("/collection/%s", r.path)
	if err := r.client.do(ctx, http.MethodPost, endpoint, fields, &created); err != nil {
		return created, &MutationError{Op: "create", Err: err}
	}
	return created, nil
}

// Update sends form fields for an existing record.
func (r *Resource[T]) Update(ctx context.Context, id string, fields map[string]string) error {
	endpoint := fmt.Sprintf("/collection/%s/%s", r.path, id)
	if err := r.client.do(ctx, http.MethodPut, endpoint, fields, nil); err != nil {
		return &MutationError{Op: "update", Err: err}
	}
	return nil
}

// Delete removes a single record.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("/collection/%s/%s", r.path, id)
	if err := r.client.do(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return &MutationError{Op: "delete", Err: err}
	}
	return nil
}

// DeleteMany removes a set of records in one request. The call is a
// single unit; partial server-side failures surface as one error and
// nothing is applied locally.
func (r *Resource[T]) DeleteMany(ctx context.Context, ids []string) error {
	endpoint := fmt.Sprintf("/collection/%s/delete-multiple", r.path)
	body := map[string][]string{"ids": ids}
	if err := r.client.do(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return &MutationError{Op: "bulk-delete", Err: err}
	}
	return nil
}

// SetStatus changes the status field of a single record.
func (r *Resource[T]) SetStatus(ctx context.Context, id, status string) error {
	endpoint := fmt.Sprintf("/collection/%s/%s/status", r.path, id)
	body := map[string]string{"status": status}
	if err := r.client.do(ctx, http.MethodPut, endpoint, body, nil); err != nil {
		return &MutationError{Op: "status-change", Err: err}
	}
	return nil
}

// MessageResource wraps the messages collection so status changes go
// through the dedicated mark-read endpoint.
type MessageResource struct {
	*Resource[entity.Message]
}

// NewMessageResource binds a client to the messages collection.
func NewMessageResource(client *Client) *MessageResource {
	return &MessageResource{Resource: NewResource[entity.Message](client, "messages")}
}

// SetStatus routes "read" through the mark-read endpoint; any other
// target is rejected before a request is issued.
func (m *MessageResource) SetStatus(ctx context.Context, id, status string) error {
	if status != "read" {
		return &MutationError{Op: "status-change", Err: fmt.Errorf("messages only transition to read, got %q", status)}
	}
	return m.Resource.client.MarkMessageRead(ctx, id)
}
