package service

import (
	"context"

	"github.com/MKhiriev/go-grocery-list/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientItemService is what the terminal client does with the remote list.
// Every method returns only after the server confirmed the change, so the
// caller patches its local copy with server-acknowledged records only.
type ClientItemService interface {
	// List fetches the full list. The result replaces the local copy.
	List(ctx context.Context) ([]models.GroceryItem, error)

	// Add creates item. A blank name is rejected without a network call.
	Add(ctx context.Context, item models.NewItem) (models.GroceryItem, error)

	// Update sends the supplied fields and returns the stored record.
	Update(ctx context.Context, id int64, update models.ItemUpdate) (models.GroceryItem, error)

	// Toggle flips the completion state of item.
	Toggle(ctx context.Context, item models.GroceryItem) (models.GroceryItem, error)

	Delete(ctx context.Context, id int64) error
	ClearCompleted(ctx context.Context) error

	// Import creates drafts one at a time, in order, and hands every created
	// record to onCreated as soon as it arrives. The first failure stops the
	// import; items created before it stay. It returns how many were created.
	Import(ctx context.Context, drafts []models.ItemDraft, onCreated func(models.GroceryItem)) (int, error)

	ServerVersion(ctx context.Context) (string, error)
}

// ClientAssistService fronts the assistant and refuses a second request of
// the same kind while one is still running.
type ClientAssistService interface {
	// Suggest returns ErrAssistBusy while another Suggest is outstanding.
	Suggest(ctx context.Context, name string) (models.Suggestion, bool, error)

	// Expand returns ErrAssistBusy while another Expand is outstanding.
	Expand(ctx context.Context, text string) ([]models.ItemDraft, error)
}
