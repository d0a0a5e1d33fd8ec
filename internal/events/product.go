// Package events defines the change notifications emitted for products.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ProductsCreatedSubject = "products.created"
	ProductsUpdatedSubject = "products.updated"
	ProductsDeletedSubject = "products.deleted"

	// ProductsSubjects matches every product subject, used as the stream filter.
	ProductsSubjects = "products.>"
)

// ProductSnapshot is the state of a product at the time of the change.
type ProductSnapshot struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int32   `json:"quantity"`
}

// ProductChangedEvent is published after a product was created, updated or deleted.
// Product is nil for deletions.
type ProductChangedEvent struct {
	EventID    string            `json:"event_id"`
	Carrier    map[string]string `json:"carrier,omitempty"`
	ProductID  int64             `json:"product_id"`
	Product    *ProductSnapshot  `json:"product,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`

	subject string
}

func newEvent(subject string, productID int64, product *ProductSnapshot, carrier map[string]string) ProductChangedEvent {
	return ProductChangedEvent{
		EventID:    uuid.NewString(),
		Carrier:    carrier,
		ProductID:  productID,
		Product:    product,
		OccurredAt: time.Now().UTC(),
		subject:    subject,
	}
}

func NewProductCreated(product ProductSnapshot, carrier map[string]string) ProductChangedEvent {
	return newEvent(ProductsCreatedSubject, product.ID, &product, carrier)
}

func NewProductUpdated(product ProductSnapshot, carrier map[string]string) ProductChangedEvent {
	return newEvent(ProductsUpdatedSubject, product.ID, &product, carrier)
}

func NewProductDeleted(id int64, carrier map[string]string) ProductChangedEvent {
	return newEvent(ProductsDeletedSubject, id, nil, carrier)
}

func (e ProductChangedEvent) Subject() string {
	return e.subject
}

func (e ProductChangedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

// ID is used by the broker for de-duplication.
func (e ProductChangedEvent) ID() string {
	return e.EventID
}
