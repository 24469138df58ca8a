package models

import "time"

// ItemResponse is the wire shape for an item. It is produced from an Item and
// never read back; the API surface stays decoupled from the gorm entity.
type ItemResponse struct {
	ID        uint      `json:"id"`
	ListID    uint      `json:"list_id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category"`
	Quantity  *float64  `json:"quantity"`
	Unit      *string   `json:"unit"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToItemResponse(item *Item) *ItemResponse {
	if item == nil {
		return nil
	}
	return &ItemResponse{
		ID:        item.ID,
		ListID:    item.ListID,
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		Done:      item.Done,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToItemResponses maps a slice of items, never returning nil so the endpoint
// serializes an empty list as [] rather than null.
func ToItemResponses(items []Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		resp := ToItemResponse(&items[i])
		if resp == nil {
			continue
		}
		out = append(out, *resp)
	}
	return out
}
