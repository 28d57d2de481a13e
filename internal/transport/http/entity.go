package httpt

import "catalog/internal/entity"

type (
	ErrorResponse struct {
		Error string `json:"error"`
	}

	// createItemRequest requires name and price; description is
	// optional and is_available defaults to true when omitted.
	createItemRequest struct {
		Name        string   `json:"name"         binding:"required"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"        binding:"required"`
		IsAvailable *bool    `json:"is_available"`
	}

	// updateItemRequest distinguishes "field absent" from "field set
	// to zero": only fields present in the payload are applied.
	updateItemRequest struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		IsAvailable *bool    `json:"is_available"`
	}
)

func (r *createItemRequest) toDraft() *entity.ItemDraft {
	return &entity.ItemDraft{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		IsAvailable: r.IsAvailable,
	}
}

func (r *updateItemRequest) toPatch() *entity.ItemPatch {
	return &entity.ItemPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
	}
}
