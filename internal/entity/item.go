package entity

type (
	// Item is a single catalog entry. ID is assigned by the registry
	// and immutable afterwards.
	Item struct {
		ID          int64   `json:"id"          validate:"required,gte=1"`
		Name        string  `json:"name"        validate:"required,max=255"`
		Description *string `json:"description" validate:"omitempty,max=1000"`
		Price       float64 `json:"price"`
		IsAvailable bool    `json:"is_available"`
	}

	// ItemDraft carries the caller-supplied fields for a create.
	// IsAvailable defaults to true when nil.
	ItemDraft struct {
		Name        string
		Description *string
		Price       float64
		IsAvailable *bool
	}

	// ItemPatch is a partial update. A nil field means "leave
	// unchanged", which is distinct from a pointer to the zero value.
	ItemPatch struct {
		Name        *string
		Description *string
		Price       *float64
		IsAvailable *bool
	}
)

func (d *ItemDraft) Available() bool {
	if d.IsAvailable == nil {
		return true
	}
	return *d.IsAvailable
}

func (p *ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.IsAvailable == nil
}

// Apply overwrites exactly the fields present in the patch. ID is
// never touched.
func (p *ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.IsAvailable != nil {
		item.IsAvailable = *p.IsAvailable
	}
}
