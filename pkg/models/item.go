package models

// ItemRecord is one row of the input table.
type ItemRecord struct {
	Row         int
	Name        string
	StartingBid string
	AuctionURL  string
	TemplateID  string
}

// RenderedCard describes a card image that was written to disk.
type RenderedCard struct {
	Filename   string
	ItemName   string
	TemplateID string
	ItemSize   float64
	Overflow   bool
}

type ManifestEntry struct {
	Filename   string `json:"filename"`
	ItemName   string `json:"item_name"`
	TemplateID string `json:"template"`
}

func (c RenderedCard) ManifestEntry() ManifestEntry {
	return ManifestEntry{
		Filename:   c.Filename,
		ItemName:   c.ItemName,
		TemplateID: c.TemplateID,
	}
}
