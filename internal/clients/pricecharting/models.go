package pricecharting

import "encoding/json"

// productsResponse is the /api/products search payload
type productsResponse struct {
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error-message"`
	Products     []product `json:"products"`
}

// product is one search row. IDs arrive as either strings or numbers
// depending on the endpoint; UnmarshalJSON normalizes them.
type product struct {
	ID          string `json:"id"`
	ProductName string `json:"product-name"`
	ConsoleName string `json:"console-name"`
	LoosePrice  int64  `json:"loose-price"`
}

// productResponse is the /api/product detail payload
type productResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error-message"`
	ID           string `json:"id"`
	ProductName  string `json:"product-name"`
	ConsoleName  string `json:"console-name"`
	LoosePrice   int64  `json:"loose-price"`
}

// UnmarshalJSON tolerates numeric IDs in search rows
func (p *product) UnmarshalJSON(data []byte) error {
	type alias struct {
		ID          json.Number `json:"id"`
		ProductName string      `json:"product-name"`
		ConsoleName string      `json:"console-name"`
		LoosePrice  int64       `json:"loose-price"`
	}

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	p.ID = a.ID.String()
	p.ProductName = a.ProductName
	p.ConsoleName = a.ConsoleName
	p.LoosePrice = a.LoosePrice
	return nil
}
