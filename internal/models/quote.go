package models

// QuoteLine is one informational line of a quote's breakdown. Currency may
// override the parent quote's currency and is inherited from it when empty.
type QuoteLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
}

// Quote is a priced proposal from a service provider against a demand.
// TotalPrice in Currency is authoritative; the breakdown is informational.
type Quote struct {
	ID                string      `json:"id"`
	ServiceID         string      `json:"serviceId"`
	ProviderID        string      `json:"providerId"`
	ProviderName      string      `json:"providerName"`
	TotalPrice        float64     `json:"totalPrice"`
	Currency          string      `json:"currency"`
	LeadTimeDays      int         `json:"leadTimeDays"`
	Rating            float64     `json:"rating"`
	Message           string      `json:"message"`
	SuppliesBreakdown []QuoteLine `json:"suppliesBreakdown"`
}
