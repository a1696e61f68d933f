package receipt

import "time"

// OrderItem is one purchased line item.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PaymentInfo is the payment block of a receipt.
type PaymentInfo struct {
	Method     string  `json:"method"`
	AmountPaid float64 `json:"amount_paid"`
	Tip        float64 `json:"tip"`
}

// OtherFee is a non-tax, non-tip surcharge.
type OtherFee struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Receipt is the raw shape emitted by the structured-generation service.
// Opened stays a free-form string here; normalization happens in ToModel.
type Receipt struct {
	Restaurant  string      `json:"restaurant"`
	Address     string      `json:"address"`
	Opened      string      `json:"opened"`
	OrderNumber string      `json:"order_number"`
	OrderType   string      `json:"order_type"`
	Table       string      `json:"table"`
	Server      string      `json:"server"`
	Items       []OrderItem `json:"items"`
	Subtotal    float64     `json:"subtotal"`
	SalesTax    float64     `json:"sales_tax"`
	Total       float64     `json:"total"`
	Payment     PaymentInfo `json:"payment"`
	Copy        string      `json:"copy"`
	OtherFees   []OtherFee  `json:"other_fees"`
}

// ParsedReceipt is the terminal artifact of the pipeline: the extracted
// fields plus the opened timestamp normalized to a timezone-naive local
// time, or nil when the upstream string was unparseable.
type ParsedReceipt struct {
	Receipt
	Opened *time.Time
}

// SchemaName identifies the receipt schema to the generation service.
const SchemaName = "receipt_info"

// Schema returns the JSON schema the generation service must conform to.
// Every field is required and additional properties are forbidden at
// every level, as strict structured output demands.
func Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"restaurant": map[string]any{"type": "string", "description": "Name of the restaurant"},
			"address":    map[string]any{"type": "string", "description": "Address of the restaurant"},
			"opened": map[string]any{
				"type":        "string",
				"description": "Date and time the order was opened",
			},
			"order_number": map[string]any{"type": "string", "description": "Unique order number"},
			"order_type": map[string]any{
				"type":        "string",
				"description": "Type of the order (e.g., dine-in, takeout)",
			},
			"table":  map[string]any{"type": "string", "description": "Table number or identifier"},
			"server": map[string]any{"type": "string", "description": "Name or ID of the server"},
			"items": map[string]any{
				"type":        "array",
				"description": "List of items ordered",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":     map[string]any{"type": "string", "description": "Name of the ordered item"},
						"price":    map[string]any{"type": "number", "description": "Price of the ordered item"},
						"quantity": map[string]any{"type": "integer", "description": "Quantity of the ordered item"},
					},
					"required":             []string{"name", "price", "quantity"},
					"additionalProperties": false,
				},
			},
			"subtotal":  map[string]any{"type": "number", "description": "Subtotal before tax"},
			"sales_tax": map[string]any{"type": "number", "description": "Sales tax amount"},
			"total":     map[string]any{"type": "number", "description": "Total amount of the order"},
			"payment": map[string]any{
				"type":        "object",
				"description": "Payment information",
				"properties": map[string]any{
					"method": map[string]any{
						"type":        "string",
						"description": "Payment method (e.g., cash, credit card)",
					},
					"amount_paid": map[string]any{"type": "number", "description": "Total amount paid"},
					"tip":         map[string]any{"type": "number", "description": "Tip amount given"},
				},
				"required":             []string{"method", "amount_paid", "tip"},
				"additionalProperties": false,
			},
			"copy": map[string]any{
				"type":        "string",
				"description": "Receipt copy type (e.g., customer, merchant)",
			},
			"other_fees": map[string]any{
				"type":        "array",
				"description": "List of additional fees applied to the order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":  map[string]any{"type": "string", "description": "Name of the additional fee"},
						"price": map[string]any{"type": "number", "description": "Price of the additional fee"},
					},
					"required":             []string{"name", "price"},
					"additionalProperties": false,
				},
			},
		},
		"required": []string{
			"restaurant",
			"address",
			"order_number",
			"order_type",
			"table",
			"server",
			"items",
			"subtotal",
			"sales_tax",
			"total",
			"payment",
			"copy",
			"other_fees",
			"opened",
		},
		"additionalProperties": false,
	}
}
