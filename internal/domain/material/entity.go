package material

// Usage is one material consumption row.
type Usage struct {
	Date       string  `json:"date"` // YYYY-MM-DD HH:MM:SS
	WorkerName string  `json:"worker_name"`
	Room       string  `json:"room"`
	Color      string  `json:"color"`
	Quantity   float64 `json:"quantity"`
}

// Order is one material order request row. RowNumber is the 1-based sheet
// position, header included; it addresses the completion cell.
type Order struct {
	RowNumber   int    `json:"row_number"`
	Date        string `json:"date"`
	WorkerName  string `json:"worker_name"`
	OrderText   string `json:"order_text"`
	CompletedAt string `json:"completed_at,omitempty"` // empty while pending
}
