package responses

// RecordResponse is the uniform envelope for single-record payloads, form
// option payloads and error/flash messages.
type RecordResponse struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// ListResponse wraps a paginated listing.
type ListResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
	Query   string      `json:"q,omitempty"`
}

// Option is the {id, name} shape used by the cascading brand picker.
type Option struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LabelOption is the {id, label} shape returned by the target-list
// eligibility endpoint.
type LabelOption struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}
