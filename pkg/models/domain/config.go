package domain

// Endpoint describes one upstream report backend.
type Endpoint struct {
	BaseURL string
	Token   string
}
