package service

// Task represents a single task item.
type Task struct {
	ID   string // opaque, assigned by the server
	Text string
	Done bool
}
