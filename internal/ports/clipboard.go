package ports

// Clipboard writes to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
