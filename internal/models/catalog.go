package models

// Tag is a muscle-group label with a display color ("#rrggbb").
type Tag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Exercise is a catalog entry. Tags are resolved at query time from the
// junction table, never held as live references.
type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tags        []Tag  `json:"tags"`
}
