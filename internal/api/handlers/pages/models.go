package pages

import "github.com/fcja/agendamentos/internal/api/handlers"

// CategoryLink is one index page entry.
type CategoryLink struct {
	Slug string
	Name string
}

// IndexData feeds the index template.
type IndexData struct {
	Flash      *handlers.Flash
	Categories []CategoryLink
}

// FormData feeds the booking form template.
type FormData struct {
	Flash    *handlers.Flash
	Slug     string
	Name     string
	IsSchool bool // school and institution forms show the group fields
	IsIES    bool
	IsPesq   bool // researcher form swaps address for institution/topic
}
