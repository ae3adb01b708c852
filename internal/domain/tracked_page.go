package domain

// TrackedPage é uma página monitorada do funil
type TrackedPage struct {
	ID        string `json:"id" db:"id"`
	Slug      string `json:"slug" db:"slug"`
	Label     string `json:"label" db:"label"`
	URL       string `json:"url" db:"url"`
	PagePath  string `json:"page_path" db:"page_path"`
	SortOrder int    `json:"sort_order" db:"sort_order"`
	IsActive  bool   `json:"is_active" db:"is_active"`
}

// PagePaths retorna os caminhos das páginas, na mesma ordem
func PagePaths(pages []*TrackedPage) []string {
	paths := make([]string, 0, len(pages))
	for _, page := range pages {
		paths = append(paths, page.PagePath)
	}
	return paths
}
