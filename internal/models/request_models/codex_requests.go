package request_models

// Required fields (title, slug, content, categoryId for articles; name, slug
// for categories) are checked in the service so a miss yields the
// field-specific message rather than a generic binding error.
type CreateArticleRequest struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	CoverImage  string   `json:"coverImage"`
	CategoryID  string   `json:"categoryId"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}
