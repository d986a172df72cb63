package response_models

type ArticleAuthor struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type ArticleCategory struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ArticleResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Content     string          `json:"content"`
	Excerpt     string          `json:"excerpt"`
	CoverImage  string          `json:"coverImage"`
	CategoryID  string          `json:"categoryId"`
	Tags        []string        `json:"tags"`
	IsPublished bool            `json:"isPublished"`
	CreatedAt   int64           `json:"createdAt"`
	Author      ArticleAuthor   `json:"author"`
	Category    ArticleCategory `json:"category"`
}

type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	ArticleCount int64  `json:"articleCount"`
}
