package models

import "strings"

// SearchResult representa um item retornado pelo agregador de busca
// @Description Resultado de busca (artigo, post ou discussão)
type SearchResult struct {
	URL           string `json:"url" example:"https://lwn.net/Articles/1001/"`
	Title         string `json:"title" example:"A look at the new scheduler"`
	Content       string `json:"content,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	ImgSrc        string `json:"img_src,omitempty"`
	Author        string `json:"author,omitempty"`
	Engine        string `json:"engine,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
}

// HasURL indica se o resultado tem uma URL utilizável
func (r SearchResult) HasURL() bool {
	return strings.TrimSpace(r.URL) != ""
}

// DiscoverResponse é o corpo de sucesso do endpoint de discover
type DiscoverResponse struct {
	Blogs []SearchResult `json:"blogs"`
}
