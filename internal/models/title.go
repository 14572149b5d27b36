package models

// GenerateTitleRequest é o corpo do endpoint de geração de título
// @Description Conteúdo do artigo e URL usada como chave de cache
type GenerateTitleRequest struct {
	Content string `json:"content" validate:"required" example:"A very long article about fusion energy..."`
	URL     string `json:"url" validate:"required" example:"https://example.com/a"`
}

// GenerateTitleResponse é o corpo de sucesso do endpoint de geração de título
type GenerateTitleResponse struct {
	Title string `json:"title" example:"Fusion Energy Breakthrough Explained"`
}

// ErrorResponse é usado pelas respostas de erro do endpoint de título
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse é usado pelas respostas de erro do discover
type MessageResponse struct {
	Message string `json:"message"`
}
