package index

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-discover/internal/models"
	"github.com/prefeitura-rio/app-discover/internal/utils"
)

// DocumentID gera um id estável a partir da URL
func DocumentID(rawURL string) string {
	hash := sha256.Sum256([]byte(strings.TrimSpace(rawURL)))
	return hex.EncodeToString(hash[:16])
}

// FromResult converte um resultado do agregador em documento da collection.
// Falha com utils.ErrNoHostname quando a URL não tem host.
func FromResult(r models.SearchResult, language string, now time.Time) (map[string]interface{}, error) {
	host, err := utils.Hostname(r.URL)
	if err != nil {
		return nil, err
	}

	path := "/"
	if parsed, err := url.Parse(strings.TrimSpace(r.URL)); err == nil && parsed.Path != "" {
		path = parsed.Path
	}

	doc := map[string]interface{}{
		FieldID:        DocumentID(r.URL),
		FieldURL:       strings.TrimSpace(r.URL),
		FieldHostname:  host,
		FieldPath:      path,
		FieldLanguage:  language,
		FieldIndexedAt: now.Unix(),
	}

	setIfNotEmpty(doc, FieldTitle, r.Title)
	setIfNotEmpty(doc, FieldContent, r.Content)
	setIfNotEmpty(doc, FieldAuthor, r.Author)
	setIfNotEmpty(doc, FieldPublished, r.PublishedDate)

	thumbnail := r.Thumbnail
	if thumbnail == "" {
		thumbnail = r.ImgSrc
	}
	setIfNotEmpty(doc, FieldThumbnail, thumbnail)

	return doc, nil
}

func setIfNotEmpty(doc map[string]interface{}, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		doc[key] = v
	}
}

func stringField(doc map[string]interface{}, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}
