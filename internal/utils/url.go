package utils

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNoHostname indica uma URL sem host (relativa, vazia ou malformada)
var ErrNoHostname = errors.New("url sem hostname")

// Hostname extrai o host de uma URL absoluta, em minúsculas e sem porta.
// "https://www.bbc.com:443/news" -> "www.bbc.com"
func Hostname(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrNoHostname
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	host := strings.ToLower(parsedURL.Hostname())
	if host == "" {
		return "", ErrNoHostname
	}
	return host, nil
}
