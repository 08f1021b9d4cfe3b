package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDomain(t *testing.T) {
	tests := map[string]string{
		"":                                 "direct",
		"https://news.example/story?id=7":  "news.example",
		"http://blog.example/post":         "blog.example",
		"http://blog.example:8080/post":    "blog.example:8080",
		"https://m.social.example/":        "m.social.example",
		"android-app://com.example.reader": "com.example.reader",
		"no-scheme-here":                   "unknown",
		"/relative/path":                   "unknown",
		"http://%zz":                       "unknown",
	}

	for referer, want := range tests {
		t.Run(referer, func(t *testing.T) {
			assert.Equal(t, want, extractDomain(referer))
		})
	}
}
