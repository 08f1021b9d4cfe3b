package validation

import (
	"net/url"
	"strings"
)

const DefaultMaxURLLength = 2048

var blockedProtocols = []string{"javascript:", "data:", "file:", "vbscript:", "about:", "blob:"}

var allowedPrefixes = []string{"http://", "https://"}

type Options struct {
	MaxLength    int
	MaxBatchSize int
	// RequireHost additionally demands a parseable URL with a non-empty host.
	RequireHost bool
	// AllowPrivateIPs skips the literal-IP check on the host. It only applies
	// together with RequireHost.
	AllowPrivateIPs bool
}

type URLValidator struct {
	opts        Options
	ipValidator *IPValidator
}

func NewURLValidator(opts Options) *URLValidator {
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxURLLength
	}
	return &URLValidator{
		opts:        opts,
		ipValidator: NewIPValidator(),
	}
}

func (v *URLValidator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	if len(rawURL) > v.opts.MaxLength {
		return ErrURLTooLong
	}

	lower := strings.ToLower(rawURL)
	if !hasAnyPrefix(lower, allowedPrefixes) {
		if hasAnyPrefix(lower, blockedProtocols) {
			return ErrUnsafeProtocol
		}
		return ErrInvalidURLFormat
	}

	if !v.opts.RequireHost {
		return nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ErrInvalidURLFormat
	}

	if !v.opts.AllowPrivateIPs {
		if err := v.ipValidator.ValidateHost(parsed.Host); err != nil {
			return err
		}
	}

	return nil
}

func (v *URLValidator) ValidateBatch(urls []string) error {
	if len(urls) == 0 {
		return ErrEmptyBatch
	}

	if v.opts.MaxBatchSize > 0 && len(urls) > v.opts.MaxBatchSize {
		return ErrBatchTooLarge
	}

	var items []ItemError
	for i, u := range urls {
		if err := v.ValidateURL(u); err != nil {
			items = append(items, ItemError{Index: i, Err: err})
		}
	}
	if len(items) > 0 {
		return &BatchError{Items: items}
	}
	return nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
