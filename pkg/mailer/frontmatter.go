package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterDelimiter = []byte("---")

// parseFrontmatter splits template content into YAML frontmatter metadata and
// the markdown body. Content without a leading delimiter is treated as a body
// with empty metadata.
func parseFrontmatter(content []byte) (map[string]any, string, error) {
	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return map[string]any{}, string(content), nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, frontmatterDelimiter), "\r\n")
	end := bytes.Index(rest, frontmatterDelimiter)
	if end == -1 {
		return nil, "", fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	meta := map[string]any{}
	if raw := bytes.TrimSpace(rest[:end]); len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &meta); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	body := rest[end+len(frontmatterDelimiter):]
	body = bytes.TrimLeft(body, "\r\n")
	return meta, string(body), nil
}
