package services

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/outreach/internal/client/models"
)

// resourcePath joins escaped segments into "/a/b/c".
func resourcePath(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func idSeg(id models.ID) string { return string(id) }
