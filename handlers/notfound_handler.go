// Package handlers provides HTTP request handlers for the redirect server.
package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

const notFoundPage = `<!DOCTYPE html>
<html>
<head><title>404 Not Found</title></head>
<body>
<h1>404 Not Found</h1>
<p>No short link matches <code>%s</code>.</p>
</body>
</html>
`

// NotFound answers any request that does not resolve to a known short link.
// The requested path is echoed in the body, HTML-escaped so a crafted path
// cannot inject markup.
func (h *RedirectHandler) NotFound(c *gin.Context) {
	body := fmt.Sprintf(notFoundPage, html.EscapeString(c.Request.URL.Path))
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(body))
	c.Abort()
}
