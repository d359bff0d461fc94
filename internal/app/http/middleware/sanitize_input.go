package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	// publication content and reference text carry editor-produced HTML, so
	// those fields keep basic formatting tags
	richTextPolicy = bluemonday.UGCPolicy()
)

var richTextFields = map[string]bool{
	"content": true,
	"text":    true,
}

// SanitizeAndCleanInputMiddleware cleans every string field of a JSON body
// with bluemonday before it reaches a handler. Rich-text fields are run
// through the UGC policy, everything else through the strict one.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}

		// bodies may be an object or an array (bulk reference replace)
		var body interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		sanitized := sanitizeValue(body, false)

		newBody, _ := json.Marshal(sanitized)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

func sanitizeValue(v interface{}, richText bool) interface{} {
	switch val := v.(type) {
	case string:
		if richText {
			return richTextPolicy.Sanitize(val)
		}
		return strictPolicy.Sanitize(val)
	case map[string]interface{}:
		for k, inner := range val {
			val[k] = sanitizeValue(inner, richTextFields[k])
		}
		return val
	case []interface{}:
		for i, inner := range val {
			val[i] = sanitizeValue(inner, richText)
		}
		return val
	default:
		return v
	}
}
