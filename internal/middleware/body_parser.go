package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"hospital-management-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BodyKey is the context key holding the decoded request body
const BodyKey = "body"

// DefaultBodyLimit caps request bodies at 100 KiB
const DefaultBodyLimit int64 = 100 << 10

// BodyParser decodes JSON and URL-encoded request bodies up front and stores
// the result under BodyKey. Malformed JSON or an oversized body ends the
// request with a 400 or 413 envelope.
func BodyParser(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

		switch contentType := c.ContentType(); {
		case contentType == gin.MIMEJSON || strings.HasSuffix(contentType, "+json"):
			body, err := decodeJSON(c.Request.Body)
			if err != nil {
				abortWithBodyError(c, err)
				return
			}
			c.Set(BodyKey, body)

		case contentType == gin.MIMEPOSTForm:
			if err := c.Request.ParseForm(); err != nil {
				abortWithBodyError(c, err)
				return
			}
			c.Set(BodyKey, c.Request.PostForm)
		}

		c.Next()
	}
}

// decodeJSON reads exactly one JSON value; anything but whitespace after it
// is rejected. An empty body decodes to nil.
func decodeJSON(r io.Reader) (interface{}, error) {
	dec := json.NewDecoder(r)

	var body interface{}
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
		return nil, err
	}
	return body, nil
}

func abortWithBodyError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "request entity too large")
	} else {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}
	c.Abort()
}
