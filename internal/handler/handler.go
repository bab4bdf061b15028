package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"Association_Portal/internal/middleware"
	"Association_Portal/internal/pkg"
	"Association_Portal/internal/service"
	"Association_Portal/internal/upload"
)

// responder renders service results and errors as JSON.
type responder struct {
	log         *slog.Logger
	development bool
}

func newResponder(log *slog.Logger, development bool) responder {
	return responder{log: log, development: development}
}

// fail maps err to a status code and a {"message": ...} body. Unexpected
// errors become a generic 500; the detail is only exposed in development.
func (r responder) fail(c *gin.Context, err error) {
	var (
		notFound *service.NotFoundError
		invalid  *service.ValidationError
		rule     *service.RuleError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": invalid.Message})
	case errors.As(err, &rule):
		c.JSON(http.StatusBadRequest, gin.H{"message": rule.Message})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
	default:
		_ = c.Error(err)
		r.log.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
		body := gin.H{"message": "Server error"}
		if r.development {
			body["error"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

func (r responder) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

// bind decodes a JSON or form body into dst.
func (r responder) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		r.badRequest(c, "Invalid request body")
		return false
	}
	return true
}

func (r responder) id(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		r.badRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

func principal(c *gin.Context) pkg.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}

func pageRequest(c *gin.Context) service.PageRequest {
	return service.NewPageRequest(c.Query("page"), c.Query("limit"))
}

// latestLimit reads the optional limit of the "latest" listings.
func latestLimit(c *gin.Context, def int) int {
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		return min(n, service.MaxLimit)
	}
	return def
}

func flag(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}

func uintQuery(c *gin.Context, name string) uint64 {
	v, _ := strconv.ParseUint(c.Query(name), 10, 64)
	return v
}

func deleted(c *gin.Context, kind string) {
	c.JSON(http.StatusOK, gin.H{"message": kind + " deleted successfully"})
}

// uploader saves multipart files through the upload store and remembers
// them on the request so a failed request can take them back.
type uploader struct {
	store upload.Store
	log   *slog.Logger
}

func newUploader(store upload.Store, log *slog.Logger) uploader {
	return uploader{store: store, log: log}
}

const ctxUploadsKey = "uploads"

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	if !isMultipart(c) {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// single stores the one file sent under field. It returns empty values when
// no file was sent and rejects more than one.
func (u uploader) single(c *gin.Context, field, folder string) (url, name string, err error) {
	files := formFiles(c, field)
	switch len(files) {
	case 0:
		return "", "", nil
	case 1:
	default:
		return "", "", &service.ValidationError{Message: "Only one file is allowed for " + field}
	}
	return u.save(c, folder, files[0])
}

// many stores every file sent under field.
func (u uploader) many(c *gin.Context, field, folder string) ([]string, error) {
	files := formFiles(c, field)
	if len(files) == 0 {
		return nil, nil
	}
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, _, err := u.save(c, folder, fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (u uploader) save(c *gin.Context, folder string, fh *multipart.FileHeader) (string, string, error) {
	if u.store == nil {
		return "", "", errors.New("file uploads are not configured")
	}
	url, name, err := u.store.Save(c.Request.Context(), folder, fh)
	if err != nil {
		return "", "", err
	}
	c.Set(ctxUploadsKey, append(c.GetStringSlice(ctxUploadsKey), url))
	return url, name, nil
}

// discard removes every file stored while handling this request.
func (u uploader) discard(c *gin.Context) {
	for _, url := range c.GetStringSlice(ctxUploadsKey) {
		if err := u.store.Remove(context.WithoutCancel(c.Request.Context()), url); err != nil {
			u.log.WarnContext(c.Request.Context(), "remove orphaned upload", "url", url, "err", err)
		}
	}
	c.Set(ctxUploadsKey, []string(nil))
}

// failUpload reports err after taking back the files the request stored.
func (r responder) failUpload(c *gin.Context, files uploader, err error) {
	files.discard(c)
	r.fail(c, err)
}
