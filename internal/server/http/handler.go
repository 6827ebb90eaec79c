package http

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type userService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

type todoService interface {
	List(ctx context.Context, callerID string) ([]*models.Todo, error)
	Get(ctx context.Context, callerID, id string) (*models.Todo, error)
	Create(ctx context.Context, callerID string, fields models.TodoFields) (*models.Todo, error)
	Update(ctx context.Context, callerID, id string, patch models.TodoPatch) error
	Delete(ctx context.Context, callerID, id string) error
}

type attachmentService interface {
	Replace(ctx context.Context, userID string, data []byte, filename string) (string, error)
	FetchForUser(ctx context.Context, userID string) (*models.Attachment, error)
	PresignedURL(ctx context.Context, userID string) (string, error)
}

// Handler serves the REST API.
type Handler struct {
	users          userService
	todos          todoService
	attachments    attachmentService
	maxUploadBytes int64
}

func NewHandler(us userService, ts todoService, as attachmentService, maxUploadBytes int64) *Handler {
	return &Handler{users: us, todos: ts, attachments: as, maxUploadBytes: maxUploadBytes}
}

type userView struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	AttachmentRef string `json:"attachment_ref,omitempty"`
}

func viewOf(u *models.User) userView {
	return userView{ID: u.ID, Email: u.Email, Name: u.Name, AttachmentRef: u.AttachmentRef}
}

func success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"message": "success", "data": data})
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid payload", common.ErrValidation))
		return
	}

	u, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	success(c, http.StatusCreated, viewOf(u))
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid payload", common.ErrValidation))
		return
	}

	sess, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "success",
		"access_token": sess.Token,
		"token_type":   "Bearer",
		"expires_at":   sess.ExpiresAt.UTC(),
		"user_details": viewOf(sess.User),
	})
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.users.Profile(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, viewOf(u))
}

func (h *Handler) ListTodos(c *gin.Context) {
	list, err := h.todos.List(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, list)
}

func (h *Handler) GetTodo(c *gin.Context) {
	t, err := h.todos.Get(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, t)
}

func (h *Handler) CreateTodo(c *gin.Context) {
	var fields models.TodoFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, fmt.Errorf("%w: invalid payload", common.ErrValidation))
		return
	}

	t, err := h.todos.Create(c.Request.Context(), callerID(c), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusCreated, t)
}

func (h *Handler) UpdateTodo(c *gin.Context) {
	patch, err := models.DecodeTodoPatch(c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.todos.Update(c.Request.Context(), callerID(c), id, patch); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("todo %s updated", id)})
}

func (h *Handler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")
	if err := h.todos.Delete(c.Request.Context(), callerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("todo %s deleted", id)})
}

// UploadPhoto accepts either a multipart form with a "file" part or a JSON
// body {"profile_picture": "<base64>", "filename": "..."}.
func (h *Handler) UploadPhoto(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, common.HTTPUploadBodyLimit(h.maxUploadBytes))

	data, filename, err := h.readPhoto(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too_large", "error_description": "upload too large"})
			return
		}
		respondError(c, err)
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too_large", "error_description": "upload too large"})
		return
	}

	ref, err := h.attachments.Replace(c.Request.Context(), callerID(c), data, filename)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"attachment_ref": ref})
}

func (h *Handler) readPhoto(c *gin.Context) ([]byte, string, error) {
	if isJSON(c) {
		var req struct {
			ProfilePicture string `json:"profile_picture"`
			Filename       string `json:"filename"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, "", wrapBodyError(err)
		}
		data, err := base64.StdEncoding.DecodeString(req.ProfilePicture)
		if err != nil {
			return nil, "", fmt.Errorf("%w: profile_picture is not base64", common.ErrValidation)
		}
		return data, req.Filename, nil
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", wrapBodyError(err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}

func wrapBodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrValidation, err)
}

func (h *Handler) DownloadPhoto(c *gin.Context) {
	a, err := h.attachments.FetchForUser(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := a.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": a.Label}))
	c.Data(http.StatusOK, contentType, a.Data)
}

func (h *Handler) PhotoURL(c *gin.Context) {
	url, err := h.attachments.PresignedURL(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"url": url})
}

// isJSON reports whether the request declares a JSON body.
func isJSON(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), gin.MIMEJSON)
}
