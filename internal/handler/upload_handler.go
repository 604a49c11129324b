package handler

import (
	"context"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"Hive_Community/internal/middleware"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	avatarUploadTimeout   = 30 * time.Second
	resourceUploadTimeout = 60 * time.Second
)

// UploadHandler serves the legacy multipart endpoints. Their response shape is
// fixed: {url, path, message} on success and {error} on failure, regardless of
// the Result envelope the rest of the API uses.
type UploadHandler struct {
	svc *service.UploadService
}

func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Avatar handles POST /api/upload-avatar with fields file and userId.
// The form's userId must match the authenticated principal.
func (h *UploadHandler) Avatar(c *gin.Context) {
	userID, ok := formID(c, "userId")
	if !ok {
		return
	}
	if userID != middleware.UserID(c) {
		uploadError(c, http.StatusForbidden, "cannot upload another user's avatar")
		return
	}

	input, file, ok := openFormFile(c)
	if !ok {
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), avatarUploadTimeout)
	defer cancel()

	res, appErr := h.svc.UploadAvatar(ctx, userID, input)
	if appErr != nil {
		uploadError(c, appErr.Code.HTTPStatus(), appErr.Message)
		return
	}
	uploadOK(c, res, "Profile picture updated")
}

// PostFile handles POST /api/post with fields file and postId.
func (h *UploadHandler) PostFile(c *gin.Context) {
	postID, ok := formID(c, "postId")
	if !ok {
		return
	}

	input, file, ok := openFormFile(c)
	if !ok {
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), avatarUploadTimeout)
	defer cancel()

	res, appErr := h.svc.UploadPostFile(ctx, middleware.UserID(c), postID, input)
	if appErr != nil {
		uploadError(c, appErr.Code.HTTPStatus(), appErr.Message)
		return
	}
	uploadOK(c, res, "File uploaded")
}

// ClassroomCover handles POST /api/classroom/upload-cover with fields file
// and classroomId.
func (h *UploadHandler) ClassroomCover(c *gin.Context) {
	classroomID, ok := formID(c, "classroomId")
	if !ok {
		return
	}

	input, file, ok := openFormFile(c)
	if !ok {
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), resourceUploadTimeout)
	defer cancel()

	res, appErr := h.svc.UploadClassroomCover(ctx, classroomID, input)
	if appErr != nil {
		uploadError(c, appErr.Code.HTTPStatus(), appErr.Message)
		return
	}
	uploadOK(c, res, "Cover updated")
}

// ClassroomResource handles POST /api/classroom/upload-resource with fields
// file and classroomId.
func (h *UploadHandler) ClassroomResource(c *gin.Context) {
	classroomID, ok := formID(c, "classroomId")
	if !ok {
		return
	}

	input, file, ok := openFormFile(c)
	if !ok {
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), resourceUploadTimeout)
	defer cancel()

	res, appErr := h.svc.UploadClassroomResource(ctx, classroomID, input)
	if appErr != nil {
		uploadError(c, appErr.Code.HTTPStatus(), appErr.Message)
		return
	}
	uploadOK(c, res, "Resource uploaded")
}

// openFormFile pulls the "file" part out of the multipart form and wires it
// into the service input. The false return means the error response is
// already written.
func openFormFile(c *gin.Context) (*service.FileInput, multipart.File, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		uploadError(c, http.StatusBadRequest, "file is required")
		return nil, nil, false
	}
	file, err := header.Open()
	if err != nil {
		log.Printf("open multipart file err: %v", err)
		uploadError(c, http.StatusInternalServerError, "could not read uploaded file")
		return nil, nil, false
	}
	return &service.FileInput{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	}, file, true
}

func formID(c *gin.Context, field string) (uint64, bool) {
	id, err := strconv.ParseUint(c.PostForm(field), 10, 64)
	if err != nil || id == 0 {
		uploadError(c, http.StatusBadRequest, field+" is required")
		return 0, false
	}
	return id, true
}

func uploadOK(c *gin.Context, res *service.UploadResult, message string) {
	c.JSON(http.StatusOK, gin.H{
		"url":     res.URL,
		"path":    res.Path,
		"message": message,
	})
}

func uploadError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
