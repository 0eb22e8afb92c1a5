package handlers

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"socialspace/dto"
	mid "socialspace/internal/middleware"
	"socialspace/internal/service"
	"socialspace/internal/store"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data")
}

// readMedia pulls the uploaded "file" part, if any.
func readMedia(c *fiber.Ctx) (*service.MediaUpload, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &service.MediaUpload{Name: fh.Filename, Data: data}, nil
}

func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Message: "post not found"})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Message: "access to post denied"})
	case errors.Is(err, service.ErrMediaUpload):
		return c.Status(fiber.StatusBadGateway).
			JSON(dto.ErrorResponse{Message: "media upload failed"})
	case errors.Is(err, store.ErrConflict):
		return c.Status(fiber.StatusConflict).
			JSON(dto.ErrorResponse{Message: "post already exists"})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: err.Error()})
	}
}

// Create godoc
// @Summary      Create a post
// @Description  JSON body with content/mediaUrl, or multipart with a "file" part
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreatePostRequest  true  "Post payload"
// @Success      201   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	callerID, err := mid.UIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreatePostRequest
	var media *service.MediaUpload
	if isMultipart(c) {
		req.Content = c.FormValue("content")
		if media, err = readMedia(c); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "unreadable file"})
		}
	} else if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	if req.Content == "" && req.MediaURL == "" && media == nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "content or media required"})
	}

	post, err := h.svc.Create(c.Context(), callerID, req.Content, req.MediaURL, media)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).
		JSON(dto.PostResponse{Message: "post created", Post: post})
}

// List godoc
// @Summary      List posts visible to the caller
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Post
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	callerID, err := mid.UIDFromLocals(c)
	if err != nil {
		return err
	}
	posts, err := h.svc.ListVisible(c.Context(), callerID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(posts)
}

// ListMine godoc
// @Summary      List the caller's own posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Post
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /posts/me [get]
func (h *PostHandler) ListMine(c *fiber.Ctx) error {
	callerID, err := mid.UIDFromLocals(c)
	if err != nil {
		return err
	}
	posts, err := h.svc.ListMine(c.Context(), callerID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(posts)
}

// Get godoc
// @Summary      Fetch one post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  model.Post
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	callerID, err := mid.UIDFromLocals(c)
	if err != nil {
		return err
	}
	post, err := h.svc.Get(c.Context(), callerID, c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(post)
}

// Update godoc
// @Summary      Update a post
// @Description  Owner only. Absent fields are preserved; a multipart
// @Description  "file" part replaces the media URL once its upload succeeds.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Post id"
// @Param        data  body      dto.UpdatePostRequest  true  "Fields to change"
// @Success      200   {object}  dto.PostResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /posts/{id} [patch]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	callerID, err := mid.UIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePostRequest
	var media *service.MediaUpload
	if isMultipart(c) {
		if v := c.FormValue("content"); v != "" {
			req.Content = &v
		}
		if media, err = readMedia(c); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "unreadable file"})
		}
	} else if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	post, err := h.svc.Update(c.Context(), callerID, c.Params("id"), req.Content, req.MediaURL, media)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(dto.PostResponse{Message: "post updated", Post: post})
}

// Delete godoc
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	callerID, err := mid.UIDFromLocals(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Context(), callerID, c.Params("id")); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "post deleted"})
}
