package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"socialspace/dto"
	"socialspace/internal/store"
	"socialspace/model"
)

type AuthHandler struct {
	store  store.Store
	jwtKey []byte
}

func NewAuthHandler(s store.Store, key []byte) *AuthHandler {
	return &AuthHandler{store: s, jwtKey: key}
}

// Register godoc
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.RegisterRequest  true  "Credentials and privacy flag"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "username and password required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "hash failed"})
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		IsPrivate:    req.IsPrivate,
		Type:         model.TypeUser,
	}
	if err := h.store.CreateUser(c.Context(), user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return c.Status(fiber.StatusConflict).
				JSON(dto.ErrorResponse{Message: "username already taken"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: err.Error()})
	}

	return c.Status(fiber.StatusCreated).
		JSON(dto.MessageResponse{Message: "user created"})
}

// Login godoc
// @Summary      Log in and receive a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Message: "username and password required"})
	}

	user, err := h.store.FindUserByUsername(c.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Message: "invalid credentials"})
	}

	claims := jwt.MapClaims{
		"id":  user.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(h.jwtKey)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "sign failed"})
	}

	return c.JSON(dto.LoginResponse{Token: signed})
}
