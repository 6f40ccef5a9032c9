package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/book-swap/internal/session"
)

// AuthHandler exposes the identity session over HTTP. There is no real
// credential verification behind these endpoints; the session simulates
// the round trip and hands out the demo identity.
type AuthHandler struct {
    Session *session.Session
}

func NewAuthHandler(s *session.Session) *AuthHandler {
    return &AuthHandler{Session: s}
}

// ----- DTOs -----

type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}
type registerReq struct {
    Username string `json:"username"`
    Email    string `json:"email"`
    Password string `json:"password"`
}

// Login: simulated credential check, returns the current identity.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    u, err := h.Session.Login(c.Request().Context(), req.Email, req.Password)
    if err != nil {
        if errors.Is(err, session.ErrInvalidCredentials) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
        }
        if errors.Is(err, session.ErrTimedOut) {
            return c.JSON(http.StatusGatewayTimeout, echo.Map{"error": "login timed out"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
    }
    return c.JSON(http.StatusOK, u)
}

// Register: create a fresh identity and log it in.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    u, err := h.Session.Register(c.Request().Context(), req.Username, req.Email, req.Password)
    if err != nil {
        if errors.Is(err, session.ErrValidation) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "username, email and password are required"})
        }
        if errors.Is(err, session.ErrTimedOut) {
            return c.JSON(http.StatusGatewayTimeout, echo.Map{"error": "registration timed out"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
    }
    return c.JSON(http.StatusCreated, u)
}

// Logout clears the session unconditionally.
func (h *AuthHandler) Logout(c echo.Context) error {
    h.Session.Logout(c.Request().Context())
    return c.NoContent(http.StatusNoContent)
}

// Me returns the current identity, or 401 while anonymous.
func (h *AuthHandler) Me(c echo.Context) error {
    u := h.Session.Current()
    if u == nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required"})
    }
    return c.JSON(http.StatusOK, u)
}
