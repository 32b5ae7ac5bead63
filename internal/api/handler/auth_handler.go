package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtrak/farmtrak-api/internal/api/middleware"
	"github.com/farmtrak/farmtrak-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and signs the caller in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      409   {object}  errorEnvelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Role:           req.Role,
		Location:       req.Location,
		Specialization: req.Specialization,
		ClinicName:     req.ClinicName,
		LicenseNumber:  req.LicenseNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Message:   "account created",
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      res.Account,
	})
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: res.Token, ExpiresAt: res.ExpiresAt, User: res.Account})
}

// Me returns the authenticated account.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorEnvelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{User: account})
}

// UpdateMe changes profile fields of the authenticated account.
//
// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /auth/me [put]
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	account, err := middleware.MustAccount(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.authService.UpdateProfile(c.Request().Context(), account.ID, ports.ProfileInput{
		FullName:       req.FullName,
		Phone:          req.Phone,
		Location:       req.Location,
		Specialization: req.Specialization,
		ClinicName:     req.ClinicName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{User: updated})
}

// Providers lists vets and agrovets. Anonymous callers get the public subset
// of each entry.
//
// @Summary      Vet and agrovet directory
// @Tags         vets
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  errorEnvelope
// @Router       /vets [get]
func (h *AuthHandler) Providers(c echo.Context) error {
	providers, err := h.authService.ListProviders(c.Request().Context())
	if err != nil {
		return err
	}

	_, authenticated := middleware.AccountFrom(c)
	out := make([]providerView, 0, len(providers))
	for _, p := range providers {
		v := providerView{
			ID:             p.ID,
			FullName:       p.FullName,
			Role:           p.Role,
			Specialization: p.Specialization,
			Location:       p.Location,
		}
		if authenticated {
			v.Phone = p.Phone
			v.Email = p.Email
			v.ClinicName = p.ClinicName
		}
		out = append(out, v)
	}

	return c.JSON(http.StatusOK, map[string]any{"vets": out, "count": len(out)})
}
