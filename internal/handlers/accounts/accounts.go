package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/ticketbooking/internal/dto"
	"github.com/GlebRadaev/ticketbooking/pkg/utils"
	"github.com/GlebRadaev/ticketbooking/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=accounts.go -destination=mock_accounts.go -package=accounts

type Service interface {
	AddAccount(ctx context.Context, username, password string) (bool, error)
	ValidateLogin(username, password string) bool
	EditAccount(ctx context.Context, username, newPassword string) (bool, error)
	DeleteAccount(ctx context.Context, username string) (bool, error)
}

type TokenService interface {
	GenerateJWT(username string) (string, error)
}

type AccountHandler struct {
	accountService Service
	tokenService   TokenService
}

func New(accountService Service, tokenService TokenService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		tokenService:   tokenService,
	}
}

// AddAccount godoc
//
//	@Summary		Create an account
//	@Description	Create a new account with username and password
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddAccountRequestDTO	true	"Account request body"
//	@Success		201		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Account already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) AddAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.AddAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and Password cannot be empty.")
		return
	}

	created, err := h.accountService.AddAccount(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !created {
		utils.RespondWithError(w, http.StatusConflict, "Account already exists.")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.MessageResponseDTO{
		Message: "Account created successfully.",
	})
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Check credentials and return a bearer token in the Authorization header
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/login [post]
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.accountService.ValidateLogin(req.Username, req.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password.")
		return
	}
	token, err := h.tokenService.GenerateJWT(req.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: fmt.Sprintf("Welcome %s!", req.Username),
	})
}

// EditAccount godoc
//
//	@Summary		Change password
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string						true	"Account username"
//	@Param			request		body		dto.EditAccountRequestDTO	true	"New password"
//	@Success		200			{object}	dto.MessageResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{username} [put]
func (h *AccountHandler) EditAccount(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req dto.EditAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.accountService.EditAccount(r.Context(), username, *req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !updated {
		utils.RespondWithError(w, http.StatusNotFound, "Account not found.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Password updated.",
	})
}

// DeleteAccount godoc
//
//	@Summary		Delete an account
//	@Description	Orders placed under the username are kept
//	@Tags			Accounts
//	@Produce		json
//	@Param			username	path		string	true	"Account username"
//	@Success		200			{object}	dto.MessageResponseDTO
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{username} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	deleted, err := h.accountService.DeleteAccount(r.Context(), username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		utils.RespondWithError(w, http.StatusNotFound, "Account not found.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Account deleted successfully.",
	})
}
