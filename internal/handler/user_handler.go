package handler

import (
	"cinedex/internal/model/requestresponse"
	"cinedex/internal/ports"
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// RegisterUser godoc
// @Summary Регистрация пользователя
// @Description Создаёт нового пользователя по email и паролю
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 201 {object} requestresponse.RegisterResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный email или слабый пароль"
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже зарегистрирован"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /movie-svc/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, 400, "некорректный JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		sendErrorResponse(w, 400, "email и password обязательны")
		return
	}

	user, err := h.UserService.Register(ctx, req.Email, req.Password)
	if err != nil {
		log.Println(err)
		switch {
		case strings.Contains(err.Error(), "уже зарегистрирован"):
			sendErrorResponse(w, 409, "email уже зарегистрирован")
		case strings.Contains(err.Error(), "некорректный email"),
			strings.Contains(err.Error(), "пароль должен"):
			sendErrorResponse(w, 400, "некорректный email или слабый пароль")
		default:
			sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		}
		return
	}

	resp := requestresponse.RegisterResponse{}
	resp.Response.UserUUID = user.UUID
	resp.Response.Email = user.Email

	w.WriteHeader(201)
	json.NewEncoder(w).Encode(resp)
}
