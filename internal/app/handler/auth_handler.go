package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"heavyprofile/internal/app/config"
	"heavyprofile/internal/app/ds"
	"heavyprofile/internal/app/dto"
	"heavyprofile/internal/app/redis"
	"heavyprofile/internal/app/repository"
	"heavyprofile/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Store       repository.CredentialStore
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(store repository.CredentialStore, redisClient *redis.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Store:       store,
		RedisClient: redisClient,
		Config:      config,
	}
}

// generateHashString генерирует SHA-1 хеш из строки
func generateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func (h *AuthHandler) errorHandler(ctx *gin.Context, statusCode int, err error) {
	ctx.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: err.Error(),
	})
}

// currentCredentials возвращает действующие логин и хеш пароля.
// Приоритет: сохранённые в сторе, затем конфиг (в т.ч. дефолтные admin/admin123).
func (h *AuthHandler) currentCredentials() (string, string) {
	login, passwordHash, err := h.Store.Credentials()
	if err != nil {
		logrus.Error("Error reading admin credentials: ", err)
	}
	if login == "" {
		login = h.Config.AdminLogin
	}
	if passwordHash == "" {
		passwordHash = generateHashString(h.Config.AdminPassword)
	}
	return login, passwordHash
}

func (h *AuthHandler) issueToken(login string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "heavyprofile",
		},
		Login: login,
		Role:  role.Admin,
	})
	return token.SignedString([]byte(h.Config.JWT.Token))
}

// LoginAdmin аутентификация администратора
// @Summary Вход в админку
// @Description Проверяет логин и пароль администратора и возвращает JWT токен
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginAdmin(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("некорректные данные"))
		return
	}

	login, passwordHash := h.currentCredentials()
	if request.Login != login || generateHashString(request.Password) != passwordHash {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("неверный логин или пароль"))
		return
	}

	accessToken, err := h.issueToken(login)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Status:    "success",
		Token:     accessToken,
		Login:     login,
		ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
		TokenType: "Bearer",
	})
}

// LogoutAdmin выход администратора из системы
// @Summary Выход из админки
// @Description Завершает сеанс, добавляя токен в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutAdmin(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}

	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	// Парсинг токена для получения TTL
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	// Токен блокируется только до собственного истечения
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if err := h.RedisClient.WriteJWTToBlacklist(context.Background(), tokenString, ttl); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "сеанс завершён",
	})
}

// CurrentUsername возвращает действующий логин администратора
// @Summary Текущий логин
// @Description Возвращает логин администратора для шапки админки
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /api/admin/current-username [get]
func (h *AuthHandler) CurrentUsername(ctx *gin.Context) {
	login, _ := h.currentCredentials()
	ctx.JSON(http.StatusOK, gin.H{"username": login})
}

// ChangePassword смена пароля администратора
// @Summary Смена пароля
// @Description Проверяет текущий пароль и сохраняет хеш нового
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Текущий и новый пароль"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(ctx *gin.Context) {
	var request dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("пароль должен быть не короче 6 символов"))
		return
	}

	login, passwordHash := h.currentCredentials()
	if generateHashString(request.CurrentPassword) != passwordHash {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("неверный текущий пароль"))
		return
	}

	if err := h.Store.UpdateCredentials(login, generateHashString(request.NewPassword)); err != nil {
		logrus.Error("Error updating admin credentials: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("ошибка сохранения пароля"))
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "пароль изменён",
	})
}

// ChangeLogin смена логина администратора
// @Summary Смена логина
// @Description Проверяет текущий пароль и сохраняет новый логин
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangeLoginRequest true "Пароль и новый логин"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/change-login [post]
func (h *AuthHandler) ChangeLogin(ctx *gin.Context) {
	var request dto.ChangeLoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("логин должен быть не короче 3 символов"))
		return
	}

	_, passwordHash := h.currentCredentials()
	if generateHashString(request.CurrentPassword) != passwordHash {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("неверный текущий пароль"))
		return
	}

	if err := h.Store.UpdateCredentials(request.NewLogin, passwordHash); err != nil {
		logrus.Error("Error updating admin credentials: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("ошибка сохранения логина"))
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "логин изменён",
	})
}
