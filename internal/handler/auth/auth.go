// File: internal/handler/auth/auth.go
package auth

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"daily-pulse/internal/database"
	"daily-pulse/internal/dto"
	"daily-pulse/internal/model"
	"daily-pulse/internal/repository"
	"daily-pulse/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// MinPasswordLength 註冊密碼最短長度
const MinPasswordLength = 6

// AuthHandler 依 body 的 action 分派 register / login / verify
// @Summary     使用者認證
// @Description 依 action 欄位分派：register 註冊、login 登入、verify 驗證令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.AuthRequest true "認證請求"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth [post]
func AuthHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.AuthRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		switch req.Action {
		case "register":
			return register(c, db, tokens, req)
		case "login":
			return login(c, db, tokens, req)
		case "verify":
			return verify(c, tokens, req)
		default:
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "unknown action"})
		}
	}
}

// register 建立新帳號並簽發令牌
// email 去除前後空白並轉小寫，密碼原樣保留
func register(c echo.Context, db database.DB, tokens *service.TokenService, req dto.AuthRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "email and password are required"})
	}
	// 以字元數計算，非位元組數
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "password must be at least 6 characters"})
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
	}

	// 不做先查後插，重複 email 由唯一約束攔下
	user, err := repository.CreateUser(c.Request().Context(), db, &model.User{
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "user with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
	}

	token, err := tokens.Issue(*user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.UserInfo{ID: user.ID, Email: user.Email},
	})
}

// login 驗證帳密並簽發令牌
// 帳號不存在與密碼錯誤回覆相同訊息，避免探測已註冊的 email
func login(c echo.Context, db database.DB, tokens *service.TokenService, req dto.AuthRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "email and password are required"})
	}

	user, err := repository.GetUserByEmail(c.Request().Context(), db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
	}

	if err := service.ComparePassword(user.PasswordHash, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid email or password"})
	}

	token, err := tokens.Issue(*user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal server error"})
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.UserInfo{ID: user.ID, Email: user.Email},
	})
}

// verify 驗證令牌並回傳其內嵌的使用者
// 不查資料庫，以 claims 為準；簽章錯誤與逾期同樣回 401
func verify(c echo.Context, tokens *service.TokenService, req dto.AuthRequest) error {
	claims, err := tokens.Verify(req.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid token"})
	}

	return c.JSON(http.StatusOK, dto.VerifyResponse{
		Valid: true,
		User:  dto.UserInfo{ID: claims.UserID, Email: claims.Email},
	})
}
