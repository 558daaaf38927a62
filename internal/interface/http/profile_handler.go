package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-service/internal/application"
	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/internal/domain/repository"
	"github.com/oksasatya/auth-service/internal/interface/middleware"
	"github.com/oksasatya/auth-service/pkg/pagination"
	"github.com/oksasatya/auth-service/pkg/response"
	"github.com/oksasatya/auth-service/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,singleword"`
	LastName  string `json:"last_name" binding:"required,singleword"`
	Email     string `json:"email" binding:"required,email"`
}

type userResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	IsEmailVerified bool       `json:"is_email_verified"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Type:            string(u.Type),
		Status:          string(u.Status),
		IsEmailVerified: u.IsEmailVerified,
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// UpdateProfile handles PUT /v1/profile/:user_id. The path id must equal the
// authenticated caller's id; this is an ownership check, not a role check,
// and applies to every role.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.FromError(c, apperr.InvalidToken(""))
		return
	}
	targetID := c.Param("user_id")
	if targetID != caller.ID {
		response.FromError(c, apperr.NotAllowed("Profile can only be updated by its owner"))
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.ToErrorItems(err))
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), targetID, application.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
}

// ListInternal handles GET /v1/profile/internal: the paginated
// administrative listing, filterable by email, type, and user_id.
func (h *ProfileHandler) ListInternal(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(pagination.DefaultPageSize)))
	page, pageSize = pagination.Clamp(page, pageSize)

	filter := repository.UserFilter{
		Email:  c.Query("email"),
		UserID: c.Query("user_id"),
	}
	if t := c.Query("type"); t != "" {
		utype, ok := entity.ParseUserType(t)
		if !ok {
			response.Fail(c, http.StatusBadRequest, []response.ErrorItem{
				{Code: apperr.CodeValidationError, Msg: "unknown user type", Field: "type"},
			})
			return
		}
		filter.Type = utype
	}

	pageResult, err := h.Svc.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, pagination.Map(pageResult, toUserResponse))
}
