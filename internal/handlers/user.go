package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/usersvc/internal/metrics"
	"github.com/example/usersvc/internal/middleware"
	"github.com/example/usersvc/internal/models"
	"github.com/example/usersvc/internal/services"
)

// UserHandler serves the sign-up and login endpoints.
type UserHandler struct {
	users   *services.UserService
	metrics *metrics.Metrics
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *services.UserService, m *metrics.Metrics) *UserHandler {
	return &UserHandler{users: users, metrics: m}
}

type phoneRequest struct {
	Number         int64  `json:"number"`
	CityCode       *int   `json:"citycode"`
	CityCodeAlt    *int   `json:"cityCode"`
	CountryCode    string `json:"contrycode"`
	CountryCodeAlt string `json:"countryCode"`
}

type signUpRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Phones   []phoneRequest `json:"phones"`
}

type phoneResponse struct {
	Number      int64  `json:"number"`
	CityCode    int    `json:"citycode"`
	CountryCode string `json:"contrycode"`
}

type userResponse struct {
	ID        string          `json:"id"`
	Created   time.Time       `json:"created"`
	LastLogin time.Time       `json:"lastLogin"`
	Token     string          `json:"token"`
	IsActive  bool            `json:"isActive"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Phones    []phoneResponse `json:"phones"`
}

// SignUp registers a new user.
func (h *UserHandler) SignUp(c *fiber.Ctx) error {
	var req signUpRequest
	if err := c.BodyParser(&req); err != nil {
		h.metrics.ObserveSignUp(metrics.ResultValidationFailed)
		return fiber.NewError(fiber.StatusBadRequest, MsgInvalidBody)
	}

	user, err := h.users.SignUp(c.UserContext(), services.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phones:   toPhones(req.Phones),
	})
	h.metrics.ObserveSignUp(resultOf(err))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
}

// Login re-authenticates the bearer of a session token and rotates it.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	token, ok := middleware.GetBearerToken(c)
	if !ok {
		h.metrics.ObserveLogin(metrics.ResultInvalidToken)
		return services.ErrInvalidToken
	}

	user, err := h.users.Login(c.UserContext(), token)
	h.metrics.ObserveLogin(resultOf(err))
	if err != nil {
		return err
	}

	return c.JSON(toUserResponse(user))
}

func toPhones(in []phoneRequest) []models.Phone {
	if len(in) == 0 {
		return nil
	}

	phones := make([]models.Phone, 0, len(in))
	for _, p := range in {
		phone := models.Phone{
			Number:      p.Number,
			CountryCode: p.CountryCode,
		}
		switch {
		case p.CityCode != nil:
			phone.CityCode = *p.CityCode
		case p.CityCodeAlt != nil:
			phone.CityCode = *p.CityCodeAlt
		}
		if phone.CountryCode == "" {
			phone.CountryCode = p.CountryCodeAlt
		}
		phones = append(phones, phone)
	}
	return phones
}

// toUserResponse renders the stored user. The password field carries the
// stored hash, never the submitted password.
func toUserResponse(user *models.User) userResponse {
	resp := userResponse{
		ID:        user.ID.String(),
		Created:   user.CreatedAt,
		LastLogin: user.LastLoginAt,
		Token:     user.Token,
		IsActive:  user.IsActive,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
	}

	if user.Phones != nil {
		resp.Phones = make([]phoneResponse, 0, len(user.Phones))
		for _, p := range user.Phones {
			resp.Phones = append(resp.Phones, phoneResponse{
				Number:      p.Number,
				CityCode:    p.CityCode,
				CountryCode: p.CountryCode,
			})
		}
	}

	return resp
}
