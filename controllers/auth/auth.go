package authController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"courseapi/config"
	"courseapi/middleware"
	"courseapi/models"
)

// Controller serves registration and login against the injected database handle
type Controller struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Controller {
	return &Controller{DB: db, Cfg: cfg}
}

func (ctrl *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	})
	if !ok {
		return middleware.JsonMessage(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Check if username already exists
	if err := ctrl.DB.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonMessage(c, fiber.StatusBadRequest, "Username already exists")
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ctrl.Cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	role := reqData.Role
	if role == "" {
		role = "student"
	}

	newUser := models.User{
		Username: reqData.Username,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := ctrl.DB.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		// A unique-index race lands here as well
		return middleware.JsonMessage(c, fiber.StatusBadRequest, "Username already exists")
	}

	return middleware.JsonMessage(c, fiber.StatusOK, "User created successfully")
}

func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonMessage(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Unknown username and wrong password must be indistinguishable
	var user models.User
	if err := ctrl.DB.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.JsonMessage(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonMessage(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := middleware.GenerateJWT(user.Username, ctrl.Cfg.JWTKey)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonMessage(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
		"role":  user.Role,
	})
}
