package controllers

import (
	"errors"
	"time"

	"calllog-backend/database"
	"calllog-backend/middlewares"
	"calllog-backend/models"
	"calllog-backend/storage"
	"calllog-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func Register(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}

	username := utils.Clean(data["username"])
	if username == "" || data["password"] == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "username and password are required",
		})
	}
	if data["password"] != data["password_confirm"] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "passwords do not match",
		})
	}

	if _, err := repo.GetUserByUsername(username); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "username already exists",
		})
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	user := models.User{Username: username}
	user.SetPassword(data["password"])
	id, err := repo.CreateUser(&user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "registration successful",
		"user": fiber.Map{
			"id":       id,
			"username": user.Username,
		},
	})
}

func Login(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}

	user, err := repo.GetUserByUsername(utils.Clean(data["username"]))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "invalid username or password",
			})
		}
		return err
	}

	if err := user.ComparePassword(data["password"]); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid username or password",
		})
	}

	token, err := middlewares.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	cookie := fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	}
	c.Cookie(&cookie)
	return c.JSON(fiber.Map{
		"message": "success",
	})
}

// ResetPassword sets a new password for an existing username. It is reachable
// from the login screen, hence unauthenticated.
func ResetPassword(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}

	if data["new_password"] == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "new password is required",
		})
	}

	user, err := repo.GetUserByUsername(utils.Clean(data["username"]))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "username not found",
			})
		}
		return err
	}

	var scratch models.User
	scratch.SetPassword(data["new_password"])
	if err := repo.UpdateUserPassword(user.ID, scratch.Password); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "password reset successful",
	})
}

func GetUsers(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	users, err := repo.ListUsers()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"users":   users,
		"message": "success",
	})
}

func DeleteUser(c *fiber.Ctx) error {
	repo, err := database.ActiveRepo()
	if err != nil {
		return err
	}
	if err := repo.DeleteUser(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "user deleted",
	})
}
