package apiv1

import (
	"recruit-backend/controllers"
	usershandler "recruit-backend/lib/users"
	apimodels "recruit-backend/models/api"
	userapimodels "recruit-backend/models/api/user"

	"github.com/gofiber/fiber/v2"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App, backOffice fiber.Handler) {
	controller := userApiController{}
	app.Post("register", controller.register)
	app.Get("getUsers", backOffice, controller.list)
	app.Get("getUserByEmail", controller.getByEmail)
}

// @Summary Регистрация
// @Tags Пользователи
// @Description Регистрация пользователя, фото передается файлом picture (multipart) или ссылкой image
// @Param	body body	 userapimodels.RegisterData	true	"request body"
// @Param   picture formData file false "фото"
// @Success 201 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/register [post]
func (c *userApiController) register(ctx *fiber.Ctx) error {
	var payload userapimodels.RegisterData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	picture, err := c.FormFile(ctx, "picture")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user, err := usershandler.Instance.Register(ctx.UserContext(), payload, picture)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации пользователя")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(user))
}

// @Summary Список пользователей
// @Tags Пользователи
// @Description Список пользователей
// @Param   Authorization		header		string	false	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/getUsers [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	list, err := usershandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пользователей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Пользователь по email
// @Tags Пользователи
// @Description Пользователь по email
// @Param   email		query		string	true	"email"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/getUserByEmail [get]
func (c *userApiController) getByEmail(ctx *fiber.Ctx) error {
	user, err := usershandler.Instance.GetByEmail(ctx.Query("email"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}
