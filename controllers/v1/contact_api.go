package apiv1

import (
	"recruit-backend/controllers"
	contacthandler "recruit-backend/lib/contact"
	apimodels "recruit-backend/models/api"
	contactapimodels "recruit-backend/models/api/contact"

	"github.com/gofiber/fiber/v2"
)

type contactApiController struct {
	controllers.BaseAPIController
}

func InitContactApiRouters(app *fiber.App, backOffice fiber.Handler) {
	controller := contactApiController{}
	app.Post("create", controller.create)
	app.Get("contacts", backOffice, controller.list)
	app.Route("contact/:id", func(idRoute fiber.Router) {
		idRoute.Get("", backOffice, controller.get)
		idRoute.Delete("", backOffice, controller.delete)
	})
}

// @Summary Обращение
// @Tags Обратная связь
// @Description Сохранение обращения из формы обратной связи
// @Param	body body	 contactapimodels.ContactData	true	"request body"
// @Success 201 {object} apimodels.Response{data=contactapimodels.ContactView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/create [post]
func (c *contactApiController) create(ctx *fiber.Ctx) error {
	var payload contactapimodels.ContactData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := contacthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения обращения")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Список обращений
// @Tags Обратная связь
// @Description Список обращений
// @Param   Authorization		header		string	false	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]contactapimodels.ContactView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contacts [get]
func (c *contactApiController) list(ctx *fiber.Ctx) error {
	list, err := contacthandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка обращений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Обращение
// @Tags Обратная связь
// @Description Обращение по идентификатору
// @Param   Authorization		header		string	false	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=contactapimodels.ContactView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contact/{id} [get]
func (c *contactApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := contacthandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения обращения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Удаление обращения
// @Tags Обратная связь
// @Description Удаление обращения
// @Param   Authorization		header		string	false	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contact/{id} [delete]
func (c *contactApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = contacthandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления обращения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
