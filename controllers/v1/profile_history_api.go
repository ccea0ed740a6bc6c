package apiv1

import (
	"recruit-backend/controllers"
	profilehistoryhandler "recruit-backend/lib/profile-history"
	apimodels "recruit-backend/models/api"
	profilehistoryapimodels "recruit-backend/models/api/profile-history"

	"github.com/gofiber/fiber/v2"
)

type profileHistoryApiController struct {
	controllers.BaseAPIController
}

func InitProfileHistoryApiRouters(app *fiber.App) {
	controller := profileHistoryApiController{}
	app.Route("profile-history", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get(":id", controller.get)
	})
}

// @Summary Сохранение данных резюме
// @Tags История профиля
// @Description Сохранение резюме и извлеченных из него данных
// @Param	body body	 profilehistoryapimodels.ProfileHistoryData	true	"request body"
// @Success 201 {object} apimodels.Response{data=profilehistoryapimodels.ProfileHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile-history [post]
func (c *profileHistoryApiController) create(ctx *fiber.Ctx) error {
	var payload profilehistoryapimodels.ProfileHistoryData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := profilehistoryhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения данных резюме")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Список
// @Tags История профиля
// @Description Список сохраненных резюме
// @Success 200 {object} apimodels.Response{data=[]profilehistoryapimodels.ProfileHistoryView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile-history [get]
func (c *profileHistoryApiController) list(ctx *fiber.Ctx) error {
	list, err := profilehistoryhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение
// @Tags История профиля
// @Description Получение сохраненного резюме
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=profilehistoryapimodels.ProfileHistoryView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile-history/{id} [get]
func (c *profileHistoryApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := profilehistoryhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}
