package apiv1

import (
	"recruit-backend/controllers"
	feedbackhandler "recruit-backend/lib/feedback"
	apimodels "recruit-backend/models/api"
	feedbackapimodels "recruit-backend/models/api/feedback"

	"github.com/gofiber/fiber/v2"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app *fiber.App) {
	controller := feedbackApiController{}
	app.Route("feedback", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get(":id", controller.get)
	})
}

// @Summary Отзыв
// @Tags Отзыв
// @Description Отзыв интервьюера по собеседованию
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	body body	 feedbackapimodels.FeedbackData	true	"request body"
// @Success 201 {object} apimodels.Response{data=feedbackapimodels.FeedbackView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/app/feedback [post]
func (c *feedbackApiController) create(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.FeedbackData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := feedbackhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения отзыва")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Получение
// @Tags Отзыв
// @Description Получение отзыва
// @Param   Authorization		header		string	false	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.FeedbackView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/app/feedback/{id} [get]
func (c *feedbackApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := feedbackhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения отзыва")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}
