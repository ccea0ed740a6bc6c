package apiv1

import (
	"recruit-backend/controllers"
	applicationhandler "recruit-backend/lib/application"
	jobposthandler "recruit-backend/lib/jobpost"
	apimodels "recruit-backend/models/api"
	jobpostapimodels "recruit-backend/models/api/jobpost"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type jobPostApiController struct {
	controllers.BaseAPIController
}

func InitJobPostApiRouters(app *fiber.App) {
	controller := jobPostApiController{}
	app.Route("jobposts", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("candidates", controller.candidates)
			idRoute.Get("candidates/export", controller.exportCandidates)
		})
	})
}

// @Summary Создание
// @Tags Вакансия
// @Description Создание вакансии
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	body body	 jobpostapimodels.JobPostData	true	"request body"
// @Success 201 {object} apimodels.Response{data=jobpostapimodels.JobPostView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/app/jobposts [post]
func (c *jobPostApiController) create(ctx *fiber.Ctx) error {
	var payload jobpostapimodels.JobPostData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := jobposthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Список
// @Tags Вакансия
// @Description Список вакансий по фильтру
// @Param   Authorization		header		string	false	"Authorization token"
// @Param	body body	 jobpostapimodels.JobPostFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]jobpostapimodels.JobPostView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/app/jobposts/list [post]
func (c *jobPostApiController) list(ctx *fiber.Ctx) error {
	var payload jobpostapimodels.JobPostFilter
	if len(ctx.Body()) != 0 {
		if err := c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	list, err := jobposthandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение
// @Tags Вакансия
// @Description Получение вакансии
// @Param   Authorization		header		string	false	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=jobpostapimodels.JobPostView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/app/jobposts/{id} [get]
func (c *jobPostApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := jobposthandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Кандидаты
// @Tags Вакансия
// @Description Отклики на вакансию с данными кандидатов
// @Param   Authorization		header		string	false	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/app/jobposts/{id}/candidates [get]
func (c *jobPostApiController) candidates(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.ListByJobPost(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения кандидатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка кандидатов
// @Tags Вакансия
// @Description Выгрузка кандидатов вакансии в xlsx
// @Param   Authorization		header		string	false	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/app/jobposts/{id}/candidates/export [get]
func (c *jobPostApiController) exportCandidates(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := applicationhandler.Instance.ExportCandidates(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки кандидатов")
	}
	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Attachment("candidates.xlsx")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
