package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"telecom-complaint-be/internal/constant"
	"telecom-complaint-be/internal/dto"
	"telecom-complaint-be/internal/pkg/serverutils"
	"telecom-complaint-be/internal/service"
)

type IComplaintController interface {
	RegisterRoutes(r fiber.Router)
	GetMenu(ctx *fiber.Ctx) error
	GetSubprocesses(ctx *fiber.Ctx) error
	Resolve(ctx *fiber.Ctx) error
	DetectLanguage(ctx *fiber.Ctx) error
}

type complaintController struct {
	service  service.IComplaintService
	validate *validator.Validate
}

func NewComplaintController(service service.IComplaintService) IComplaintController {
	return &complaintController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *complaintController) RegisterRoutes(r fiber.Router) {
	r.Get("/menu", c.GetMenu)
	r.Post("/subprocesses", c.GetSubprocesses)
	r.Post("/resolve", c.Resolve)
	r.Post("/detect-language", c.DetectLanguage)
}

func (c *complaintController) GetMenu(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.GetMenu(ctx.Context()))
}

func (c *complaintController) GetSubprocesses(ctx *fiber.Ctx) error {
	var request dto.SubprocessesRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := c.validate.Struct(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.GetSubprocesses(ctx.Context(), &request)
	if err != nil {
		if errors.Is(err, service.ErrUnknownSector) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, constant.InvalidSectorMessage))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *complaintController) Resolve(ctx *fiber.Ctx) error {
	var request dto.ResolveRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}

	res, err := c.service.Resolve(ctx.Context(), &request)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, constant.EmptyQueryMessage))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *complaintController) DetectLanguage(ctx *fiber.Ctx) error {
	var request dto.DetectLanguageRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	return ctx.JSON(c.service.DetectLanguage(ctx.Context(), &request))
}
