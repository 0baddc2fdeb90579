package controller

import (
	"riskiq-be/internal/dto"
	"riskiq-be/internal/pkg/serverutils"
	"riskiq-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router)
	Initialize(ctx *fiber.Ctx) error
	SubmitAnswers(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type assessmentController struct {
	assessmentService service.IAssessmentService
}

func NewAssessmentController(assessmentService service.IAssessmentService) IAssessmentController {
	return &assessmentController{
		assessmentService: assessmentService,
	}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assessment/v1")
	h.Post("initialize", c.Initialize)
	h.Post("answers", c.SubmitAnswers)
	h.Get("health", c.Health)
}

func (c *assessmentController) Initialize(ctx *fiber.Ctx) error {
	var req dto.InitializeAssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assessmentService.InitializeAssessment(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assessment initialized", res))
}

func (c *assessmentController) SubmitAnswers(ctx *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assessmentService.SubmitAnswers(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assessment completed", res))
}

func (c *assessmentController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Health", c.assessmentService.Health()))
}
