package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tixora/internal/models"
	"tixora/internal/services/refundrule"
	"tixora/internal/utils"
)

type RefundRuleHandler struct {
	ruleService refundrule.Service
}

func NewRefundRuleHandler(ruleService refundrule.Service) *RefundRuleHandler {
	return &RefundRuleHandler{ruleService: ruleService}
}

func (h *RefundRuleHandler) CreateRule(c *fiber.Ctx) error {
	var input models.CreateRefundRuleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	res := h.ruleService.CreateRule(c.Context(), input)
	return utils.RespondResult(c, res)
}

func (h *RefundRuleHandler) UpdateRule(c *fiber.Ctx) error {
	var input models.UpdateRefundRuleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if id, err := uuid.Parse(c.Params("id")); err == nil {
		input.ID = id
	}

	res := h.ruleService.UpdateRule(c.Context(), input)
	return utils.RespondResult(c, res)
}

func (h *RefundRuleHandler) DeleteRule(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Params("id"))
	res := h.ruleService.DeleteRule(c.Context(), id)
	return utils.RespondResult(c, res)
}

func (h *RefundRuleHandler) CreateRuleDetail(c *fiber.Ctx) error {
	ruleID, _ := uuid.Parse(c.Params("id"))

	var input models.RefundRuleDetailInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	res := h.ruleService.CreateRuleDetail(c.Context(), ruleID, input)
	return utils.RespondResult(c, res)
}

func (h *RefundRuleHandler) UpdateRuleDetail(c *fiber.Ctx) error {
	var input models.UpdateRefundRuleDetailInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if id, err := uuid.Parse(c.Params("detailId")); err == nil {
		input.ID = id
	}

	res := h.ruleService.UpdateRuleDetail(c.Context(), input)
	return utils.RespondResult(c, res)
}

func (h *RefundRuleHandler) DeleteRuleDetail(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Params("detailId"))
	res := h.ruleService.DeleteRuleDetail(c.Context(), id)
	return utils.RespondResult(c, res)
}

func (h *RefundRuleHandler) GetRuleRefund(c *fiber.Ctx) error {
	page, size := utils.GetPaging(c, 1, 10)
	res := h.ruleService.GetRuleRefund(c.Context(), page, size)
	return utils.RespondResult(c, res)
}
