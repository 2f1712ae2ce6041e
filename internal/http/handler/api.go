package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"templatefinder/internal/model"
	"templatefinder/internal/service"
)

// SearchTemplates godoc
// @Summary Search website templates
// @Description Forwards the company profile to the search backend once and returns its templates in backend order.
// @Tags templates
// @Accept json
// @Produce json
// @Param profile body model.CompanyProfile true "Company profile"
// @Success 200 {object} model.TemplateResults
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /api/search-templates [post]
func SearchTemplates(searchSvc service.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var profile model.CompanyProfile
		if err := json.Unmarshal(c.Body(), &profile); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "request body must be a JSON company profile")
		}

		res, err := searchSvc.Search(c.UserContext(), profile)
		if err != nil {
			status, code, msg := searchFailure(err)
			return writeError(c, status, code, msg)
		}
		return c.JSON(res)
	}
}
