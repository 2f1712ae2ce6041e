package handler

import (
	"github.com/gofiber/fiber/v2"

	"templatefinder/internal/service"
	"templatefinder/internal/view"
)

// IndexPage renders the empty form.
func IndexPage(pages *view.Renderer, theme view.Theme) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return renderPage(c, pages, fiber.StatusOK, view.PageData{Theme: themeFor(c, theme)})
	}
}

// SubmitCompanyForm handles the form post used when scripts are off: one
// backend search, then the page again. A success replaces the cards; a
// failure shows the inline error over the cards that were already shown.
func SubmitCompanyForm(searchSvc service.SearchService, pages *view.Renderer, theme view.Theme) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := view.PageData{
			Theme:     themeFor(c, theme),
			Templates: view.DecodeShown(c.FormValue(view.ShownField)),
		}

		if err := c.BodyParser(&data.Form); err != nil {
			data.Error = "Invalid form submission"
			return renderPage(c, pages, fiber.StatusBadRequest, data)
		}

		res, err := searchSvc.Search(c.UserContext(), data.Form)
		if err != nil {
			status, _, msg := searchFailure(err)
			data.Error = msg
			return renderPage(c, pages, status, data)
		}

		data.Templates = res.Templates
		return renderPage(c, pages, fiber.StatusOK, data)
	}
}

func renderPage(c *fiber.Ctx, pages *view.Renderer, status int, data view.PageData) error {
	c.Status(status).Type("html", "utf-8")
	return pages.Render(c, data)
}

// themeFor lets ?theme= override the configured default.
func themeFor(c *fiber.Ctx, def view.Theme) view.Theme {
	if t, ok := view.ParseTheme(c.Query("theme")); ok {
		return t
	}
	return def
}
