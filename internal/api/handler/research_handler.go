package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spaceresearch/mission-console/internal/api/middleware"
	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// ResearchHandler exposes the research fact log. The contributing user comes
// from the session, never from the payload.
type ResearchHandler struct {
	research ports.ResearchService
}

func NewResearchHandler(research ports.ResearchService) *ResearchHandler {
	return &ResearchHandler{research: research}
}

type factRequest struct {
	FactTitle   string `json:"fact_title" validate:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

func (h *ResearchHandler) ListFacts(c echo.Context) error {
	facts, err := h.research.ListFacts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, facts)
}

func (h *ResearchHandler) AddFact(c echo.Context) error {
	var req factRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := middleware.SessionFrom(c)
	if !sess.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}

	fact, err := h.research.AddFact(c.Request().Context(), domain.ResearchFact{
		FactKey:     domain.FactKey{UserID: sess.UserID},
		FactTitle:   req.FactTitle,
		Category:    req.Category,
		Description: req.Description,
		Source:      req.Source,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, fact)
}

func (h *ResearchHandler) UpdateFact(c echo.Context) error {
	key, err := factKeyFromPath(c)
	if err != nil {
		return err
	}

	var req factRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fact, err := h.research.UpdateFact(c.Request().Context(), key, domain.ResearchFact{
		FactKey:     key,
		FactTitle:   req.FactTitle,
		Category:    req.Category,
		Description: req.Description,
		Source:      req.Source,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fact)
}

func (h *ResearchHandler) DeleteFact(c echo.Context) error {
	key, err := factKeyFromPath(c)
	if err != nil {
		return err
	}
	if err := h.research.DeleteFact(c.Request().Context(), key); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func factKeyFromPath(c echo.Context) (domain.FactKey, error) {
	factID, err := intParam(c, "fact_id")
	if err != nil {
		return domain.FactKey{}, err
	}
	userID := c.Param("user_id")
	if userID == "" {
		return domain.FactKey{}, echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	return domain.FactKey{FactID: factID, UserID: userID}, nil
}
