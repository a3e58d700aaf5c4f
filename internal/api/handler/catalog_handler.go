package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// CatalogHandler exposes the mission, satellite and equipment records over
// the JSON API. Reads are open to any signed-in role; mutations sit behind
// the admin RBAC middleware in the router.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type missionRequest struct {
	MissionID   int     `json:"mission_id" validate:"required,gte=1"`
	PadID       int     `json:"pad_id" validate:"required,gte=1"`
	LocID       int     `json:"loc_id" validate:"required,gte=1"`
	MissionName string  `json:"mission_name" validate:"required"`
	LaunchDate  string  `json:"launch_date" validate:"required"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status" validate:"required,oneof=Planned 'In Progress' Completed Aborted"`
	Objective   string  `json:"objective"`
	Budget      float64 `json:"budget" validate:"gte=0"`
}

func (r missionRequest) toDomain() domain.Mission {
	return domain.Mission{
		MissionKey:  domain.MissionKey{MissionID: r.MissionID, PadID: r.PadID, LocID: r.LocID},
		MissionName: r.MissionName,
		LaunchDate:  r.LaunchDate,
		EndDate:     r.EndDate,
		Status:      r.Status,
		Objective:   r.Objective,
		Budget:      r.Budget,
	}
}

type satelliteRequest struct {
	SatID      int     `json:"sat_id" validate:"required,gte=1"`
	SatName    string  `json:"sat_name" validate:"required"`
	LaunchDate string  `json:"launch_date" validate:"required"`
	Status     string  `json:"status" validate:"required"`
	OrbitType  string  `json:"orbit_type" validate:"required"`
	Mass       float64 `json:"mass" validate:"gte=0"`
	ManagerID  *int    `json:"manager_id"`
}

func (r satelliteRequest) toDomain() domain.Satellite {
	return domain.Satellite{
		SatID:      r.SatID,
		SatName:    r.SatName,
		LaunchDate: r.LaunchDate,
		Status:     r.Status,
		OrbitType:  r.OrbitType,
		Mass:       r.Mass,
		ManagerID:  r.ManagerID,
	}
}

func (h *CatalogHandler) ListMissions(c echo.Context) error {
	missions, err := h.catalog.ListMissions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, missions)
}

func (h *CatalogHandler) GetMission(c echo.Context) error {
	key, err := missionKeyFromPath(c)
	if err != nil {
		return err
	}
	mission, err := h.catalog.GetMission(c.Request().Context(), key)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mission)
}

func (h *CatalogHandler) AddMission(c echo.Context) error {
	var req missionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mission, err := h.catalog.AddMission(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, mission)
}

func (h *CatalogHandler) UpdateMission(c echo.Context) error {
	key, err := missionKeyFromPath(c)
	if err != nil {
		return err
	}

	var req missionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mission, err := h.catalog.UpdateMission(c.Request().Context(), key, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mission)
}

func (h *CatalogHandler) DeleteMission(c echo.Context) error {
	key, err := missionKeyFromPath(c)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteMission(c.Request().Context(), key); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) ListSatellites(c echo.Context) error {
	satellites, err := h.catalog.ListSatellites(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, satellites)
}

func (h *CatalogHandler) GetSatellite(c echo.Context) error {
	satID, err := intParam(c, "sat_id")
	if err != nil {
		return err
	}
	sat, err := h.catalog.GetSatellite(c.Request().Context(), satID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sat)
}

func (h *CatalogHandler) AddSatellite(c echo.Context) error {
	var req satelliteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sat, err := h.catalog.AddSatellite(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sat)
}

func (h *CatalogHandler) UpdateSatellite(c echo.Context) error {
	satID, err := intParam(c, "sat_id")
	if err != nil {
		return err
	}

	var req satelliteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sat, err := h.catalog.UpdateSatellite(c.Request().Context(), satID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sat)
}

func (h *CatalogHandler) DeleteSatellite(c echo.Context) error {
	satID, err := intParam(c, "sat_id")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteSatellite(c.Request().Context(), satID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) ListEquipment(c echo.Context) error {
	equipment, err := h.catalog.ListEquipment(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, equipment)
}

// missionKeyFromPath assembles the composite key from the three path params.
func missionKeyFromPath(c echo.Context) (domain.MissionKey, error) {
	missionID, err := intParam(c, "mission_id")
	if err != nil {
		return domain.MissionKey{}, err
	}
	padID, err := intParam(c, "pad_id")
	if err != nil {
		return domain.MissionKey{}, err
	}
	locID, err := intParam(c, "loc_id")
	if err != nil {
		return domain.MissionKey{}, err
	}
	return domain.MissionKey{MissionID: missionID, PadID: padID, LocID: locID}, nil
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return v, nil
}
