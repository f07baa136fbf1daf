// Package handler exposes the gateway's HTTP surface: thin gin handlers that
// forward to the routing service and return geometry already decoded, so
// browser clients need no polyline codec.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meridianmaps/valhalla-go/polyline"
	"github.com/meridianmaps/valhalla-go/valhalla"
)

// RoutingService is the slice of the valhalla client the gateway uses.
type RoutingService interface {
	Route(ctx context.Context, req *valhalla.RouteRequest) (*valhalla.RouteResponse, error)
	Matrix(ctx context.Context, req *valhalla.MatrixRequest) (*valhalla.MatrixResponse, error)
	Isochrone(ctx context.Context, req *valhalla.IsochroneRequest) (*valhalla.IsochroneResponse, error)
	Status(ctx context.Context) (*valhalla.StatusResponse, error)
}

// RouteHandler handles HTTP requests for routing operations.
type RouteHandler struct {
	service RoutingService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service RoutingService) *RouteHandler {
	return &RouteHandler{service: service}
}

// RegisterRoutes registers all routing endpoints on the given router group.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.POST("/route", h.ComputeRoute)
		api.POST("/matrix", h.ComputeMatrix)
		api.POST("/isochrone", h.ComputeIsochrone)
	}
	r.GET("/healthz", h.Health)
	r.GET("/readyz", h.Ready)
}

// RouteGatewayRequest is the gateway's simplified route request.
type RouteGatewayRequest struct {
	Locations  []valhalla.Location `json:"locations" binding:"required,min=2"`
	Costing    valhalla.Costing    `json:"costing" binding:"required"`
	Units      valhalla.Units      `json:"units"`
	Language   string              `json:"language"`
	Alternates int                 `json:"alternates"`
}

// LegGeometry is one trip leg with its shape decoded into coordinates.
type LegGeometry struct {
	Summary   valhalla.Summary      `json:"summary"`
	Maneuvers []valhalla.Maneuver   `json:"maneuvers"`
	Geometry  []polyline.Coordinate `json:"geometry"`
}

// RouteGatewayResponse is the decoded trip returned to gateway clients.
type RouteGatewayResponse struct {
	Summary valhalla.Summary `json:"summary"`
	Legs    []LegGeometry    `json:"legs"`
	Units   string           `json:"units,omitempty"`
	ID      string           `json:"id,omitempty"`
}

// ComputeRoute handles POST /api/v1/route.
func (h *RouteHandler) ComputeRoute(c *gin.Context) {
	var req RouteGatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Route(c.Request.Context(), &valhalla.RouteRequest{
		Locations:  req.Locations,
		Costing:    req.Costing,
		Units:      req.Units,
		Language:   req.Language,
		Alternates: req.Alternates,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	out, err := decodeTrip(&resp.Trip)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "undecodable shape in upstream response"})
		return
	}
	out.ID = resp.ID
	c.JSON(http.StatusOK, out)
}

// decodeTrip flattens a trip into the gateway response, decoding each leg's
// polyline6 shape.
func decodeTrip(trip *valhalla.Trip) (*RouteGatewayResponse, error) {
	out := &RouteGatewayResponse{
		Summary: trip.Summary,
		Units:   trip.Units,
		Legs:    make([]LegGeometry, 0, len(trip.Legs)),
	}
	for i := range trip.Legs {
		leg := &trip.Legs[i]
		coords, err := leg.DecodeShape()
		if err != nil {
			return nil, err
		}
		out.Legs = append(out.Legs, LegGeometry{
			Summary:   leg.Summary,
			Maneuvers: leg.Maneuvers,
			Geometry:  coords,
		})
	}
	return out, nil
}

// MatrixGatewayRequest is the gateway's simplified matrix request.
type MatrixGatewayRequest struct {
	Sources []valhalla.Location `json:"sources" binding:"required,min=1"`
	Targets []valhalla.Location `json:"targets" binding:"required,min=1"`
	Costing valhalla.Costing    `json:"costing" binding:"required"`
	Units   valhalla.Units      `json:"units"`
}

// ComputeMatrix handles POST /api/v1/matrix.
func (h *RouteHandler) ComputeMatrix(c *gin.Context) {
	var req MatrixGatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Matrix(c.Request.Context(), &valhalla.MatrixRequest{
		Sources: req.Sources,
		Targets: req.Targets,
		Costing: req.Costing,
		Units:   req.Units,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// IsochroneGatewayRequest is the gateway's simplified isochrone request.
type IsochroneGatewayRequest struct {
	Locations []valhalla.Location `json:"locations" binding:"required,min=1"`
	Costing   valhalla.Costing    `json:"costing" binding:"required"`
	Contours  []valhalla.Contour  `json:"contours" binding:"required,min=1"`
	Polygons  bool                `json:"polygons"`
}

// ComputeIsochrone handles POST /api/v1/isochrone.
func (h *RouteHandler) ComputeIsochrone(c *gin.Context) {
	var req IsochroneGatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Isochrone(c.Request.Context(), &valhalla.IsochroneRequest{
		Locations: req.Locations,
		Costing:   req.Costing,
		Contours:  req.Contours,
		Polygons:  req.Polygons,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Health handles GET /healthz. It only proves the gateway process is up.
func (h *RouteHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /readyz by probing the upstream routing service.
func (h *RouteHandler) Ready(c *gin.Context) {
	status, err := h.service.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "upstream unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "upstream_version": status.Version})
}

// abortWithServiceError maps client errors: upstream API rejections keep
// their status code, everything else is a 502.
func abortWithServiceError(c *gin.Context, err error) {
	var apiErr *valhalla.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": apiErr.Message, "error_code": apiErr.ErrorCode})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "routing service unavailable"})
}
