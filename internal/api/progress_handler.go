package api

import (
	"errors"
	"net/http"
	"strconv"

	"recomptracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler holds the query/aggregation service dependency.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// PhotoResponse is the listing shape for progress photos; the payload
// is fetched per photo via the image endpoint.
type PhotoResponse struct {
	ID    int64  `json:"id"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

// ListWorkouts returns the user's workout history, optionally narrowed
// to one exercise by exact name via ?exercise=.
func (h *ProgressHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	entries, err := h.progressService.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout history")
		return
	}

	if exercise := c.Query("exercise"); exercise != "" {
		entries = service.FilterByExercise(entries, exercise)
	}

	c.JSON(http.StatusOK, entries)
}

// ListMeasurements returns the user's measurements for trend charting.
func (h *ProgressHandler) ListMeasurements(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	measurements, err := h.progressService.ListMeasurements(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load measurements")
		return
	}

	c.JSON(http.StatusOK, measurements)
}

// DailyMacroTotals returns per-day macro sums for the nutrition chart.
func (h *ProgressHandler) DailyMacroTotals(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	totals, err := h.progressService.DailyMacroTotals(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load macro totals")
		return
	}

	c.JSON(http.StatusOK, totals)
}

// ListPhotos returns the user's photo listing without image payloads.
func (h *ProgressHandler) ListPhotos(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	photos, err := h.progressService.ListPhotos(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load photos")
		return
	}

	resp := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		resp = append(resp, PhotoResponse{ID: p.ID, Date: p.Date, Notes: p.Notes})
	}
	c.JSON(http.StatusOK, resp)
}

// PhotoImage serves one photo's image bytes.
func (h *ProgressHandler) PhotoImage(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	photoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid photo id")
		return
	}

	image, err := h.progressService.PhotoImage(c.Request.Context(), userID, photoID)
	if err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			abortWithError(c, http.StatusNotFound, "Photo not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load photo")
		}
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(image), image)
}
