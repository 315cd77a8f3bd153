package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"recomptracker/internal/domain"
	"recomptracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Maximum accepted photo upload size.
const maxPhotoBytes = 10 << 20 // 10 MiB

// TrackerHandler holds the log-writer service dependency.
type TrackerHandler struct {
	trackerService service.TrackerService
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(trackerService service.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

// --- Request/Response Structs ---

type LogWorkoutRequest struct {
	// Date defaults to today when omitted.
	Date     string                 `json:"date"`
	DayName  domain.DayType         `json:"dayName" binding:"required"`
	Exercise string                 `json:"exercise" binding:"required"`
	Strength *domain.StrengthFields `json:"strength"`
	Cardio   *domain.CardioFields   `json:"cardio"`
}

type LogMealRequest struct {
	Date     string          `json:"date"`
	MealType domain.MealType `json:"mealType" binding:"required"`
	MealTime string          `json:"mealTime"`
	Protein  float64         `json:"protein" binding:"gte=0"`
	Carbs    float64         `json:"carbs" binding:"gte=0"`
	Fat      float64         `json:"fat" binding:"gte=0"`
	Notes    string          `json:"notes"`
}

type LogMeasurementRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight" binding:"gte=0"`
	Chest  float64 `json:"chest" binding:"gte=0"`
	Waist  float64 `json:"waist" binding:"gte=0"`
	Hips   float64 `json:"hips" binding:"gte=0"`
}

// --- Handler Methods ---

// LogWorkout records one workout session for the authenticated user.
func (h *TrackerHandler) LogWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if req.Date == "" {
		req.Date = domain.Today()
	}

	entry, err := h.trackerService.LogWorkout(c.Request.Context(), userID, req.Date, req.DayName, req.Exercise, req.Strength, req.Cardio)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntry) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save workout")
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// LogMeal records one meal for the authenticated user.
func (h *TrackerHandler) LogMeal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if req.Date == "" {
		req.Date = domain.Today()
	}

	entry, err := h.trackerService.LogMeal(c.Request.Context(), userID, req.Date, req.MealType, req.MealTime, req.Protein, req.Carbs, req.Fat, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntry) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save meal")
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// LogMeasurement records one measurement session for the
// authenticated user.
func (h *TrackerHandler) LogMeasurement(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if req.Date == "" {
		req.Date = domain.Today()
	}

	m, err := h.trackerService.LogMeasurement(c.Request.Context(), userID, req.Date, req.Weight, req.Chest, req.Waist, req.Hips)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntry) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save measurements")
		}
		return
	}

	c.JSON(http.StatusCreated, m)
}

// LogPhoto accepts a multipart upload and records one progress photo.
// This is the upload boundary: only JPEG and PNG pass; past this point
// the bytes are opaque to the core.
func (h *TrackerHandler) LogPhoto(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Photo file is required")
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		abortWithError(c, http.StatusBadRequest, "Photo exceeds the maximum upload size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to read uploaded photo")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to read uploaded photo")
		return
	}

	contentType := http.DetectContentType(image)
	if contentType != "image/jpeg" && contentType != "image/png" {
		abortWithError(c, http.StatusBadRequest, "Photo must be a JPEG or PNG image")
		return
	}

	date := c.PostForm("date")
	if date == "" {
		date = domain.Today()
	}
	notes := c.PostForm("notes")

	photo, err := h.trackerService.LogPhoto(c.Request.Context(), userID, date, contentType, image, notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntry) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save photo")
		}
		return
	}

	c.JSON(http.StatusCreated, photo)
}
