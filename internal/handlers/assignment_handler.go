package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quiz-assignment-service/internal/repository"
	"quiz-assignment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	Service *service.AssignmentService
}

func NewAssignmentHandler(s *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Service: s}
}

// GetActiveQuiz returns the single quiz the user should see now, or a
// null body when no pending quiz is currently eligible. No eligible
// quiz is a normal outcome, not an error.
func (h *AssignmentHandler) GetActiveQuiz(c *gin.Context) {
	id := c.Param("id")
	quiz, err := h.Service.ActiveQuizForUser(context.Background(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// RunAssignments triggers one batch sweep and reports how many
// assignments it created.
func (h *AssignmentHandler) RunAssignments(c *gin.Context) {
	created, err := h.Service.RunAutoAssignment(context.Background())
	if errors.Is(err, service.ErrNoAssigner) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "No system assigner configured",
			"code":  "MISSING_ASSIGNER",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// AssignQuiz creates a manual assignment attributed to the acting
// admin from the X-User-ID header.
func (h *AssignmentHandler) AssignQuiz(c *gin.Context) {
	var req struct {
		UserID       string     `json:"user_id" binding:"required"`
		QuizID       string     `json:"quiz_id" binding:"required"`
		ScheduledFor *time.Time `json:"scheduled_for"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	assignedBy := c.GetHeader("X-User-ID")

	err := h.Service.AssignManually(context.Background(), req.UserID, req.QuizID, assignedBy, req.ScheduledFor)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User or quiz not found"})
	case errors.Is(err, service.ErrAlreadyAssigned):
		c.JSON(http.StatusConflict, gin.H{"error": "Quiz already assigned to user"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"status": "assigned"})
	}
}

// CompleteQuiz consumes a pending assignment into a quiz result.
func (h *AssignmentHandler) CompleteQuiz(c *gin.Context) {
	userID := c.Param("id")
	var req struct {
		QuizID string  `json:"quiz_id" binding:"required"`
		Score  float64 `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	err := h.Service.CompleteQuiz(context.Background(), userID, req.QuizID, req.Score)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

// SkipQuiz consumes a pending assignment into a skip marker.
func (h *AssignmentHandler) SkipQuiz(c *gin.Context) {
	userID := c.Param("id")
	var req struct {
		QuizID string `json:"quiz_id" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	err := h.Service.SkipQuiz(context.Background(), userID, req.QuizID, req.Reason)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "skipped"})
}
