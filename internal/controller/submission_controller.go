package controller

import (
	"adaptive_edu_backend/internal/service"
	"adaptive_edu_backend/internal/util"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	Grading  *service.GradingService
	Progress *service.ProgressService
}

func NewSubmissionController(grading *service.GradingService, progress *service.ProgressService) *SubmissionController {
	return &SubmissionController{
		Grading:  grading,
		Progress: progress,
	}
}

// swagger:model DiagnosticSubmissionRequest
type DiagnosticSubmissionRequest struct {
	// a string for single_choice/fill_blank, a string array for multiple_choice
	Answer json.RawMessage `json:"answer"`
}

// SubmitDiagnostic godoc
// @Summary Submit a diagnostic answer
// @Description Grades the answer, records it and returns the refreshed section standing with the routed level.
// @Tags submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "diagnostic question ID"
// @Param body body DiagnosticSubmissionRequest true "answer"
// @Success 200 {object} util.Response{data=service.DiagnosticGradeResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/diagnostics/{id} [post]
func (c *SubmissionController) SubmitDiagnostic(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req DiagnosticSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(req.Answer) == 0 || string(req.Answer) == "null" {
		util.BadRequest(ctx, util.ErrMissingAnswer.Error())
		return
	}

	resp, err := c.Grading.SubmitDiagnostic(claims.UserID, uint(id), req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrDiagnosticNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidAnswerShape):
			util.BadRequest(ctx, err.Error())
		default:
			// includes ErrMalformedCorrectAnswer: authoring data corruption
			// is a server fault, never reported as a wrong answer
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, resp)
}

// swagger:model ExerciseSubmissionRequest
type ExerciseSubmissionRequest struct {
	Answer *string `json:"answer"`
}

// SubmitExercise godoc
// @Summary Submit an exercise answer
// @Tags submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "exercise ID"
// @Param body body ExerciseSubmissionRequest true "answer"
// @Success 200 {object} util.Response{data=service.ExerciseGradeResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/exercises/{id} [post]
func (c *SubmissionController) SubmitExercise(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req ExerciseSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Answer == nil {
		util.BadRequest(ctx, util.ErrMissingAnswer.Error())
		return
	}

	resp, err := c.Grading.SubmitExercise(claims.UserID, uint(id), *req.Answer)
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, resp)
}

// GetSectionProgress godoc
// @Summary Current user's standing in a section
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "section ID"
// @Success 200 {object} util.Response{data=service.SectionProgress}
// @Failure 404 {object} util.Response
// @Router /api/sections/{id}/progress [get]
func (c *SubmissionController) GetSectionProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	progress, err := c.Progress.Aggregate(claims.UserID, uint(id))
	if err != nil {
		if errors.Is(err, util.ErrSectionNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}
