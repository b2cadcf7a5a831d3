package controller

import (
	"adaptive_edu_backend/internal/model"
	"adaptive_edu_backend/internal/service"
	"adaptive_edu_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Content *service.ContentService
}

func NewContentController(content *service.ContentService) *ContentController {
	return &ContentController{Content: content}
}

// ListLessons godoc
// @Summary List lessons
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} util.Response
// @Router /api/lessons [get]
func (c *ContentController) ListLessons(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	lessons, total, err := c.Content.ListLessons(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"list":  lessons,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetLesson godoc
// @Summary One lesson with its sections
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "lesson ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *ContentController) GetLesson(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	lesson, err := c.Content.GetLesson(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, lesson)
}

// GetSection godoc
// @Summary Section content for the student view
// @Description Diagnostic quiz (answers withheld) plus the three exercise tiers.
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "section ID"
// @Success 200 {object} util.Response{data=service.SectionContent}
// @Failure 404 {object} util.Response
// @Router /api/sections/{id} [get]
func (c *ContentController) GetSection(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	content, err := c.Content.GetSectionContent(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrSectionNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, content)
}

// GetReminders godoc
// @Summary Reminder track for a routed level
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "section ID"
// @Param level path int true "1 advanced, 2 basic"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/sections/{id}/reminders/{level} [get]
func (c *ContentController) GetReminders(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}
	level, err := strconv.Atoi(ctx.Param("level"))
	if err != nil {
		util.BadRequest(ctx, "invalid level")
		return
	}

	reminders, err := c.Content.GetRemindersByLevel(ctx.Request.Context(), uint(id), service.Level(level))
	if err != nil {
		if errors.Is(err, util.ErrInvalidLevel) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, reminders)
}

// GetExercises godoc
// @Summary Exercise tier of a section
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "section ID"
// @Param level path int true "0 main, 1 advanced, 2 remedial"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/sections/{id}/exercises/{level} [get]
func (c *ContentController) GetExercises(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}
	level, err := strconv.Atoi(ctx.Param("level"))
	if err != nil {
		util.BadRequest(ctx, "invalid level")
		return
	}

	exercises, err := c.Content.GetExercisesByLevel(ctx.Request.Context(), uint(id), model.ExerciseLevel(level))
	if err != nil {
		if errors.Is(err, util.ErrInvalidLevel) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, exercises)
}
