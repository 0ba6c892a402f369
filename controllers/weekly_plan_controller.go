package controllers

import (
	"net/http"

	"github.com/jomariabejo/orpha/middlewares"
	"github.com/jomariabejo/orpha/services"

	"github.com/gin-gonic/gin"
)

// WeeklyPlanController serves the legacy weekly plan variant under
// /api/admin/weekly-plans.
type WeeklyPlanController struct {
	svc *services.WeeklyPlanService
}

func NewWeeklyPlanController(svc *services.WeeklyPlanService) *WeeklyPlanController {
	return &WeeklyPlanController{svc: svc}
}

func (ctl *WeeklyPlanController) List(c *gin.Context) {
	plans, err := ctl.svc.List(middlewares.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (ctl *WeeklyPlanController) Get(c *gin.Context) {
	plan, err := ctl.svc.Get(middlewares.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *WeeklyPlanController) Create(c *gin.Context) {
	var form services.WeeklyPlanFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := ctl.svc.Create(middlewares.CurrentIdentity(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (ctl *WeeklyPlanController) Update(c *gin.Context) {
	var form services.WeeklyPlanFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := ctl.svc.Update(middlewares.CurrentIdentity(c), c.Param("id"), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *WeeklyPlanController) Delete(c *gin.Context) {
	if err := ctl.svc.Delete(middlewares.CurrentIdentity(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted successfully"})
}

func (ctl *WeeklyPlanController) Clone(c *gin.Context) {
	var opts services.WeeklyCloneOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := ctl.svc.Clone(middlewares.CurrentIdentity(c), c.Param("id"), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// Nutrition returns per-day and whole-week nutrient totals.
func (ctl *WeeklyPlanController) Nutrition(c *gin.Context) {
	plan, err := ctl.svc.Get(middlewares.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	days := make([]gin.H, 0, len(plan.Days))
	for _, day := range plan.Days {
		days = append(days, gin.H{"date": day.Date, "totals": services.DayTotals(day)})
	}
	c.JSON(http.StatusOK, gin.H{
		"planId": plan.ID,
		"days":   days,
		"totals": services.WeeklyTotals(plan),
	})
}
