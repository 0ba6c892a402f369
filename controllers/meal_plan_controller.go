package controllers

import (
	"net/http"

	"github.com/jomariabejo/orpha/middlewares"
	"github.com/jomariabejo/orpha/services"

	"github.com/gin-gonic/gin"
)

// MealPlanController exposes the daily meal plan CRUD surface under
// /api/admin/meal-plans.
type MealPlanController struct {
	svc *services.MealPlanService
}

func NewMealPlanController(svc *services.MealPlanService) *MealPlanController {
	return &MealPlanController{svc: svc}
}

func (ctl *MealPlanController) List(c *gin.Context) {
	plans, err := ctl.svc.List(middlewares.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (ctl *MealPlanController) Get(c *gin.Context) {
	plan, err := ctl.svc.Get(middlewares.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *MealPlanController) Create(c *gin.Context) {
	var form services.DailyMealPlanFormData
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

func (ctl *MealPlanController) Update(c *gin.Context) {
	var patch services.MealPlanPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := ctl.svc.Update(middlewares.CurrentIdentity(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *MealPlanController) Delete(c *gin.Context) {
	if err := ctl.svc.Delete(middlewares.CurrentIdentity(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted successfully"})
}

func (ctl *MealPlanController) Clone(c *gin.Context) {
	var opts services.CloneOptions
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

// Nutrition returns the aggregated nutrient totals of one plan for
// display alongside it.
func (ctl *MealPlanController) Nutrition(c *gin.Context) {
	plan, err := ctl.svc.Get(middlewares.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"planId": plan.ID,
		"date":   plan.Date,
		"totals": services.DailyTotals(plan),
	})
}
