package controllers

import (
	"net/http"

	"github.com/jomariabejo/orpha/middlewares"
	"github.com/jomariabejo/orpha/services"

	"github.com/gin-gonic/gin"
)

// MonitoringController serves the child observation surface used by all
// staff: profiles plus growth and health histories.
type MonitoringController struct {
	svc *services.ChildService
}

func NewMonitoringController(svc *services.ChildService) *MonitoringController {
	return &MonitoringController{svc: svc}
}

func (ctl *MonitoringController) List(c *gin.Context) {
	children, err := ctl.svc.List(middlewares.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, children)
}

func (ctl *MonitoringController) Get(c *gin.Context) {
	child, err := ctl.svc.Get(middlewares.CurrentIdentity(c), c.Param("childId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, child)
}

func (ctl *MonitoringController) Create(c *gin.Context) {
	var form services.ChildFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	child, err := ctl.svc.Create(middlewares.CurrentIdentity(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, child)
}

// AddObservation appends one dated measurement or note to a child.
func (ctl *MonitoringController) AddObservation(c *gin.Context) {
	var in services.ObservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	child, err := ctl.svc.AddObservation(middlewares.CurrentIdentity(c), c.Param("childId"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, child)
}
