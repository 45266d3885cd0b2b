package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solarhub-backend/pkg/response"
)

// Feature is one marketing highlight on the landing payload.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Landing is the marketing home payload: the hero copy plus the feature
// grid the site renders below it.
type Landing struct {
	Headline    string    `json:"headline"`
	Subheadline string    `json:"subheadline"`
	Features    []Feature `json:"features"`
}

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", h.Landing)
}

// Landing returns the marketing home content
// @Summary      Landing content
// @Tags         home
// @Produce      json
// @Success      200  {object}  response.Response{data=handler.Landing}
// @Router       / [get]
func (h *HomeHandler) Landing(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, Landing{
		Headline:    "Power Your Future with Solar Energy",
		Subheadline: "Transform your rooftop into a sustainable power station. Join thousands of households and businesses generating clean energy.",
		Features: []Feature{
			{Title: "Sustainable Energy", Description: "Clean, renewable power generation for a greener tomorrow"},
			{Title: "Energy Storage", Description: "Advanced battery solutions to store excess power"},
			{Title: "Smart Monitoring", Description: "Real-time tracking of generation and consumption"},
			{Title: "Global Impact", Description: "Reducing carbon footprint one installation at a time"},
			{Title: "Eco-Friendly", Description: "Zero emissions and minimal environmental impact"},
			{Title: "Guaranteed Performance", Description: "25-year warranty on panels and workmanship"},
		},
	}))
}
