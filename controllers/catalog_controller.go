package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism-backend/services"
	"tourism-backend/utils"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

func featuredOnly(c *gin.Context) bool {
	return c.Query("featured") == "true"
}

func (ctrl *CatalogController) GetDestinations(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Catalog.Destinations(featuredOnly(c)))
}

func (ctrl *CatalogController) GetDestination(c *gin.Context) {
	dest, err := ctrl.Catalog.Destination(c.Param("id"))
	if err != nil {
		utils.JSONNotFound(c)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dest)
}

func (ctrl *CatalogController) GetHotels(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Catalog.Hotels(featuredOnly(c), c.Query("destinationId")))
}

func (ctrl *CatalogController) GetHotel(c *gin.Context) {
	hotel, err := ctrl.Catalog.Hotel(c.Param("id"))
	if err != nil {
		utils.JSONNotFound(c)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (ctrl *CatalogController) GetPackages(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Catalog.Packages(featuredOnly(c)))
}

func (ctrl *CatalogController) GetPackage(c *gin.Context) {
	pkg, err := ctrl.Catalog.Package(c.Param("id"))
	if err != nil {
		utils.JSONNotFound(c)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pkg)
}

func (ctrl *CatalogController) GetHouseboats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Catalog.Houseboats(featuredOnly(c)))
}

func (ctrl *CatalogController) GetHouseboat(c *gin.Context) {
	boat, err := ctrl.Catalog.Houseboat(c.Param("id"))
	if err != nil {
		utils.JSONNotFound(c)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, boat)
}

func (ctrl *CatalogController) GetTaxis(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Catalog.Taxis(featuredOnly(c)))
}

func (ctrl *CatalogController) GetTaxi(c *gin.Context) {
	taxi, err := ctrl.Catalog.Taxi(c.Param("id"))
	if err != nil {
		utils.JSONNotFound(c)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, taxi)
}

func (ctrl *CatalogController) GetActivities(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Catalog.Activities(featuredOnly(c), c.Query("destinationId")))
}

func (ctrl *CatalogController) GetActivity(c *gin.Context) {
	activity, err := ctrl.Catalog.Activity(c.Param("id"))
	if err != nil {
		utils.JSONNotFound(c)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, activity)
}
