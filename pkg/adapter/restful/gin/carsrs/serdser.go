package carsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/vehicles-api/pkg/core/model"
)

// rawCarReq is the JSON body of the create and update requests.
// The id, price, timestamps, and address fields are ignored since
// they are assigned by the service.
type rawCarReq struct {
	Condition model.Condition `json:"condition" binding:"required"`
	Details   rawDetails      `json:"details"`
	Location  rawLocation     `json:"location"`
}

type rawDetails struct {
	Body           string          `json:"body" binding:"required"`
	Model          string          `json:"model" binding:"required"`
	Manufacturer   rawManufacturer `json:"manufacturer"`
	NumberOfDoors  int             `json:"numberOfDoors" binding:"gte=0"`
	FuelType       string          `json:"fuelType"`
	Engine         string          `json:"engine"`
	Mileage        int             `json:"mileage" binding:"gte=0"`
	ModelYear      int             `json:"modelYear" binding:"required,gt=1885"`
	ProductionYear int             `json:"productionYear" binding:"required,gt=1885"`
	ExternalColor  string          `json:"externalColor"`
}

type rawManufacturer struct {
	Code int    `json:"code" binding:"required,gt=0"`
	Name string `json:"name" binding:"required"`
}

type rawLocation struct {
	Lat *float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lon *float64 `json:"lon" binding:"required,min=-180,max=180"`
}

func (rs *resource) DserCarReq(c *gin.Context) *model.Car {
	req := &rawCarReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	d := req.Details
	var errs map[string][]string
	serdser.Assert(
		&errs, d.ProductionYear <= d.ModelYear+1, "ProductionYear",
		"Production year may not be after the year following the model year.",
	)
	serdser.Assert(
		&errs, d.ModelYear <= d.ProductionYear+1, "ModelYear",
		"Model year may not be after the year following the production year.",
	)
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &model.Car{
		Condition: req.Condition,
		Details: model.Details{
			Body:  d.Body,
			Model: d.Model,
			Manufacturer: model.Manufacturer{
				Code: d.Manufacturer.Code,
				Name: d.Manufacturer.Name,
			},
			NumberOfDoors:  d.NumberOfDoors,
			FuelType:       d.FuelType,
			Engine:         d.Engine,
			Mileage:        d.Mileage,
			ModelYear:      d.ModelYear,
			ProductionYear: d.ProductionYear,
			ExternalColor:  d.ExternalColor,
		},
		Location: model.Location{
			Lat: *req.Location.Lat,
			Lon: *req.Location.Lon,
		},
	}
}
