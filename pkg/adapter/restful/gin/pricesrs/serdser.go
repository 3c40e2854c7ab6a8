package pricesrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/shopspring/decimal"
)

type rawPriceReq struct {
	VehicleID int64            `json:"vehicleId" binding:"required,gt=0"`
	Currency  string           `json:"currency" binding:"omitempty,len=3,alpha"`
	Price     *decimal.Decimal `json:"price" binding:"required"`
}

type rawVehiclePriceReq struct {
	VehicleID int64 `form:"vehicleId" binding:"required,gt=0"`
}

// VehiclePrice is the response of the price lookup service. The price
// is formatted with two fractional digits, like "22.50".
type VehiclePrice struct {
	VehicleID int64  `json:"vehicleId"`
	Currency  string `json:"currency"`
	Price     string `json:"price"`
}

func (rs *resource) DserPriceReq(c *gin.Context) *model.Price {
	req := &rawPriceReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Price{
		VehicleID: req.VehicleID,
		Currency:  req.Currency,
		Amount:    *req.Price,
	}
}

func (rs *resource) DserVehiclePriceReq(c *gin.Context) (int64, bool) {
	req := &rawVehiclePriceReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return 0, false
	}
	return req.VehicleID, true
}

func SerVehiclePrice(p *model.Price) VehiclePrice {
	return VehiclePrice{
		VehicleID: p.VehicleID,
		Currency:  p.Currency,
		Price:     p.Amount.StringFixed(2),
	}
}
