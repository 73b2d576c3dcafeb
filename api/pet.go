package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/nickshouse/Chao-Bot-sub000/internal/svc"
)

func Hello(ctx *gin.Context) {

	ctx.JSON(http.StatusOK, "Hello")
}

// errStatus maps the service error taxonomy onto HTTP statuses. A cocooned
// pet is a conflict, not a server fault, so its countdown message passes
// through verbatim.
func errStatus(err error) (int, string) {
	var cocoonErr *svc.CocoonError
	switch {
	case errors.As(err, &cocoonErr):
		return http.StatusConflict, cocoonErr.Error()
	case errors.Is(err, svc.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, svc.ErrInsufficientResource):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, svc.ErrInvalidState):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusBadGateway, "Server Error"
	}
}

func Hatch(ctx *gin.Context) {
	req := HatchReq{}
	err := ctx.ShouldBind(&req)
	if err != nil {
		log.Error(err.Error())
		ctx.JSON(http.StatusBadRequest, PetResp{Message: err.Error()})
		return
	}
	if req.OwnerId == "" || req.PetName == "" {
		ctx.JSON(http.StatusBadRequest, PetResp{Message: "ownerId and petName required"})
		return
	}

	pet, err := svc.Hatch(req.OwnerId, req.PetName)
	if err != nil {
		log.Errorf("API|| Hatch %s/%s Error: %s", req.OwnerId, req.PetName, err.Error())
		status, message := errStatus(err)
		ctx.JSON(status, PetResp{Message: message})
		return
	}

	log.Infof("API|| Hatch Success, owner: {%s}, pet: {%s}", req.OwnerId, req.PetName)
	ctx.JSON(http.StatusOK, PetResp{
		Message: "Hatch Success",
		Pet:     pet,
	})
}

func Feed(ctx *gin.Context) {
	req := FeedReq{}
	err := ctx.ShouldBind(&req)
	if err != nil {
		log.Error(err.Error())
		ctx.JSON(http.StatusBadRequest, PetResp{Message: err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	pet, err := svc.Feed(req.OwnerId, req.PetName, req.FruitName, req.Quantity)
	if err != nil {
		log.Errorf("API|| Feed %s/%s Error: %s", req.OwnerId, req.PetName, err.Error())
		status, message := errStatus(err)
		ctx.JSON(status, PetResp{Message: message})
		return
	}

	ctx.JSON(http.StatusOK, PetResp{
		Message: "Feed Success",
		Pet:     pet,
	})
}

func GetPet(ctx *gin.Context) {
	ownerId := ctx.Query("ownerId")
	petName := ctx.Query("petName")
	if ownerId == "" || petName == "" {
		ctx.JSON(http.StatusBadRequest, PetResp{Message: "Need Params ownerId And petName"})
		return
	}

	pet, err := svc.GetPet(ownerId, petName)
	if err != nil {
		status, message := errStatus(err)
		ctx.JSON(status, PetResp{Message: message})
		return
	}

	ctx.JSON(http.StatusOK, PetResp{
		Message: "Success",
		Pet:     pet,
	})
}

func ListPets(ctx *gin.Context) {
	ownerId := ctx.Query("ownerId")
	if ownerId == "" {
		ctx.JSON(http.StatusBadRequest, PetListResp{Message: "Need Params ownerId"})
		return
	}

	pets, err := svc.ListPets(ownerId)
	if err != nil {
		log.Error(err.Error())
		ctx.JSON(http.StatusBadGateway, PetListResp{Message: "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, PetListResp{
		Message: "Success",
		Pets:    pets,
	})
}

func GetStatSheet(ctx *gin.Context) {
	ownerId := ctx.Query("ownerId")
	petName := ctx.Query("petName")
	if ownerId == "" || petName == "" {
		ctx.JSON(http.StatusBadRequest, StatSheetResp{Message: "Need Params ownerId And petName"})
		return
	}

	sheet, err := svc.StatSheet(ownerId, petName)
	if err != nil {
		status, message := errStatus(err)
		ctx.JSON(status, StatSheetResp{Message: message})
		return
	}

	ctx.JSON(http.StatusOK, StatSheetResp{
		Message: "Success",
		Sheet:   sheet,
	})
}

func GetInventory(ctx *gin.Context) {
	ownerId := ctx.Query("ownerId")
	if ownerId == "" {
		ctx.JSON(http.StatusBadRequest, InventoryResp{Message: "Need Params ownerId"})
		return
	}

	inv, err := svc.GetBalanceAndItems(ownerId)
	if err != nil {
		log.Error(err.Error())
		ctx.JSON(http.StatusBadGateway, InventoryResp{Message: "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, InventoryResp{
		Message:   "Success",
		Inventory: inv,
	})
}

func AdjustInventory(ctx *gin.Context) {
	req := AdjustInventoryReq{}
	err := ctx.ShouldBind(&req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, InventoryResp{Message: "Bad Param"})
		return
	}
	if req.OwnerId == "" || len(req.Deltas) == 0 {
		ctx.JSON(http.StatusBadRequest, InventoryResp{Message: "ownerId and deltas required"})
		return
	}

	if err := svc.AdjustInventory(req.OwnerId, req.Deltas); err != nil {
		log.Errorf("API|| AdjustInventory %s Error: %s", req.OwnerId, err.Error())
		status, message := errStatus(err)
		ctx.JSON(status, InventoryResp{Message: message})
		return
	}

	inv, err := svc.GetBalanceAndItems(req.OwnerId)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, InventoryResp{Message: "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, InventoryResp{
		Message:   "Success",
		Inventory: inv,
	})
}
