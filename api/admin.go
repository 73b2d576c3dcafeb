package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/nickshouse/Chao-Bot-sub000/internal/svc"
	"github.com/nickshouse/Chao-Bot-sub000/internal/viewer"
)

// Admin overrides bypass normal gameplay but still run through the same
// resolver and lifecycle checks as player actions.

func adminRespond(ctx *gin.Context, pet viewer.Pet, err error, action string) {
	if err != nil {
		log.Errorf("API|| %s Error: %s", action, err.Error())
		status, message := errStatus(err)
		ctx.JSON(status, PetResp{Message: message})
		return
	}
	ctx.JSON(http.StatusOK, PetResp{
		Message: action + " Success",
		Pet:     pet,
	})
}

func ForceLifecycleCheck(ctx *gin.Context) {
	req := LifecycleCheckReq{}
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, PetResp{Message: "Bad Param"})
		return
	}
	pet, err := svc.ForceLifecycleCheck(req.OwnerId, req.PetName)
	adminRespond(ctx, pet, err, "ForceLifecycleCheck")
}

func SetHappiness(ctx *gin.Context) {
	req := SetHappinessReq{}
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, PetResp{Message: "Bad Param"})
		return
	}
	pet, err := svc.SetHappiness(req.OwnerId, req.PetName, req.Value)
	adminRespond(ctx, pet, err, "SetHappiness")
}

func SetGrade(ctx *gin.Context) {
	req := SetGradeReq{}
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, PetResp{Message: "Bad Param"})
		return
	}
	pet, err := svc.SetGrade(req.OwnerId, req.PetName, req.StatName, req.Grade)
	adminRespond(ctx, pet, err, "SetGrade")
}

func SetExp(ctx *gin.Context) {
	req := SetExpReq{}
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, PetResp{Message: "Bad Param"})
		return
	}
	pet, err := svc.SetExp(req.OwnerId, req.PetName, req.StatName, req.Exp)
	adminRespond(ctx, pet, err, "SetExp")
}

func SetLevel(ctx *gin.Context) {
	req := SetLevelReq{}
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, PetResp{Message: "Bad Param"})
		return
	}
	pet, err := svc.SetLevel(req.OwnerId, req.PetName, req.StatName, req.Level)
	adminRespond(ctx, pet, err, "SetLevel")
}

func SetFace(ctx *gin.Context) {
	req := SetFaceReq{}
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, PetResp{Message: "Bad Param"})
		return
	}
	pet, err := svc.SetFace(req.OwnerId, req.PetName, req.Eyes, req.Mouth)
	adminRespond(ctx, pet, err, "SetFace")
}
