package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/nickshouse/Chao-Bot-sub000/configs"
	"github.com/nickshouse/Chao-Bot-sub000/internal/render"
	"github.com/nickshouse/Chao-Bot-sub000/internal/repo"
	"github.com/nickshouse/Chao-Bot-sub000/internal/scheduler"
	"github.com/nickshouse/Chao-Bot-sub000/internal/svc"
	"github.com/nickshouse/Chao-Bot-sub000/router"
)

func init() {
	configs.InitGlobalConfig()
}
func main() {

	config := configs.GetGlobalConfig()

	log.Infof("The service %s starting", config.AppConfig.AppName)

	if err := repo.Migrate(); err != nil {
		log.Fatalf("migrate error: %v", err)
	}

	notifier := render.NewLogAdapter()
	svc.SetNotifier(notifier)
	defer svc.StopCocoonTimers()

	ctx, cancelFunc := context.WithCancel(context.Background())
	decayScheduler := scheduler.NewDecayScheduler(ctx, cancelFunc, notifier)
	decayScheduler.Run()
	defer func(decayScheduler *scheduler.DecayScheduler) {
		decayScheduler.Stop()
	}(decayScheduler)

	r := router.SetRouter()
	if err := r.Run(fmt.Sprintf(":%d", config.AppConfig.Port)); err != nil {
		log.Errorf("server run error: %v", err)
	}

}
