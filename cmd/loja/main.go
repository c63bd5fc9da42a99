package main

import (
	"context"
	"time"

	"github.com/guicpereira/LojaVOKA/config"
	"github.com/guicpereira/LojaVOKA/internal/app"
	"github.com/guicpereira/LojaVOKA/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	lojaService := app.New(sigCtx, cfg)

	lojaService.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	lojaService.Close(ctx)
}
