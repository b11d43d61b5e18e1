//go:build linux && !android
// +build linux,!android

package displaygateway

import (
	"context"
	"os"
)

func (gw *DisplayGateway) init(ctx context.Context) error {
	if gw.DisplayName == "" {
		gw.DisplayName = os.Getenv("DISPLAY")
	}
	if gw.DisplayName != "" {
		return gw.initUsingXServer(ctx)
	} else {
		return gw.initUsingWayland(ctx)
	}
}
