//go:build linux && !android
// +build linux,!android

package displaygateway

import (
	"context"
	"fmt"
	"os"

	"github.com/xaionaro-go/xrectsel/pkg/rectsel"
)

func (gw *DisplayGateway) initUsingWayland(ctx context.Context) error {
	return rectsel.ErrConnection{
		Display: os.Getenv("WAYLAND_DISPLAY"),
		Err:     fmt.Errorf("support of Wayland is not implemented, yet"),
	}
}
