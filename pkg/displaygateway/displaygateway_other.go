//go:build !linux || android
// +build !linux android

package displaygateway

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/xrectsel/pkg/rectsel"
)

func (gw *DisplayGateway) init(ctx context.Context) error {
	return rectsel.ErrConnection{
		Display: gw.DisplayName,
		Err:     fmt.Errorf("the support of display gateway for this platform is not implemented, yet"),
	}
}
