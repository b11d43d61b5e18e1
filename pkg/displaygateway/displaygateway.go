package displaygateway

import (
	"context"
	"errors"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/xrectsel/pkg/rectsel"
)

var ErrConnectionClosed = errors.New("the connection to the display server is closed")

type DisplayGateway struct {
	rectsel.Gateway
	DisplayName string
}

var _ rectsel.Gateway = (*DisplayGateway)(nil)

// New connects to the display server. An empty displayName means the
// display the environment points to.
func New(
	ctx context.Context,
	displayName string,
) (*DisplayGateway, error) {
	logger.Debugf(ctx, "New(ctx, '%s')", displayName)
	gw := &DisplayGateway{DisplayName: displayName}
	if err := gw.init(ctx); err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "connected to display '%s'", gw.DisplayName)
	return gw, nil
}
